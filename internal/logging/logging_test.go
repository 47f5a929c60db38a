package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{" warn ", LevelWarn},
		{"error", LevelError},
		{"", LevelWarn},
		{"verbose", LevelWarn},
	}

	for _, test := range tests {
		if got := ParseLevel(test.input); got != test.expected {
			t.Errorf("ParseLevel(%q) = %v; expected %v", test.input, got, test.expected)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	previous := GetLevel()
	defer func() {
		SetOutput(os.Stderr)
		SetLevel(previous)
	}()

	SetLevel(LevelWarn)
	Debug("скрыто %d", 1)
	Info("тоже скрыто")
	Warn("видно %s", "предупреждение")
	Error("видно ошибку")

	output := buf.String()
	if strings.Contains(output, "скрыто") {
		t.Errorf("Сообщения ниже уровня не должны выводиться: %s", output)
	}
	if !strings.Contains(output, "[WARN] видно предупреждение") {
		t.Errorf("Ожидалось предупреждение в выводе: %s", output)
	}
	if !strings.Contains(output, "[ERROR] видно ошибку") {
		t.Errorf("Ожидалась ошибка в выводе: %s", output)
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{Level(99), "unknown(99)"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("Level.String() = %q, want %q", got, tt.expected)
		}
	}
}
