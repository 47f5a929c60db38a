// Package logging содержит простой уровневый логгер поверх стандартного log.
// Уровень задается конфигурацией или переменной окружения LOG_LEVEL.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level - уровень важности сообщения
type Level int

const (
	// LevelDebug - отладочные сообщения
	LevelDebug Level = iota
	// LevelInfo - обычные сообщения
	LevelInfo
	// LevelWarn - предупреждения
	LevelWarn
	// LevelError - ошибки
	LevelError
)

var (
	currentLevel = levelFromEnv()
	logger       = log.New(os.Stderr, "", log.LstdFlags)
)

// ParseLevel разбирает строковое имя уровня. Неизвестное имя дает LevelWarn.
func ParseLevel(name string) Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "error":
		return LevelError
	default:
		return LevelWarn
	}
}

// levelFromEnv читает уровень из LOG_LEVEL
func levelFromEnv() Level {
	return ParseLevel(os.Getenv("LOG_LEVEL"))
}

// SetLevel задает текущий уровень
func SetLevel(level Level) {
	currentLevel = level
}

// GetLevel возвращает текущий уровень
func GetLevel() Level {
	return currentLevel
}

// SetOutput перенаправляет вывод логгера
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Debug пишет отладочное сообщение
func Debug(format string, args ...interface{}) {
	logf(LevelDebug, format, args...)
}

// Info пишет информационное сообщение
func Info(format string, args ...interface{}) {
	logf(LevelInfo, format, args...)
}

// Warn пишет предупреждение
func Warn(format string, args ...interface{}) {
	logf(LevelWarn, format, args...)
}

// Error пишет сообщение об ошибке
func Error(format string, args ...interface{}) {
	logf(LevelError, format, args...)
}

// Fatal пишет сообщение и завершает процесс
func Fatal(format string, args ...interface{}) {
	logger.Fatalf("[FATAL] "+format, args...)
}

func logf(level Level, format string, args ...interface{}) {
	if level < currentLevel {
		return
	}
	logger.Printf("["+strings.ToUpper(level.String())+"] "+format, args...)
}

// String возвращает имя уровня
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("unknown(%d)", l)
	}
}
