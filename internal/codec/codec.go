// Package codec читает и пишет плейлист в плоском текстовом формате
// "<title>,<artist>,<duration>" по одной строке на трек
package codec

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hazadus/go-playlister/internal/logging"
	"github.com/hazadus/go-playlister/internal/playlist"
	"github.com/hazadus/go-playlister/internal/utils"
)

const fieldsPerRecord = 3

// Encode записывает треки в w. Поля с запятой, кавычкой или переводом строки
// экранируются кавычками, остальные пишутся как есть, включая ведущие пробелы.
func Encode(w io.Writer, tracks []playlist.Track) error {
	writer := bufio.NewWriter(w)
	for _, t := range tracks {
		line := quoteField(t.Title) + "," + quoteField(t.Artist) + "," + FormatDuration(t.Duration) + "\n"
		if _, err := writer.WriteString(line); err != nil {
			return fmt.Errorf("ошибка записи трека %q: %w", t.Title, err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("ошибка записи плейлиста: %w", err)
	}
	return nil
}

// quoteField берет поле в кавычки, только если без них оно не прочитается обратно
func quoteField(field string) string {
	if !strings.ContainsAny(field, ",\"\r\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// Decode читает треки из r. Строки с неверным числом полей или
// нечисловой длительностью пропускаются.
func Decode(r io.Reader) ([]playlist.Track, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var tracks []playlist.Track
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				logging.Warn("строка %d пропущена: %v", parseErr.Line, err)
				continue
			}
			return nil, fmt.Errorf("ошибка чтения плейлиста: %w", err)
		}
		line, _ := reader.FieldPos(0)
		if len(record) != fieldsPerRecord {
			logging.Warn("строка %d пропущена: ожидалось %d поля, получено %d", line, fieldsPerRecord, len(record))
			continue
		}
		duration, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			logging.Warn("строка %d пропущена: неверная длительность %q", line, record[2])
			continue
		}
		tracks = append(tracks, playlist.Track{
			Title:    record[0],
			Artist:   record[1],
			Duration: duration,
		})
	}
	return tracks, nil
}

// Marshal возвращает плейлист в виде байтов
func Marshal(p *playlist.Playlist) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, p.Tracks()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// AppendFrom читает треки из r и добавляет их в конец плейлиста
func AppendFrom(r io.Reader, p *playlist.Playlist) (int, error) {
	tracks, err := Decode(r)
	if err != nil {
		return 0, err
	}
	for _, t := range tracks {
		if err := p.Insert(t.Title, t.Artist, t.Duration, playlist.Append); err != nil {
			return 0, err
		}
	}
	return len(tracks), nil
}

// Save сохраняет плейлист в файл
func Save(filePath string, p *playlist.Playlist) error {
	path, err := ExpandPath(filePath)
	if err != nil {
		return err
	}

	data, err := Marshal(p)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("ошибка создания каталога плейлиста: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("ошибка записи файла плейлиста: %w", err)
	}
	logging.Debug("сохранено %d треков в %s", p.Len(), path)
	return nil
}

// Load добавляет в плейлист треки из файла и возвращает их количество
func Load(filePath string, p *playlist.Playlist) (int, error) {
	path, err := ExpandPath(filePath)
	if err != nil {
		return 0, err
	}

	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("ошибка чтения файла плейлиста: %w", err)
	}
	defer file.Close()

	n, err := AppendFrom(file, p)
	if err != nil {
		return 0, err
	}
	logging.Debug("загружено %d треков из %s", n, path)
	return n, nil
}

// FormatDuration форматирует длительность кратчайшей десятичной записью
func FormatDuration(minutes float64) string {
	return strconv.FormatFloat(minutes, 'f', -1, 64)
}

// ExpandPath раскрывает тильду в начале пути
func ExpandPath(filePath string) (string, error) {
	return utils.ExpandHome(filePath)
}
