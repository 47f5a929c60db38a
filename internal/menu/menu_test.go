package menu

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hazadus/go-playlister/internal/playlist"
)

// stubImporter возвращает заранее заданный трек
type stubImporter struct {
	track playlist.Track
	err   error
}

func (s stubImporter) TrackFromFile(string) (playlist.Track, error) {
	return s.track, s.err
}

func runScript(t *testing.T, p *playlist.Playlist, defaultFile string, importer Importer, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	if err := New(p, in, &out, defaultFile, importer).Run(); err != nil {
		t.Fatalf("Ошибка выполнения меню: %v", err)
	}
	return out.String()
}

func titles(p *playlist.Playlist) []string {
	var result []string
	for _, t := range p.Tracks() {
		result = append(result, t.Title)
	}
	return result
}

func TestMenuScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playlist.csv")
	p := playlist.NewPlaylist()

	output := runScript(t, p, path, nil,
		"1", "A", "Artist1", "3.5", "",
		"1", "B", "Artist2", "4", "0",
		"5", "1", "0",
		"6",
		"7", "Artist1",
		"4",
		"8", "",
		"0",
	)

	if got := strings.Join(titles(p), ","); got != "B,A" {
		t.Errorf("Ожидался порядок B,A, получено %s", got)
	}
	if !strings.Contains(output, "🔍 1. Artist1 - A") {
		t.Errorf("Результат поиска не найден в выводе: %s", output)
	}
	if !strings.Contains(output, "Общая длительность: 07:30") {
		t.Errorf("Общая длительность не выведена: %s", output)
	}
	if !strings.Contains(output, "👋 До свидания!") {
		t.Errorf("Ожидалось прощание: %s", output)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Ошибка чтения сохраненного файла: %v", err)
	}
	if string(data) != "B,Artist2,4\nA,Artist1,3.5\n" {
		t.Errorf("Неожиданное содержимое файла: %q", string(data))
	}
}

func TestMenuLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playlist.csv")
	if err := os.WriteFile(path, []byte("X,Y,2\nbroken line\n"), 0644); err != nil {
		t.Fatalf("Ошибка записи файла: %v", err)
	}
	p := playlist.NewPlaylist()

	output := runScript(t, p, path, nil, "9", path, "0")

	if p.Len() != 1 {
		t.Fatalf("Ожидался 1 трек, получено %d", p.Len())
	}
	if !strings.Contains(output, "Загружено треков: 1") {
		t.Errorf("Ожидалось сообщение о загрузке: %s", output)
	}
}

func TestMenuInvalidInput(t *testing.T) {
	p := playlist.NewPlaylist()
	_ = p.Insert("A", "B", 1, playlist.Append)

	output := runScript(t, p, "", nil,
		"42",
		"3", "abc",
		"1", "T", "Ar", "long",
		"3", "7",
		"0",
	)

	if !strings.Contains(output, "Неизвестный пункт меню") {
		t.Errorf("Ожидалась ошибка неизвестного пункта: %s", output)
	}
	if !strings.Contains(output, "не является целым числом") {
		t.Errorf("Ожидалась ошибка разбора позиции: %s", output)
	}
	if !strings.Contains(output, "не является числом") {
		t.Errorf("Ожидалась ошибка разбора длительности: %s", output)
	}
	if p.Len() != 1 {
		t.Errorf("Плейлист не должен измениться, получено %d треков", p.Len())
	}
}

func TestMenuStrictMode(t *testing.T) {
	p := playlist.NewPlaylist(playlist.WithStrict())

	output := runScript(t, p, "", nil, "3", "5", "2", "nothing", "0")

	if strings.Count(output, "❌ Ошибка:") != 2 {
		t.Errorf("Ожидались две ошибки строгого режима: %s", output)
	}
}

func TestMenuEndOfInput(t *testing.T) {
	p := playlist.NewPlaylist()
	var out bytes.Buffer

	err := New(p, strings.NewReader("1\nOnly title"), &out, "", nil).Run()

	if err != nil {
		t.Errorf("Конец ввода не должен быть ошибкой: %v", err)
	}
	if p.Len() != 0 {
		t.Errorf("Незавершенный ввод не должен добавлять трек")
	}
}

func TestMenuNewPlaylistAndRepeat(t *testing.T) {
	p := playlist.NewPlaylist()
	_ = p.Insert("A", "B", 1, playlist.Append)

	output := runScript(t, p, "", nil, "13", "14", "n", "0")

	if !p.IsEmpty() {
		t.Error("Ожидался пустой плейлист")
	}
	if !p.Repeat() {
		t.Error("Ожидался включенный режим повтора")
	}
	if !strings.Contains(output, "Режим повтора включен") {
		t.Errorf("Ожидалось сообщение о режиме повтора: %s", output)
	}
}

func TestMenuSortAndShuffle(t *testing.T) {
	p := playlist.NewPlaylist()
	_ = p.Insert("b", "Zed", 1, playlist.Append)
	_ = p.Insert("a", "Amy", 1, playlist.Append)
	_ = p.Insert("c", "Amy", 1, playlist.Append)

	runScript(t, p, "", nil, "11")
	if got := strings.Join(titles(p), ","); got != "a,b,c" {
		t.Errorf("Ожидался порядок a,b,c, получено %s", got)
	}

	runScript(t, p, "", nil, "12")
	if got := strings.Join(titles(p), ","); got != "a,c,b" {
		t.Errorf("Ожидался порядок a,c,b, получено %s", got)
	}

	runScript(t, p, "", nil, "10")
	if p.Len() != 3 {
		t.Errorf("Перемешивание не должно менять размер")
	}
}

func TestMenuImport(t *testing.T) {
	p := playlist.NewPlaylist()
	importer := stubImporter{track: playlist.Track{Title: "Song", Artist: "Band", Duration: 2.5}}

	output := runScript(t, p, "", importer, "15", "/music/Band - Song.mp3", "0")

	track, ok := p.Track(0)
	if !ok || track.Title != "Song" {
		t.Fatalf("Ожидался импортированный трек, получено %+v", track)
	}
	if !strings.Contains(output, "Добавлен трек: Band - Song") {
		t.Errorf("Ожидалось сообщение об импорте: %s", output)
	}

	failing := stubImporter{err: errors.New("ошибка декодирования MP3")}
	output = runScript(t, p, "", failing, "15", "/music/bad.mp3", "0")
	if !strings.Contains(output, "ошибка декодирования MP3") {
		t.Errorf("Ожидалась ошибка импорта: %s", output)
	}
	if p.Len() != 1 {
		t.Errorf("Неудачный импорт не должен добавлять трек")
	}
}

func TestWriteListingEmpty(t *testing.T) {
	var out bytes.Buffer
	WriteListing(&out, playlist.NewPlaylist().Display())

	if !strings.Contains(out.String(), "Плейлист пуст") {
		t.Errorf("Ожидалось сообщение о пустом плейлисте: %s", out.String())
	}
}
