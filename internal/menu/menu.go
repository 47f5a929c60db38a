// Package menu содержит текстовое интерактивное меню для управления плейлистом
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hazadus/go-playlister/internal/codec"
	"github.com/hazadus/go-playlister/internal/logging"
	"github.com/hazadus/go-playlister/internal/playlist"
	"github.com/hazadus/go-playlister/internal/utils"
)

// Importer создает трек из аудио файла
type Importer interface {
	TrackFromFile(filePath string) (playlist.Track, error)
}

// item - пункт меню
type item struct {
	key    string
	label  string
	action func(m *Menu) bool // false - выход из меню
}

// Menu читает команды из in и выполняет их над плейлистом
type Menu struct {
	playlist    *playlist.Playlist
	scanner     *bufio.Scanner
	out         io.Writer
	defaultFile string
	importer    Importer
	items       []item
}

// New создает меню. defaultFile используется для сохранения и загрузки,
// если пользователь не ввел имя файла.
func New(p *playlist.Playlist, in io.Reader, out io.Writer, defaultFile string, importer Importer) *Menu {
	m := &Menu{
		playlist:    p,
		scanner:     bufio.NewScanner(in),
		out:         out,
		defaultFile: defaultFile,
		importer:    importer,
	}
	m.items = []item{
		{"1", "Добавить трек", (*Menu).add},
		{"2", "Удалить трек по названию", (*Menu).removeByTitle},
		{"3", "Удалить трек по позиции", (*Menu).removeByPosition},
		{"4", "Показать плейлист", (*Menu).display},
		{"5", "Переместить трек", (*Menu).move},
		{"6", "Развернуть плейлист", (*Menu).reverse},
		{"7", "Найти трек", (*Menu).search},
		{"8", "Сохранить в файл", (*Menu).save},
		{"9", "Загрузить из файла", (*Menu).load},
		{"10", "Перемешать", (*Menu).shuffle},
		{"11", "Сортировать по названию", (*Menu).sortByTitle},
		{"12", "Сортировать по исполнителю", (*Menu).sortByArtist},
		{"13", "Режим повтора вкл/выкл", (*Menu).toggleRepeat},
		{"14", "Новый плейлист", (*Menu).newPlaylist},
		{"15", "Импортировать аудио файл", (*Menu).importFile},
		{"0", "Выход", func(*Menu) bool { return false }},
	}
	return m
}

// Run выполняет цикл меню до выбора "Выход" или конца ввода
func (m *Menu) Run() error {
	for {
		m.printMenu()
		choice, ok := m.prompt("Выберите пункт")
		if !ok {
			fmt.Fprintln(m.out)
			return m.scanner.Err()
		}

		action := m.find(choice)
		if action == nil {
			m.printf("❌ Неизвестный пункт меню: %q\n", choice)
			continue
		}
		if !action(m) {
			m.printf("👋 До свидания!\n")
			return nil
		}
	}
}

func (m *Menu) find(key string) func(*Menu) bool {
	for _, it := range m.items {
		if it.key == key {
			return it.action
		}
	}
	return nil
}

func (m *Menu) printMenu() {
	m.printf("\n🎵 Плейлист: %d треков\n", m.playlist.Len())
	for _, it := range m.items {
		m.printf("%3s. %s\n", it.key, it.label)
	}
}

func (m *Menu) printf(format string, args ...interface{}) {
	fmt.Fprintf(m.out, format, args...)
}

// prompt выводит подсказку и читает строку. false означает конец ввода.
func (m *Menu) prompt(label string) (string, bool) {
	m.printf("%s: ", label)
	if !m.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.scanner.Text()), true
}

// promptInt читает целое число. Пустой ввод возвращает fallback.
func (m *Menu) promptInt(label string, fallback int) (int, bool) {
	text, ok := m.prompt(label)
	if !ok {
		return 0, false
	}
	if text == "" {
		return fallback, true
	}
	value, err := strconv.Atoi(text)
	if err != nil {
		m.printf("❌ Ошибка: %q не является целым числом\n", text)
		return 0, false
	}
	return value, true
}

// report выводит результат операции
func (m *Menu) report(err error, success string) {
	if err != nil {
		m.printf("❌ Ошибка: %v\n", err)
		return
	}
	m.printf("✅ %s\n", success)
}

func (m *Menu) add() bool {
	title, ok := m.prompt("Название")
	if !ok {
		return true
	}
	artist, ok := m.prompt("Исполнитель")
	if !ok {
		return true
	}
	durationText, ok := m.prompt("Длительность (минуты)")
	if !ok {
		return true
	}
	duration, err := strconv.ParseFloat(strings.ReplaceAll(durationText, ",", "."), 64)
	if err != nil {
		m.printf("❌ Ошибка: %q не является числом\n", durationText)
		return true
	}
	position, ok := m.promptInt("Позиция (-1 или пусто - в конец)", playlist.Append)
	if !ok {
		return true
	}

	m.report(m.playlist.Insert(title, artist, duration, position), "Трек добавлен")
	return true
}

func (m *Menu) removeByTitle() bool {
	title, ok := m.prompt("Название трека для удаления")
	if !ok {
		return true
	}
	m.report(m.playlist.RemoveByTitle(title), "Трек удален")
	return true
}

func (m *Menu) removeByPosition() bool {
	position, ok := m.promptInt("Позиция трека для удаления", -1)
	if !ok {
		return true
	}
	m.report(m.playlist.RemoveByPosition(position), "Трек удален")
	return true
}

func (m *Menu) display() bool {
	WriteListing(m.out, m.playlist.Display())
	return true
}

func (m *Menu) move() bool {
	from, ok := m.promptInt("Текущая позиция", -1)
	if !ok {
		return true
	}
	to, ok := m.promptInt("Новая позиция", -1)
	if !ok {
		return true
	}
	m.report(m.playlist.Move(from, to), "Трек перемещен")
	return true
}

func (m *Menu) reverse() bool {
	m.playlist.Reverse()
	m.printf("✅ Плейлист развернут\n")
	return true
}

func (m *Menu) search() bool {
	query, ok := m.prompt("Название или исполнитель")
	if !ok {
		return true
	}
	results := m.playlist.Search(query)
	if len(results) == 0 {
		m.printf("🔍 Трек не найден\n")
		return true
	}
	for _, e := range results {
		m.printf("🔍 %d. %s - %s\n", e.Position, e.Track.Artist, e.Track.Title)
	}
	return true
}

func (m *Menu) fileName(label string) (string, bool) {
	name, ok := m.prompt(fmt.Sprintf("%s (пусто - %s)", label, m.defaultFile))
	if !ok {
		return "", false
	}
	if name == "" {
		name = m.defaultFile
	}
	return name, true
}

func (m *Menu) save() bool {
	name, ok := m.fileName("Файл для сохранения")
	if !ok {
		return true
	}
	if err := codec.Save(name, m.playlist); err != nil {
		m.report(err, "")
		return true
	}
	m.printf("💾 Плейлист сохранен в %s\n", name)
	return true
}

func (m *Menu) load() bool {
	name, ok := m.fileName("Файл для загрузки")
	if !ok {
		return true
	}
	n, err := codec.Load(name, m.playlist)
	if err != nil {
		m.report(err, "")
		return true
	}
	m.printf("📂 Загружено треков: %d из %s\n", n, name)
	return true
}

func (m *Menu) shuffle() bool {
	m.playlist.Shuffle()
	m.printf("✅ Плейлист перемешан\n")
	return true
}

func (m *Menu) sortByTitle() bool {
	m.playlist.SortByTitle()
	m.printf("✅ Плейлист отсортирован по названию\n")
	return true
}

func (m *Menu) sortByArtist() bool {
	m.playlist.SortByArtist()
	m.printf("✅ Плейлист отсортирован по исполнителю\n")
	return true
}

func (m *Menu) toggleRepeat() bool {
	m.playlist.SetRepeat(!m.playlist.Repeat())
	if m.playlist.Repeat() {
		m.printf("🔁 Режим повтора включен\n")
	} else {
		m.printf("🔁 Режим повтора выключен\n")
	}
	return true
}

func (m *Menu) newPlaylist() bool {
	answer, ok := m.prompt("Сохранить текущий плейлист? (y/n)")
	if !ok {
		return true
	}
	if strings.EqualFold(answer, "y") {
		if err := codec.Save(m.defaultFile, m.playlist); err != nil {
			m.report(err, "")
			return true
		}
		m.printf("💾 Плейлист сохранен в %s\n", m.defaultFile)
	}
	m.playlist.Clear()
	m.printf("✅ Создан новый плейлист\n")
	return true
}

func (m *Menu) importFile() bool {
	if m.importer == nil {
		m.printf("❌ Импорт недоступен\n")
		return true
	}
	path, ok := m.prompt("Путь к аудио файлу")
	if !ok {
		return true
	}
	track, err := m.importer.TrackFromFile(path)
	if err != nil {
		logging.Debug("импорт %s: %v", path, err)
		m.report(err, "")
		return true
	}
	err = m.playlist.Insert(track.Title, track.Artist, track.Duration, playlist.Append)
	m.report(err, fmt.Sprintf("Добавлен трек: %s - %s", track.Artist, track.Title))
	return true
}

// WriteListing печатает плейлист таблицей с общей длительностью
func WriteListing(w io.Writer, listing playlist.Listing) {
	if len(listing.Entries) == 0 {
		fmt.Fprintln(w, "📚 Плейлист пуст.")
		return
	}

	fmt.Fprintf(w, "%-4s %s %s %s\n",
		"#", utils.PadRight("Исполнитель", 30), utils.PadRight("Название", 30), "Длительность")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, e := range listing.Entries {
		fmt.Fprintf(w, "%-4d %s %s %s\n",
			e.Position,
			utils.PadRight(utils.TruncateString(e.Track.Artist, 30), 30),
			utils.PadRight(utils.TruncateString(e.Track.Title, 30), 30),
			utils.FormatMinutes(e.Track.Duration))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "⏱️  Общая длительность: %s\n", utils.FormatMinutes(listing.Total))
}
