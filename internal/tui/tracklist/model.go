// Package tracklist содержит модель экрана плейлиста для TUI
package tracklist

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-playlister/internal/playlist"
	"github.com/hazadus/go-playlister/internal/utils"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
	statusStyle       = lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("241"))
	quitTextStyle     = lipgloss.NewStyle().Margin(1, 0, 2, 4)
)

// AddTrackMsg отправляется при запросе добавления трека
type AddTrackMsg struct {
	// Position - позиция вставки, playlist.Append для конца списка
	Position int
}

// keyMap описывает горячие клавиши экрана
type keyMap struct {
	Add      key.Binding
	Delete   key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	Reverse  key.Binding
	Shuffle  key.Binding
	ByTitle  key.Binding
	ByArtist key.Binding
	Repeat   key.Binding
	Next     key.Binding
	Save     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Add:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "добавить")),
		Delete:   key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "удалить")),
		MoveUp:   key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "выше")),
		MoveDown: key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "ниже")),
		Reverse:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "развернуть")),
		Shuffle:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "перемешать")),
		ByTitle:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "по названию")),
		ByArtist: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "по исполнителю")),
		Repeat:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "повтор")),
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "следующий")),
		Save:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "сохранить")),
	}
}

func (k keyMap) shortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Delete, k.MoveUp, k.MoveDown, k.Save}
}

func (k keyMap) fullHelp() []key.Binding {
	return []key.Binding{k.Add, k.Delete, k.MoveUp, k.MoveDown, k.Reverse, k.Shuffle, k.ByTitle, k.ByArtist, k.Repeat, k.Next, k.Save}
}

// trackItem реализует интерфейс list.Item для трека
type trackItem struct {
	entry playlist.Entry
}

func (i trackItem) FilterValue() string {
	return fmt.Sprintf("%s %s", i.entry.Track.Artist, i.entry.Track.Title)
}

// trackItemDelegate реализует отображение элементов списка
type trackItemDelegate struct{}

func (d trackItemDelegate) Height() int                             { return 1 }
func (d trackItemDelegate) Spacing() int                            { return 0 }
func (d trackItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d trackItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(trackItem)
	if !ok {
		return
	}

	// Позиция | Исполнитель | Название | Длительность
	str := fmt.Sprintf("%-4d %s %s %s",
		i.entry.Position,
		utils.PadRight(utils.TruncateString(i.entry.Track.Artist, 20), 20),
		utils.PadRight(utils.TruncateString(i.entry.Track.Title, 50), 50),
		utils.FormatMinutes(i.entry.Track.Duration))

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

// Model представляет модель экрана плейлиста
type Model struct {
	list     list.Model
	playlist *playlist.Playlist
	keys     keyMap
	saveFunc func() error
	status   string
	quitting bool
}

// NewModel создает новую модель экрана плейлиста
func NewModel(p *playlist.Playlist, saveFunc func() error) *Model {
	keys := newKeyMap()

	l := list.New(itemsFrom(p), trackItemDelegate{}, 0, 0)
	l.Title = "Плейлист"
	l.SetShowStatusBar(false)
	l.SetShowTitle(true)
	// Фильтрация отключена: индекс в списке должен совпадать с позицией трека
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle
	l.AdditionalShortHelpKeys = keys.shortHelp
	l.AdditionalFullHelpKeys = keys.fullHelp

	return &Model{
		list:     l,
		playlist: p,
		keys:     keys,
		saveFunc: saveFunc,
	}
}

func itemsFrom(p *playlist.Playlist) []list.Item {
	listing := p.Display()
	items := make([]list.Item, len(listing.Entries))
	for i, e := range listing.Entries {
		items[i] = trackItem{entry: e}
	}
	return items
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// RefreshData обновляет элементы списка из плейлиста
func (m *Model) RefreshData() {
	m.list.SetItems(itemsFrom(m.playlist))
}

// Selected возвращает позицию выбранного трека
func (m *Model) Selected() int {
	return m.list.Index()
}

// Status возвращает последнее сообщение о результате действия
func (m *Model) Status() string {
	return m.status
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 4) // Оставляем место для статуса и справки
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			m.quitting = true
			return m, tea.Quit
		}
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleKey выполняет операции над плейлистом. false - клавиша не обработана.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	selected := m.list.Index()

	switch {
	case key.Matches(msg, m.keys.Add):
		position := playlist.Append
		if !m.playlist.IsEmpty() {
			position = selected + 1
		}
		return func() tea.Msg { return AddTrackMsg{Position: position} }, true

	case key.Matches(msg, m.keys.Delete):
		before := m.playlist.Len()
		if err := m.playlist.RemoveByPosition(selected); err != nil || m.playlist.Len() == before {
			m.apply(err, "Нечего удалять")
			break
		}
		m.apply(nil, "Трек удален")
		if selected >= m.playlist.Len() && selected > 0 {
			m.list.Select(selected - 1)
		}

	case key.Matches(msg, m.keys.MoveUp):
		if err := m.playlist.Move(selected, selected-1); err == nil && selected > 0 {
			m.status = "Трек перемещен выше"
			m.RefreshData()
			m.list.Select(selected - 1)
		}

	case key.Matches(msg, m.keys.MoveDown):
		if err := m.playlist.Move(selected, selected+1); err == nil && selected < m.playlist.Len()-1 {
			m.status = "Трек перемещен ниже"
			m.RefreshData()
			m.list.Select(selected + 1)
		}

	case key.Matches(msg, m.keys.Reverse):
		m.playlist.Reverse()
		m.apply(nil, "Плейлист развернут")

	case key.Matches(msg, m.keys.Shuffle):
		m.playlist.Shuffle()
		m.apply(nil, "Плейлист перемешан")

	case key.Matches(msg, m.keys.ByTitle):
		m.playlist.SortByTitle()
		m.apply(nil, "Отсортировано по названию")

	case key.Matches(msg, m.keys.ByArtist):
		m.playlist.SortByArtist()
		m.apply(nil, "Отсортировано по исполнителю")

	case key.Matches(msg, m.keys.Repeat):
		m.playlist.SetRepeat(!m.playlist.Repeat())
		if m.playlist.Repeat() {
			m.status = "Режим повтора включен"
		} else {
			m.status = "Режим повтора выключен"
		}

	case key.Matches(msg, m.keys.Next):
		// В режиме повтора после последнего трека курсор возвращается к первому
		if next, ok := m.playlist.Next(selected); ok {
			m.list.Select(next)
		} else {
			m.status = "Конец плейлиста"
		}

	case key.Matches(msg, m.keys.Save):
		if m.saveFunc == nil {
			m.status = "Сохранение недоступно"
			break
		}
		if err := m.saveFunc(); err != nil {
			m.status = fmt.Sprintf("Ошибка сохранения: %v", err)
		} else {
			m.status = "Плейлист сохранен"
		}

	default:
		return nil, false
	}
	return nil, true
}

func (m *Model) apply(err error, success string) {
	if err != nil {
		m.status = fmt.Sprintf("Ошибка: %v", err)
		return
	}
	m.status = success
	m.RefreshData()
}

// View отображает модель
func (m *Model) View() string {
	if m.quitting {
		return quitTextStyle.Render("До свидания!")
	}

	status := fmt.Sprintf("Треков: %d • Общая длительность: %s",
		m.playlist.Len(), utils.FormatMinutes(m.playlist.TotalDuration()))
	if m.playlist.Repeat() {
		status += " • 🔁"
	}
	if m.status != "" {
		status += " • " + m.status
	}
	return m.list.View() + "\n" + statusStyle.Render(status)
}
