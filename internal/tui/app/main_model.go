// Package app содержит основную логику TUI приложения
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-playlister/internal/playlist"
	"github.com/hazadus/go-playlister/internal/tui/editor"
	"github.com/hazadus/go-playlister/internal/tui/tracklist"
)

// ScreenType определяет тип текущего экрана
type ScreenType int

// Константы для типов экранов
const (
	// TracklistScreen - экран плейлиста
	TracklistScreen ScreenType = iota
	// EditorScreen - экран добавления трека
	EditorScreen
)

// MainModel представляет главную модель TUI
type MainModel struct {
	playlist       *playlist.Playlist
	currentScreen  ScreenType
	tracklistModel *tracklist.Model
	editorModel    *editor.Model
	saveFunc       func() error // Функция для сохранения плейлиста
	width, height  int
}

// NewMainModel создает новую главную модель
func NewMainModel(p *playlist.Playlist, saveFunc func() error) *MainModel {
	return &MainModel{
		playlist:       p,
		currentScreen:  TracklistScreen,
		tracklistModel: tracklist.NewModel(p, saveFunc),
		saveFunc:       saveFunc,
	}
}

// CurrentScreen возвращает активный экран
func (m *MainModel) CurrentScreen() ScreenType {
	return m.currentScreen
}

// Init инициализирует модель
func (m *MainModel) Init() tea.Cmd {
	return m.tracklistModel.Init()
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" && m.currentScreen == TracklistScreen {
			return m, tea.Quit
		}

	case tracklist.AddTrackMsg:
		m.currentScreen = EditorScreen
		m.editorModel = editor.NewModel(m.playlist, msg.Position, m.saveFunc)
		if m.width > 0 {
			m.editorModel, _ = m.editorModel.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		}
		return m, m.editorModel.Init()

	case editor.GoBackMsg:
		m.currentScreen = TracklistScreen
		m.editorModel = nil
		m.tracklistModel.RefreshData()
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		// Список получает размеры всегда, чтобы после возврата из формы не было пустого экрана
		m.tracklistModel, cmd = m.tracklistModel.Update(msg)
		if m.editorModel != nil {
			m.editorModel, _ = m.editorModel.Update(msg)
		}
		return m, cmd
	}

	switch m.currentScreen {
	case TracklistScreen:
		m.tracklistModel, cmd = m.tracklistModel.Update(msg)

	case EditorScreen:
		if m.editorModel != nil {
			m.editorModel, cmd = m.editorModel.Update(msg)
		}
	}

	return m, cmd
}

// View отображает интерфейс
func (m *MainModel) View() string {
	switch m.currentScreen {
	case TracklistScreen:
		return m.tracklistModel.View()

	case EditorScreen:
		if m.editorModel != nil {
			return m.editorModel.View()
		}
		return "Ошибка: модель редактора не инициализирована"

	default:
		return "Неизвестный экран"
	}
}
