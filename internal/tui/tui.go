// Package tui содержит компоненты для текстового пользовательского интерфейса
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-playlister/internal/playlist"
	"github.com/hazadus/go-playlister/internal/tui/app"
)

// App представляет основное TUI приложение
type App struct {
	playlist *playlist.Playlist
	saveFunc func() error // Функция для сохранения плейлиста
	options  []tea.ProgramOption
}

// NewApp создает новый экземпляр TUI приложения
func NewApp(p *playlist.Playlist, saveFunc func() error, options ...tea.ProgramOption) *App {
	if len(options) == 0 {
		options = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &App{
		playlist: p,
		saveFunc: saveFunc,
		options:  options,
	}
}

// Run запускает TUI приложение
func (tuiApp *App) Run() error {
	model := app.NewMainModel(tuiApp.playlist, tuiApp.saveFunc)
	_, err := tea.NewProgram(model, tuiApp.options...).Run()
	return err
}
