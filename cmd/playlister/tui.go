package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-playlister/internal/menu"
	"github.com/hazadus/go-playlister/internal/tui"
)

// createMenuCommand создает команду menu с привязкой к экземпляру приложения
func (app *Application) createMenuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive text menu",
		Long:  `Run a numbered text menu for editing the playlist. Changes are saved with the "save" item.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return menu.New(app.Playlist, os.Stdin, os.Stdout, app.FilePath, app.extractor).Run()
		},
	}
}

// createTUICommand создает команду tui с привязкой к экземпляру приложения
func (app *Application) createTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch TUI (Terminal User Interface)",
		Long:  `Launch interactive terminal user interface for editing the playlist.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.NewApp(app.Playlist, app.SavePlaylist).Run()
		},
	}
}
