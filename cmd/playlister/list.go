package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-playlister/internal/menu"
)

// createListCommand создает команду list с привязкой к экземпляру приложения
func (app *Application) createListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tracks in playlist order",
		Long:  `Display the playlist with positions and the total duration.`,
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			app.listTracks()
		},
	}
}

func (app *Application) listTracks() {
	if app.Playlist.IsEmpty() {
		fmt.Println("📚 Плейлист пуст. Добавьте треки с помощью команды 'add'.")
		return
	}

	fmt.Printf("📚 Треков в плейлисте: %d\n\n", app.Playlist.Len())
	menu.WriteListing(os.Stdout, app.Playlist.Display())
}

// createFindCommand создает команду find с привязкой к экземпляру приложения
func (app *Application) createFindCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "find [query]",
		Short: "Find a track by exact title or artist",
		Long:  `Print the first track whose title or artist equals the query. With --all print every match.`,
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			app.findTracks(args[0], all)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "print all matching tracks")

	return cmd
}

func (app *Application) findTracks(query string, all bool) {
	if !all {
		entry, ok := app.Playlist.FindByTitleOrArtist(query)
		if !ok {
			fmt.Println("🔍 Трек не найден")
			return
		}
		fmt.Printf("🔍 %d. %s - %s\n", entry.Position, entry.Track.Artist, entry.Track.Title)
		return
	}

	results := app.Playlist.Search(query)
	if len(results) == 0 {
		fmt.Println("🔍 Трек не найден")
		return
	}
	for _, e := range results {
		fmt.Printf("🔍 %d. %s - %s\n", e.Position, e.Track.Artist, e.Track.Title)
	}
}
