package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-playlister/internal/metadata"
	"github.com/hazadus/go-playlister/internal/playlist"
	"github.com/hazadus/go-playlister/internal/utils"
)

// createImportCommand создает команду import с привязкой к экземпляру приложения
func (app *Application) createImportCommand(ctx context.Context) *cobra.Command {
	var position int

	cmd := &cobra.Command{
		Use:   "import [mp3 file or YouTube URL]...",
		Short: "Add tracks from mp3 files or YouTube videos",
		Long:  `Read title, artist and duration from mp3 tags or YouTube video info and add the tracks to the playlist.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Создаем контекст с таймаутом для запросов к YouTube
			importCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
			defer cancel()
			return app.importTracks(importCtx, args, position)
		},
	}

	cmd.Flags().IntVarP(&position, "position", "p", playlist.Append, "insert position of the first track, -1 appends")

	return cmd
}

func (app *Application) importTracks(ctx context.Context, sources []string, position int) error {
	// Любая отрицательная позиция означает добавление в конец
	if position < 0 {
		position = playlist.Append
	}

	for _, source := range sources {
		track, err := app.trackFromSource(ctx, source)
		if err != nil {
			return fmt.Errorf("ошибка импорта %s: %w", source, err)
		}

		if err := app.Playlist.Insert(track.Title, track.Artist, track.Duration, position); err != nil {
			return err
		}
		if position != playlist.Append {
			position++
		}

		fmt.Printf("🎵 Добавлен трек: %s - %s (%s)\n",
			track.Artist, track.Title, utils.FormatMinutes(track.Duration))
	}

	return app.SavePlaylist()
}

func (app *Application) trackFromSource(ctx context.Context, source string) (playlist.Track, error) {
	if metadata.IsYouTubeURL(source) {
		fmt.Printf("🌐 Получаем информацию о видео: %s\n", source)
		return app.youtube.TrackFromURL(ctx, source)
	}
	return app.extractor.TrackFromFile(source)
}
