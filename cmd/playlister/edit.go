package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-playlister/internal/playlist"
)

// createAddCommand создает команду add с привязкой к экземпляру приложения
func (app *Application) createAddCommand() *cobra.Command {
	var (
		artist   string
		duration float64
		position int
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a track to the playlist",
		Long:  `Insert a track at the given position. A negative or out of range position appends it.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := app.Playlist.Insert(args[0], artist, duration, position); err != nil {
				return err
			}
			fmt.Printf("✅ Трек добавлен: %s - %s\n", artist, args[0])
			return app.SavePlaylist()
		},
	}

	cmd.Flags().StringVarP(&artist, "artist", "a", "", "track artist")
	cmd.Flags().Float64VarP(&duration, "duration", "d", 0, "track duration in minutes")
	cmd.Flags().IntVarP(&position, "position", "p", playlist.Append, "insert position, -1 appends")

	return cmd
}

// createRemoveCommand создает команду remove с привязкой к экземпляру приложения
func (app *Application) createRemoveCommand() *cobra.Command {
	var (
		title    string
		position int
	)

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a track by title or position",
		Long:  `Remove the first track with exactly the given title, or the track at the given position.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			before := app.Playlist.Len()

			var err error
			switch {
			case cmd.Flags().Changed("title"):
				err = app.Playlist.RemoveByTitle(title)
			case cmd.Flags().Changed("position"):
				err = app.Playlist.RemoveByPosition(position)
			default:
				return errors.New("укажите --title или --position")
			}
			if err != nil {
				return err
			}

			if app.Playlist.Len() == before {
				fmt.Println("ℹ️  Трек не найден, плейлист не изменен")
				return nil
			}
			fmt.Println("🗑️  Трек удален")
			return app.SavePlaylist()
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "exact title of the track")
	cmd.Flags().IntVarP(&position, "position", "p", 0, "position of the track")
	cmd.MarkFlagsMutuallyExclusive("title", "position")

	return cmd
}

// createMoveCommand создает команду move с привязкой к экземпляру приложения
func (app *Application) createMoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "move [from] [to]",
		Short: "Move a track to another position",
		Long:  `Move the track at position "from" so that it ends up at position "to".`,
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			from, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			to, err := parsePosition(args[1])
			if err != nil {
				return err
			}

			n := app.Playlist.Len()
			changed := from != to && from >= 0 && from < n && to >= 0 && to < n

			if err := app.Playlist.Move(from, to); err != nil {
				return err
			}
			if !changed {
				fmt.Println("ℹ️  Плейлист не изменен")
				return nil
			}

			track, _ := app.Playlist.Track(to)
			fmt.Printf("↕️  Трек перемещен: %s (%d → %d)\n", track.Title, from, to)
			return app.SavePlaylist()
		},
	}
}

// createReverseCommand создает команду reverse с привязкой к экземпляру приложения
func (app *Application) createReverseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reverse",
		Short: "Reverse the playlist order",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			app.Playlist.Reverse()
			fmt.Println("🔄 Плейлист развернут")
			return app.SavePlaylist()
		},
	}
}

// createShuffleCommand создает команду shuffle с привязкой к экземпляру приложения
func (app *Application) createShuffleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shuffle",
		Short: "Shuffle the playlist",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			app.Playlist.Shuffle()
			fmt.Println("🔀 Плейлист перемешан")
			return app.SavePlaylist()
		},
	}
}

// createSortCommand создает команду sort с привязкой к экземпляру приложения
func (app *Application) createSortCommand() *cobra.Command {
	var by string

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort the playlist by title or artist",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			switch by {
			case "title":
				app.Playlist.SortByTitle()
			case "artist":
				app.Playlist.SortByArtist()
			default:
				return fmt.Errorf("неизвестное поле сортировки %q: ожидается title или artist", by)
			}
			fmt.Printf("✅ Плейлист отсортирован (%s)\n", by)
			return app.SavePlaylist()
		},
	}

	cmd.Flags().StringVar(&by, "by", "title", "sort key: title or artist")

	return cmd
}

func parsePosition(s string) (int, error) {
	position, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("неверная позиция '%s': позиция должна быть числом", s)
	}
	return position, nil
}
