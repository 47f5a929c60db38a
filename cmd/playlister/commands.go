package main

import (
	"context"

	"github.com/spf13/cobra"
)

// createRootCommand создает корневую команду с настроенными подкомандами
func (app *Application) createRootCommand(ctx context.Context) *cobra.Command {
	var (
		configPath string
		filePath   string
		strict     bool
	)

	rootCmd := &cobra.Command{
		Use:          "playlister",
		Short:        "A command line tool to manage an ordered playlist",
		Long:         `A command line tool to build, reorder and search an ordered playlist stored in a flat file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return app.Initialize(configPath, filePath, strict)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "path to the config file")
	rootCmd.PersistentFlags().StringVarP(&filePath, "file", "f", "", "playlist file (default from config)")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "report invalid positions and missing tracks as errors")

	// Добавляем команды, передавая в них экземпляр приложения и контекст
	rootCmd.AddCommand(app.createAddCommand())
	rootCmd.AddCommand(app.createRemoveCommand())
	rootCmd.AddCommand(app.createListCommand())
	rootCmd.AddCommand(app.createMoveCommand())
	rootCmd.AddCommand(app.createReverseCommand())
	rootCmd.AddCommand(app.createFindCommand())
	rootCmd.AddCommand(app.createShuffleCommand())
	rootCmd.AddCommand(app.createSortCommand())
	rootCmd.AddCommand(app.createImportCommand(ctx))
	rootCmd.AddCommand(app.createPushCommand(ctx))
	rootCmd.AddCommand(app.createPullCommand(ctx))
	rootCmd.AddCommand(app.createMenuCommand())
	rootCmd.AddCommand(app.createTUICommand())

	return rootCmd
}
