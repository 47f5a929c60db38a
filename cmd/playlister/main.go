package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/hazadus/go-playlister/internal/codec"
	"github.com/hazadus/go-playlister/internal/config"
	"github.com/hazadus/go-playlister/internal/logging"
	"github.com/hazadus/go-playlister/internal/metadata"
	"github.com/hazadus/go-playlister/internal/playlist"
	"github.com/hazadus/go-playlister/internal/remote"
)

const (
	defaultConfigPath = "~/.playlister"
)

// Application содержит состояние приложения для всех команд
type Application struct {
	Config   *config.Config
	Playlist *playlist.Playlist
	FilePath string // Файл плейлиста, с которым работают команды

	extractor *metadata.Extractor
	youtube   *metadata.YouTubeClient
	store     remote.ObjectStore // Если nil, создается S3 хранилище из конфигурации
}

// NewApplication создает приложение с конфигурацией по умолчанию
func NewApplication() *Application {
	cfg := config.Default()
	return &Application{
		Config:    cfg,
		Playlist:  playlist.NewPlaylist(),
		FilePath:  cfg.PlaylistFile,
		extractor: metadata.NewExtractor(),
		youtube:   metadata.NewYouTubeClient(),
	}
}

// Initialize загружает конфигурацию и плейлист. Пустой filePath означает
// файл из конфигурации, strict включает строгий режим поверх конфигурации.
func (app *Application) Initialize(configPath, filePath string, strict bool) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}
	app.Config = cfg

	logging.SetLevel(logging.ParseLevel(cfg.LogLevel))
	logging.Debug("конфигурация загружена, уровень логирования: %s", logging.GetLevel())

	if filePath == "" {
		filePath = cfg.PlaylistFile
	}
	app.FilePath = filePath

	var opts []playlist.Option
	if strict || cfg.Strict {
		opts = append(opts, playlist.WithStrict())
	}
	app.Playlist = playlist.NewPlaylist(opts...)

	n, err := codec.Load(app.FilePath, app.Playlist)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logging.Debug("файл плейлиста %s не найден, начинаем с пустого", app.FilePath)
			return nil
		}
		return fmt.Errorf("ошибка загрузки плейлиста: %w", err)
	}
	logging.Debug("загружено %d треков из %s", n, app.FilePath)
	return nil
}

// SavePlaylist сохраняет плейлист в файл приложения
func (app *Application) SavePlaylist() error {
	if err := codec.Save(app.FilePath, app.Playlist); err != nil {
		return fmt.Errorf("ошибка сохранения плейлиста: %w", err)
	}
	logging.Debug("плейлист сохранен в %s", app.FilePath)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := NewApplication()
	if err := app.createRootCommand(ctx).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
