package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-playlister/internal/logging"
	"github.com/hazadus/go-playlister/internal/remote"
	"github.com/hazadus/go-playlister/internal/s3"
	"github.com/hazadus/go-playlister/internal/utils"
)

// createPushCommand создает команду push с привязкой к экземпляру приложения
func (app *Application) createPushCommand(ctx context.Context) *cobra.Command {
	var remove bool

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Upload the playlist to S3 storage",
		Long:  `Upload the playlist file contents to the configured S3 bucket. With --delete the remote copy is removed instead.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			pushCtx, cancel := context.WithTimeout(ctx, time.Minute)
			defer cancel()
			if remove {
				return app.deleteRemote(pushCtx)
			}
			return app.push(pushCtx)
		},
	}

	cmd.Flags().BoolVar(&remove, "delete", false, "delete the remote copy instead of uploading")

	return cmd
}

func (app *Application) push(ctx context.Context) error {
	service, err := app.remoteService()
	if err != nil {
		return err
	}

	fmt.Printf("📤 Выгружаем плейлист в S3:\n")
	fmt.Printf("   Бакет: %s\n", app.Config.AwsBucketName)
	fmt.Printf("   Ключ: %s\n", app.Config.RemoteKey)
	fmt.Println()

	result, err := service.Push(ctx, app.Playlist)
	if err != nil {
		return err
	}

	fmt.Printf("✅ Плейлист выгружен: %d треков, %s\n", result.Tracks, utils.FormatFileSize(result.Size))
	fmt.Printf("   URL: %s\n", result.URL)
	return nil
}

func (app *Application) deleteRemote(ctx context.Context) error {
	service, err := app.remoteService()
	if err != nil {
		return err
	}

	if err := service.Remove(ctx); err != nil {
		return err
	}

	fmt.Printf("🗑️ Удаленная копия плейлиста удалена: %s\n", app.Config.RemoteKey)
	return nil
}

// createPullCommand создает команду pull с привязкой к экземпляру приложения
func (app *Application) createPullCommand(ctx context.Context) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Download the playlist from S3 storage",
		Long:  `Download the playlist from the configured S3 bucket and append its tracks to the local playlist.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			pullCtx, cancel := context.WithTimeout(ctx, time.Minute)
			defer cancel()
			return app.pull(pullCtx, replace)
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "clear the local playlist before appending")

	return cmd
}

func (app *Application) pull(ctx context.Context, replace bool) error {
	service, err := app.remoteService()
	if err != nil {
		return err
	}

	if replace {
		app.Playlist.Clear()
	}

	n, err := service.Pull(ctx, app.Playlist)
	if err != nil {
		return err
	}

	fmt.Printf("📥 Получено треков из S3: %d\n", n)
	return app.SavePlaylist()
}

// remoteService создает сервис синхронизации поверх настроенного хранилища
func (app *Application) remoteService() (*remote.Service, error) {
	if app.store != nil {
		return remote.NewService(app.store, app.Config.RemoteKey), nil
	}

	if !app.Config.RemoteEnabled() {
		return nil, errors.New("удаленное хранилище не настроено: укажите aws_bucket_name в " + defaultConfigPath)
	}

	storage, err := s3.NewStorage(&s3.Config{
		Region:     app.Config.AwsRegion,
		AccessKey:  app.Config.AwsAccessKey,
		SecretKey:  app.Config.AwsSecretKey,
		Endpoint:   app.Config.AwsEndpoint,
		BucketName: app.Config.AwsBucketName,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка создания S3 хранилища: %w", err)
	}
	logging.Debug("S3 бакет: %s, ключ: %s", storage.Bucket(), app.Config.RemoteKey)

	return remote.NewService(storage, app.Config.RemoteKey), nil
}
