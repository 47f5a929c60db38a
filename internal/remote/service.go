// Package remote предоставляет синхронизацию файла плейлиста с удаленным хранилищем
package remote

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/hazadus/go-playlister/internal/codec"
	"github.com/hazadus/go-playlister/internal/logging"
	"github.com/hazadus/go-playlister/internal/playlist"
)

// ObjectStore - хранилище объектов, в которое выгружается плейлист
type ObjectStore interface {
	Upload(ctx context.Context, reader io.Reader, key string) (string, error)
	Download(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// Service управляет выгрузкой и загрузкой плейлиста
type Service struct {
	store ObjectStore
	key   string
}

// NewService создает новый сервис синхронизации
func NewService(store ObjectStore, key string) *Service {
	return &Service{
		store: store,
		key:   key,
	}
}

// PushResult содержит результат выгрузки
type PushResult struct {
	URL    string
	Size   int64
	Tracks int
}

// Push сериализует плейлист и выгружает его в хранилище
func (s *Service) Push(ctx context.Context, p *playlist.Playlist) (*PushResult, error) {
	data, err := codec.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации плейлиста: %w", err)
	}

	url, err := s.store.Upload(ctx, bytes.NewReader(data), s.key)
	if err != nil {
		return nil, fmt.Errorf("ошибка выгрузки плейлиста: %w", err)
	}
	logging.Info("плейлист выгружен: %s (%d треков)", url, p.Len())

	return &PushResult{
		URL:    url,
		Size:   int64(len(data)),
		Tracks: p.Len(),
	}, nil
}

// Pull скачивает плейлист из хранилища и добавляет треки в конец p
func (s *Service) Pull(ctx context.Context, p *playlist.Playlist) (int, error) {
	data, err := s.store.Download(ctx, s.key)
	if err != nil {
		return 0, fmt.Errorf("ошибка загрузки плейлиста: %w", err)
	}

	n, err := codec.AppendFrom(bytes.NewReader(data), p)
	if err != nil {
		return 0, fmt.Errorf("ошибка разбора плейлиста: %w", err)
	}
	logging.Info("из хранилища получено %d треков", n)
	return n, nil
}

// Remove удаляет удаленную копию плейлиста
func (s *Service) Remove(ctx context.Context) error {
	if err := s.store.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("ошибка удаления плейлиста: %w", err)
	}
	logging.Info("удаленная копия плейлиста удалена: %s", s.key)
	return nil
}
