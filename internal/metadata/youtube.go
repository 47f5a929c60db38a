package metadata

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/kkdai/youtube/v2"

	"github.com/hazadus/go-playlister/internal/playlist"
	"github.com/hazadus/go-playlister/internal/utils"
)

var (
	videoIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([a-zA-Z0-9_-]{11})`),
		regexp.MustCompile(`(?:youtube\.com/embed/)([a-zA-Z0-9_-]{11})`),
		regexp.MustCompile(`(?:youtube\.com/v/)([a-zA-Z0-9_-]{11})`),
		regexp.MustCompile(`(?:youtube\.com/shorts/)([a-zA-Z0-9_-]{11})`),
	}
	bareVideoID = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
)

// VideoFetcher получает информацию о видео по ID
type VideoFetcher interface {
	GetVideoContext(ctx context.Context, id string) (*youtube.Video, error)
}

// YouTubeClient создает треки плейлиста по ссылкам на YouTube
type YouTubeClient struct {
	fetcher VideoFetcher
}

// NewYouTubeClient создает клиент поверх youtube.Client
func NewYouTubeClient() *YouTubeClient {
	return &YouTubeClient{fetcher: &youtube.Client{}}
}

// NewYouTubeClientWithFetcher создает клиент с заданным источником данных
func NewYouTubeClientWithFetcher(fetcher VideoFetcher) *YouTubeClient {
	return &YouTubeClient{fetcher: fetcher}
}

// IsYouTubeURL сообщает, похожа ли строка на ссылку YouTube
func IsYouTubeURL(source string) bool {
	return strings.Contains(source, "youtube.com/") || strings.Contains(source, "youtu.be/")
}

// ExtractVideoID извлекает ID видео из различных форматов YouTube URL
func ExtractVideoID(url string) (string, error) {
	for _, re := range videoIDPatterns {
		matches := re.FindStringSubmatch(url)
		if len(matches) > 1 {
			return matches[1], nil
		}
	}

	// Если это просто ID видео (11 символов)
	if bareVideoID.MatchString(url) {
		return url, nil
	}

	return "", fmt.Errorf("не удалось извлечь ID видео из URL: %s", url)
}

// TrackFromURL создает трек из названия, автора и длительности видео
func (c *YouTubeClient) TrackFromURL(ctx context.Context, url string) (playlist.Track, error) {
	videoID, err := ExtractVideoID(url)
	if err != nil {
		return playlist.Track{}, fmt.Errorf("ошибка извлечения ID видео: %w", err)
	}

	video, err := c.fetcher.GetVideoContext(ctx, videoID)
	if err != nil {
		return playlist.Track{}, fmt.Errorf("ошибка получения информации о видео: %w", err)
	}

	artist := strings.TrimSpace(video.Author)
	if artist == "" {
		artist = UnknownArtist
	}

	return playlist.Track{
		Title:    strings.TrimSpace(video.Title),
		Artist:   artist,
		Duration: utils.DurationToMinutes(video.Duration),
	}, nil
}
