package metadata

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/kkdai/youtube/v2"
)

// mockFetcher мок для получения информации о видео
type mockFetcher struct {
	video *youtube.Video
	err   error
	gotID string
}

func (m *mockFetcher) GetVideoContext(_ context.Context, id string) (*youtube.Video, error) {
	m.gotID = id
	return m.video, m.err
}

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		url      string
		expected string
		wantErr  bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"https://example.com/video", "", true},
		{"not a video", "", true},
	}

	for _, test := range tests {
		id, err := ExtractVideoID(test.url)
		if test.wantErr {
			if err == nil {
				t.Errorf("ExtractVideoID(%s): ожидалась ошибка", test.url)
			}
			continue
		}
		if err != nil {
			t.Errorf("ExtractVideoID(%s): неожиданная ошибка %v", test.url, err)
		}
		if id != test.expected {
			t.Errorf("ExtractVideoID(%s) = %s; expected %s", test.url, id, test.expected)
		}
	}
}

func TestIsYouTubeURL(t *testing.T) {
	if !IsYouTubeURL("https://youtu.be/dQw4w9WgXcQ") {
		t.Error("Ожидалось распознавание короткой ссылки")
	}
	if IsYouTubeURL("/music/song.mp3") {
		t.Error("Путь к файлу не является ссылкой YouTube")
	}
}

func TestTrackFromURL(t *testing.T) {
	fetcher := &mockFetcher{
		video: &youtube.Video{
			Title:    " Never Gonna Give You Up ",
			Author:   "Rick Astley",
			Duration: 3*time.Minute + 33*time.Second,
		},
	}
	client := NewYouTubeClientWithFetcher(fetcher)

	track, err := client.TrackFromURL(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Неожиданная ошибка: %v", err)
	}

	if fetcher.gotID != "dQw4w9WgXcQ" {
		t.Errorf("Ожидался ID dQw4w9WgXcQ, получено %s", fetcher.gotID)
	}
	if track.Title != "Never Gonna Give You Up" {
		t.Errorf("Неожиданное название: %q", track.Title)
	}
	if track.Artist != "Rick Astley" {
		t.Errorf("Неожиданный исполнитель: %q", track.Artist)
	}
	if math.Abs(track.Duration-3.55) > 1e-9 {
		t.Errorf("Ожидалась длительность 3.55, получено %v", track.Duration)
	}
}

func TestTrackFromURLErrors(t *testing.T) {
	client := NewYouTubeClientWithFetcher(&mockFetcher{err: errors.New("This video is unavailable")})

	_, err := client.TrackFromURL(context.Background(), "https://example.com/video")
	if err == nil || !strings.Contains(err.Error(), "ошибка извлечения ID видео") {
		t.Errorf("Ожидалась ошибка извлечения ID, получено: %v", err)
	}

	_, err = client.TrackFromURL(context.Background(), "dQw4w9WgXcQ")
	if err == nil || !strings.Contains(err.Error(), "This video is unavailable") {
		t.Errorf("Ожидалась ошибка получения видео, получено: %v", err)
	}
}

func TestTrackFromURLEmptyAuthor(t *testing.T) {
	client := NewYouTubeClientWithFetcher(&mockFetcher{video: &youtube.Video{Title: "Clip"}})

	track, err := client.TrackFromURL(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Неожиданная ошибка: %v", err)
	}
	if track.Artist != UnknownArtist {
		t.Errorf("Ожидался %s, получено %s", UnknownArtist, track.Artist)
	}
}
