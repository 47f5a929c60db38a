// Package playlist содержит упорядоченный список треков и позиционные операции над ним
package playlist

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"
)

// Append - позиция вставки, означающая "в конец списка"
const Append = -1

var (
	// ErrPositionOutOfRange возвращается в строгом режиме при неверной позиции
	ErrPositionOutOfRange = errors.New("позиция вне допустимого диапазона")
	// ErrNotFound возвращается в строгом режиме, если трек не найден
	ErrNotFound = errors.New("трек не найден")
)

// Track хранит данные одного трека плейлиста
type Track struct {
	Title    string
	Artist   string
	Duration float64 // Длительность в минутах
}

// Entry - трек вместе с его текущей позицией
type Entry struct {
	Position int
	Track    Track
}

// Listing - снимок плейлиста для отображения
type Listing struct {
	Entries []Entry
	Total   float64 // Суммарная длительность в минутах
}

// Option настраивает Playlist при создании
type Option func(*Playlist)

// WithStrict включает строгий режим: неверные позиции и промахи поиска возвращают ошибку
func WithStrict() Option {
	return func(p *Playlist) {
		p.strict = true
	}
}

// WithRand задает источник случайных чисел для Shuffle
func WithRand(r *rand.Rand) Option {
	return func(p *Playlist) {
		p.rng = r
	}
}

// Playlist - упорядоченная коллекция треков с адресацией по позиции
type Playlist struct {
	tracks []Track
	strict bool
	repeat bool
	rng    *rand.Rand
}

// NewPlaylist создает пустой плейлист
func NewPlaylist(opts ...Option) *Playlist {
	p := &Playlist{
		tracks: make([]Track, 0),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.rng == nil {
		p.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return p
}

// Strict сообщает, включен ли строгий режим
func (p *Playlist) Strict() bool {
	return p.strict
}

// Len возвращает количество треков
func (p *Playlist) Len() int {
	return len(p.tracks)
}

// IsEmpty возвращает true, если в плейлисте нет треков
func (p *Playlist) IsEmpty() bool {
	return len(p.tracks) == 0
}

// Tracks возвращает копию всех треков
func (p *Playlist) Tracks() []Track {
	result := make([]Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}

// Track возвращает трек по позиции
func (p *Playlist) Track(position int) (Track, bool) {
	if !p.valid(position) {
		return Track{}, false
	}
	return p.tracks[position], true
}

// Insert добавляет трек на указанную позицию.
// Позиция меньше нуля или не меньше Len() означает добавление в конец.
func (p *Playlist) Insert(title, artist string, duration float64, position int) error {
	track := Track{Title: title, Artist: artist, Duration: duration}
	if position < 0 || position >= len(p.tracks) {
		p.tracks = append(p.tracks, track)
		return nil
	}
	p.insertAt(position, track)
	return nil
}

// RemoveByTitle удаляет первый трек с точно совпадающим названием
func (p *Playlist) RemoveByTitle(title string) error {
	for i := range p.tracks {
		if p.tracks[i].Title == title {
			p.removeAt(i)
			return nil
		}
	}
	return p.fail(fmt.Errorf("удаление %q: %w", title, ErrNotFound))
}

// RemoveByPosition удаляет трек на позиции 0..Len()-1
func (p *Playlist) RemoveByPosition(position int) error {
	if !p.valid(position) {
		return p.fail(p.rangeError(position))
	}
	p.removeAt(position)
	return nil
}

// Display возвращает треки с позициями и суммарную длительность
func (p *Playlist) Display() Listing {
	entries := make([]Entry, len(p.tracks))
	for i, t := range p.tracks {
		entries[i] = Entry{Position: i, Track: t}
	}
	return Listing{
		Entries: entries,
		Total:   p.TotalDuration(),
	}
}

// TotalDuration суммирует длительность всех треков
func (p *Playlist) TotalDuration() float64 {
	var total float64
	for _, t := range p.tracks {
		total += t.Duration
	}
	return total
}

// Move переносит трек с позиции from на позицию to.
// Трек сначала извлекается, затем вставляется так, чтобы оказаться
// на индексе to в списке без него.
func (p *Playlist) Move(from, to int) error {
	if !p.valid(from) {
		return p.fail(p.rangeError(from))
	}
	if !p.valid(to) {
		return p.fail(p.rangeError(to))
	}
	if from == to {
		return nil
	}

	track := p.tracks[from]
	p.removeAt(from)
	p.insertAt(to, track)
	return nil
}

// Reverse разворачивает порядок треков на месте
func (p *Playlist) Reverse() {
	for i, j := 0, len(p.tracks)-1; i < j; i, j = i+1, j-1 {
		p.tracks[i], p.tracks[j] = p.tracks[j], p.tracks[i]
	}
}

// FindByTitleOrArtist возвращает первый трек, у которого название или исполнитель равны query
func (p *Playlist) FindByTitleOrArtist(query string) (Entry, bool) {
	for i, t := range p.tracks {
		if t.Title == query || t.Artist == query {
			return Entry{Position: i, Track: t}, true
		}
	}
	return Entry{}, false
}

// Search возвращает все треки, у которых название или исполнитель равны query
func (p *Playlist) Search(query string) []Entry {
	var result []Entry
	for i, t := range p.tracks {
		if t.Title == query || t.Artist == query {
			result = append(result, Entry{Position: i, Track: t})
		}
	}
	return result
}

// Shuffle перемешивает треки (Fisher-Yates)
func (p *Playlist) Shuffle() {
	for i := len(p.tracks) - 1; i > 0; i-- {
		j := p.rng.Intn(i + 1)
		p.tracks[i], p.tracks[j] = p.tracks[j], p.tracks[i]
	}
}

// SortByTitle сортирует треки по названию, сохраняя порядок равных
func (p *Playlist) SortByTitle() {
	sort.SliceStable(p.tracks, func(i, j int) bool {
		return p.tracks[i].Title < p.tracks[j].Title
	})
}

// SortByArtist сортирует треки по исполнителю, сохраняя порядок равных
func (p *Playlist) SortByArtist() {
	sort.SliceStable(p.tracks, func(i, j int) bool {
		return p.tracks[i].Artist < p.tracks[j].Artist
	})
}

// Clear удаляет все треки
func (p *Playlist) Clear() {
	p.tracks = p.tracks[:0]
}

// SetRepeat включает или выключает режим повтора
func (p *Playlist) SetRepeat(enabled bool) {
	p.repeat = enabled
}

// Repeat сообщает, включен ли режим повтора
func (p *Playlist) Repeat() bool {
	return p.repeat
}

// Next возвращает позицию, следующую за position.
// После последнего трека переходит к началу только в режиме повтора.
func (p *Playlist) Next(position int) (int, bool) {
	if len(p.tracks) == 0 || position < -1 || position >= len(p.tracks) {
		return 0, false
	}
	next := position + 1
	if next < len(p.tracks) {
		return next, true
	}
	if p.repeat {
		return 0, true
	}
	return 0, false
}

func (p *Playlist) valid(position int) bool {
	return position >= 0 && position < len(p.tracks)
}

func (p *Playlist) insertAt(position int, track Track) {
	p.tracks = append(p.tracks, Track{})
	copy(p.tracks[position+1:], p.tracks[position:])
	p.tracks[position] = track
}

func (p *Playlist) removeAt(position int) {
	p.tracks = append(p.tracks[:position], p.tracks[position+1:]...)
}

func (p *Playlist) rangeError(position int) error {
	return fmt.Errorf("позиция %d при размере %d: %w", position, len(p.tracks), ErrPositionOutOfRange)
}

// fail отдает ошибку только в строгом режиме
func (p *Playlist) fail(err error) error {
	if p.strict {
		return err
	}
	return nil
}
