// Package editor содержит модель экрана добавления трека для TUI
package editor

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-playlister/internal/playlist"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Margin(1, 0)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(15)
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Margin(1, 0)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Margin(1, 0)
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0)
)

// GoBackMsg отправляется при возврате к списку треков
type GoBackMsg struct{}

// fieldType определяет тип поля формы
type fieldType int

const (
	titleField fieldType = iota
	artistField
	durationField
	positionField
	numFields
)

// Model представляет модель формы добавления трека
type Model struct {
	playlist   *playlist.Playlist
	inputs     []textinput.Model
	focusIndex int
	err        string
	success    string
	saved      bool
	saveFunc   func() error // Функция для сохранения плейлиста в файл
}

// NewModel создает форму добавления трека. position - позиция вставки по умолчанию.
func NewModel(p *playlist.Playlist, position int, saveFunc func() error) *Model {
	inputs := make([]textinput.Model, numFields)

	inputs[titleField] = textinput.New()
	inputs[titleField].Placeholder = "Введите название трека"
	inputs[titleField].Focus()
	inputs[titleField].PromptStyle = focusedStyle
	inputs[titleField].TextStyle = focusedStyle

	inputs[artistField] = textinput.New()
	inputs[artistField].Placeholder = "Введите исполнителя"

	// Длительность в минутах, дробная часть допускается
	inputs[durationField] = textinput.New()
	inputs[durationField].Placeholder = "Длительность в минутах"

	inputs[positionField] = textinput.New()
	inputs[positionField].Placeholder = "Пусто - в конец"
	if position != playlist.Append {
		inputs[positionField].SetValue(strconv.Itoa(position))
	}

	return &Model{
		playlist: p,
		inputs:   inputs,
		saveFunc: saveFunc,
	}
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Err возвращает текст последней ошибки проверки формы
func (m *Model) Err() string {
	return m.err
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, func() tea.Msg {
				return GoBackMsg{}
			}

		case "ctrl+s":
			return m, m.addTrack()

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			if s == "enter" && m.focusIndex == len(m.inputs) {
				// Enter на кнопке "Добавить"
				return m, m.addTrack()
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}

			if m.focusIndex > len(m.inputs) {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = len(m.inputs)
			}

			return m, m.updateFocus()
		}

	case tea.WindowSizeMsg:
		for i := range m.inputs {
			m.inputs[i].Width = msg.Width - 20
		}
		return m, nil
	}

	if m.focusIndex < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) updateFocus() tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := 0; i < len(m.inputs); i++ {
		if i == m.focusIndex {
			cmds[i] = m.inputs[i].Focus()
			m.inputs[i].PromptStyle = focusedStyle
			m.inputs[i].TextStyle = focusedStyle
		} else {
			m.inputs[i].Blur()
			m.inputs[i].PromptStyle = blurredStyle
			m.inputs[i].TextStyle = blurredStyle
		}
	}
	return tea.Batch(cmds...)
}

// addTrack проверяет поля формы и вставляет трек в плейлист
func (m *Model) addTrack() tea.Cmd {
	if m.saved {
		return nil
	}

	title := strings.TrimSpace(m.inputs[titleField].Value())
	artist := strings.TrimSpace(m.inputs[artistField].Value())
	durationStr := strings.ReplaceAll(strings.TrimSpace(m.inputs[durationField].Value()), ",", ".")
	positionStr := strings.TrimSpace(m.inputs[positionField].Value())

	m.success = ""

	if title == "" {
		m.err = "Поле 'Название' не может быть пустым"
		return nil
	}

	duration, err := strconv.ParseFloat(durationStr, 64)
	if err != nil {
		m.err = "Длительность должна быть числом"
		return nil
	}

	position := playlist.Append
	if positionStr != "" {
		position, err = strconv.Atoi(positionStr)
		if err != nil {
			m.err = "Позиция должна быть целым числом"
			return nil
		}
	}

	if err := m.playlist.Insert(title, artist, duration, position); err != nil {
		m.err = fmt.Sprintf("Ошибка добавления трека: %v", err)
		return nil
	}

	if m.saveFunc != nil {
		if err := m.saveFunc(); err != nil {
			m.err = fmt.Sprintf("Ошибка сохранения в файл: %v", err)
			return nil
		}
	}

	m.err = ""
	m.success = "Трек успешно добавлен!"
	m.saved = true

	// Возвращаемся к списку треков через небольшую задержку
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return GoBackMsg{}
	})
}

// View отображает модель
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Новый трек"))
	b.WriteString("\n\n")

	labels := []string{"Название:", "Исполнитель:", "Длительность:", "Позиция:"}

	for i, input := range m.inputs {
		b.WriteString(labelStyle.Render(labels[i]))
		b.WriteString(" ")
		b.WriteString(input.View())
		b.WriteString("\n\n")
	}

	addButton := "[ Добавить ]"
	if m.focusIndex == len(m.inputs) {
		addButton = focusedStyle.Render(addButton)
	} else {
		addButton = blurredStyle.Render(addButton)
	}
	b.WriteString(addButton)
	b.WriteString("\n\n")

	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	if m.success != "" {
		b.WriteString(successStyle.Render(m.success))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("Tab/Enter: следующее поле • Shift+Tab: предыдущее поле"))
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("Ctrl+S: добавить • Esc: отмена"))

	return b.String()
}
