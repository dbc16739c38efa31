// Package tui интерактивный чат в терминале на bubbletea
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iudanet/gophchat/internal/apperr"
	"github.com/iudanet/gophchat/internal/client/iocli"
	"github.com/iudanet/gophchat/internal/client/render"
	"github.com/iudanet/gophchat/internal/client/storage"
	"github.com/iudanet/gophchat/internal/client/sync"
	"github.com/iudanet/gophchat/internal/models"
)

const (
	footerHeight = 3 // разделитель, строка статуса, поле ввода
	helpText     = "Commands: /time <time|date|both>, /avatars <on|off>, /image <path>, /logout. Esc to quit"

	sendFailedText     = "Failed to send message. Please try again."
	sessionExpiredText = "Session expired. Please log in again."
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#767676"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
	lineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#505050"))
)

// Chat то, что нужно интерфейсу от движка синхронизации
type Chat interface {
	Send(ctx context.Context, text, image string) (models.Message, error)
	Snapshot() sync.View
	Updates() <-chan struct{}
}

// Options зависимости модели
type Options struct {
	Chat     Chat
	Settings storage.SettingsStorage
	// Logout завершает сессию: останавливает синхронизацию и удаляет токен
	Logout  func(ctx context.Context) error
	Initial models.Settings
}

type (
	updateMsg      struct{}
	sendResultMsg  struct{ err error }
	settingsMsg    struct{ err error }
	loggedOutMsg   struct{ err error }
	imageLoadedMsg struct {
		err   error
		image string
	}
)

// Model модель bubbletea
type Model struct {
	ctx       context.Context
	opts      Options
	viewport  viewport.Model
	textInput textinput.Model
	status    string
	image     string
	settings  models.Settings
	isError   bool
	ready     bool
	loggedOut bool
}

// New создает модель чата
func New(ctx context.Context, opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a message... (/help for commands)"
	ti.Focus()
	ti.Width = 20

	return Model{
		ctx:       ctx,
		opts:      opts,
		textInput: ti,
		settings:  opts.Initial,
		status:    helpText,
	}
}

// LoggedOut reports whether the user left the chat with /logout.
func (m Model) LoggedOut() bool {
	return m.loggedOut
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForUpdate(m.opts.Chat.Updates()))
}

func waitForUpdate(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return updateMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			value := m.textInput.Value()
			m.textInput.SetValue("")
			return m.handleInput(value)
		}

	case tea.WindowSizeMsg:
		height := max(msg.Height-footerHeight, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.KeyMap = scrollKeys()
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.textInput.Width = max(msg.Width-3, 1)
		m.refresh()

	case updateMsg:
		m.refresh()
		return m, waitForUpdate(m.opts.Chat.Updates())

	case sendResultMsg:
		if msg.err != nil {
			m.setError(describeError(msg.err))
		}
		return m, nil

	case imageLoadedMsg:
		if msg.err != nil {
			m.setError(msg.err.Error())
			return m, nil
		}
		m.image = msg.image
		m.setStatus(fmt.Sprintf("Attached %s. Press Enter to send", render.ImageMarker(msg.image)))
		return m, nil

	case settingsMsg:
		if msg.err != nil {
			m.setError("Failed to save settings: " + msg.err.Error())
		}
		return m, nil

	case loggedOutMsg:
		if msg.err != nil {
			m.setError("Logout failed: " + msg.err.Error())
			return m, nil
		}
		m.loggedOut = true
		return m, tea.Quit
	}

	m.textInput, tiCmd = m.textInput.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd)
}

// scrollKeys оставляет прокрутке только клавиши, которые не нужны полю ввода
func scrollKeys() viewport.KeyMap {
	return viewport.KeyMap{
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		Up:       key.NewBinding(key.WithKeys("up")),
		Down:     key.NewBinding(key.WithKeys("down")),
	}
}

func (m Model) handleInput(value string) (tea.Model, tea.Cmd) {
	content := strings.TrimSpace(value)
	if !strings.HasPrefix(content, "/") {
		if content == "" && m.image == "" {
			return m, nil
		}
		image := m.image
		m.image = ""
		m.setStatus(helpText)
		return m, m.send(content, image)
	}

	fields := strings.Fields(content)
	switch fields[0] {
	case "/help":
		m.setStatus(helpText)
		return m, nil

	case "/logout":
		return m, func() tea.Msg {
			return loggedOutMsg{err: m.opts.Logout(m.ctx)}
		}

	case "/time":
		if len(fields) != 2 {
			m.setError("Usage: /time <time|date|both>")
			return m, nil
		}
		format, err := models.ParseTimeFormat(fields[1])
		if err != nil {
			m.setError(err.Error())
			return m, nil
		}
		m.settings.TimeFormat = format
		return m.applySettings()

	case "/avatars":
		if len(fields) != 2 || (fields[1] != "on" && fields[1] != "off") {
			m.setError("Usage: /avatars <on|off>")
			return m, nil
		}
		m.settings.ShowAvatars = fields[1] == "on"
		return m.applySettings()

	case "/image":
		if len(fields) == 1 {
			m.image = ""
			m.setStatus("Attachment removed")
			return m, nil
		}
		path := strings.TrimSpace(strings.TrimPrefix(content, "/image"))
		return m, func() tea.Msg {
			image, err := iocli.LoadImage(path)
			return imageLoadedMsg{image: image, err: err}
		}
	}

	m.setError(fmt.Sprintf("Unknown command %s. %s", fields[0], helpText))
	return m, nil
}

func (m Model) send(text, image string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.opts.Chat.Send(m.ctx, text, image)
		return sendResultMsg{err: err}
	}
}

func (m Model) applySettings() (tea.Model, tea.Cmd) {
	m.refresh()
	m.setStatus(fmt.Sprintf("Time format: %s, avatars: %t", m.settings.TimeFormat, m.settings.ShowAvatars))
	settings := m.settings
	return m, func() tea.Msg {
		return settingsMsg{err: m.opts.Settings.SaveSettings(m.ctx, settings)}
	}
}

// refresh перерисовывает сообщения. Если пользователь прокрутил историю
// вверх, позиция сохраняется
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	atBottom := m.viewport.AtBottom()
	m.viewport.SetContent(render.Messages(m.opts.Chat.Snapshot(), m.settings, m.viewport.Width))
	if atBottom {
		m.viewport.GotoBottom()
	}
}

func (m *Model) setStatus(s string) {
	m.status, m.isError = s, false
}

func (m *Model) setError(s string) {
	m.status, m.isError = s, true
}

func (m Model) View() string {
	if !m.ready {
		return "\n  Loading messages..."
	}

	status := statusStyle.Render(m.status)
	if m.isError {
		status = errorStyle.Render(m.status)
	}
	return fmt.Sprintf("%s\n%s\n%s\n%s",
		m.viewport.View(),
		lineStyle.Render(strings.Repeat("─", m.viewport.Width)),
		status,
		m.textInput.View(),
	)
}

// describeError текст ошибки отправки для пользователя
func describeError(err error) string {
	var remote *apperr.Remote
	switch {
	case apperr.KindOf(err) == apperr.KindTransient:
		return sendFailedText
	case apperr.KindOf(err) == apperr.KindAuth:
		return sessionExpiredText
	case errors.As(err, &remote) && remote.Message != "":
		return remote.Message
	case errors.Is(err, apperr.ErrEmptyMessage):
		return "Message or image is required"
	case errors.Is(err, apperr.ErrInvalidImage):
		return "Image must be a data URI"
	default:
		return sendFailedText
	}
}

// Run запускает чат и блокирует до выхода. Возвращает true, если
// пользователь вышел через /logout
func Run(ctx context.Context, opts Options) (bool, error) {
	p := tea.NewProgram(New(ctx, opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("chat UI failed: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.LoggedOut(), nil
	}
	return false, nil
}
