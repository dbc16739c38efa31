// Package render превращает снимок состояния чата в текст для терминала.
// Функции пакета не имеют побочных эффектов.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/iudanet/gophchat/internal/client/sync"
	"github.com/iudanet/gophchat/internal/models"
	"github.com/iudanet/gophchat/internal/validation"
)

const (
	timeLayout = "03:04 PM"
	dateLayout = "02/01/2006"

	// PendingLabel показывается вместо времени, пока сообщение отправляется
	PendingLabel = "Sending..."

	minWidth     = 20
	defaultWidth = 80
)

var (
	ownNameStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	otherNameStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	metaStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#767676"))
	ownBlockStyle  = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(lipgloss.Color("#7D56F4")).
			PaddingLeft(1)
	otherBlockStyle = lipgloss.NewStyle().PaddingLeft(2)
	pendingStyle    = lipgloss.NewStyle().Faint(true)
)

// FormatTime форматирует время сообщения: time - 03:04 PM,
// date - dd/mm/yyyy, both (и любое другое значение) - дата и время
func FormatTime(ts time.Time, format models.TimeFormat) string {
	switch format {
	case models.TimeFormatTime:
		return ts.Format(timeLayout)
	case models.TimeFormatDate:
		return ts.Format(dateLayout)
	default:
		return ts.Format(dateLayout + " " + timeLayout)
	}
}

// Messages отрисовывает подтвержденные сообщения, затем плейсхолдеры
func Messages(view sync.View, settings models.Settings, width int) string {
	if width < minWidth {
		width = defaultWidth
	}
	if len(view.Messages) == 0 && len(view.Pending) == 0 {
		return metaStyle.Render("No messages yet. Say hi!")
	}

	blocks := make([]string, 0, len(view.Messages)+len(view.Pending))
	for _, m := range view.Messages {
		blocks = append(blocks, message(m, view.User.Username, settings, width))
	}
	for _, m := range view.Pending {
		blocks = append(blocks, message(m, view.User.Username, settings, width))
	}
	return strings.Join(blocks, "\n\n")
}

func message(m models.Message, currentUser string, settings models.Settings, width int) string {
	own := currentUser != "" && m.Username == currentUser

	nameStyle, block := otherNameStyle, otherBlockStyle
	if own {
		nameStyle, block = ownNameStyle, ownBlockStyle
	}

	header := nameStyle.Render(m.Username)
	if settings.ShowAvatars {
		header = AvatarMarker(m.Avatar) + " " + header
	}

	lines := []string{header}
	if m.Message != "" {
		lines = append(lines, lipgloss.NewStyle().Width(width-block.GetHorizontalFrameSize()).Render(m.Message))
	}
	if m.Image != "" {
		lines = append(lines, metaStyle.Render(ImageMarker(m.Image)))
	}

	if m.IsPending() {
		lines = append(lines, metaStyle.Render(PendingLabel))
		return pendingStyle.Render(block.Render(strings.Join(lines, "\n")))
	}
	lines = append(lines, metaStyle.Render(FormatTime(m.Timestamp.Local(), settings.TimeFormat)))
	return block.Render(strings.Join(lines, "\n"))
}

// AvatarMarker заменяет картинку аватара в терминале
func AvatarMarker(avatar string) string {
	if avatar == "" {
		return "( )"
	}
	return "(@)"
}

// ImageMarker описывает вложенное изображение, например [image image/png]
func ImageMarker(dataURI string) string {
	mediaType := validation.DataURIMediaType(dataURI)
	if mediaType == "" {
		return "[image]"
	}
	return fmt.Sprintf("[image %s]", mediaType)
}
