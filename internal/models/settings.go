package models

import "fmt"

// TimeFormat задает, как отображается время сообщения
type TimeFormat string

const (
	TimeFormatTime TimeFormat = "time"
	TimeFormatDate TimeFormat = "date"
	TimeFormatBoth TimeFormat = "both"
)

// ParseTimeFormat returns the TimeFormat named by s.
func ParseTimeFormat(s string) (TimeFormat, error) {
	switch f := TimeFormat(s); f {
	case TimeFormatTime, TimeFormatDate, TimeFormatBoth:
		return f, nil
	default:
		return "", fmt.Errorf("unknown time format %q, want time, date or both", s)
	}
}

// Settings настройки отображения чата на клиенте
type Settings struct {
	TimeFormat  TimeFormat `json:"timeFormat"`
	ShowAvatars bool       `json:"showAvatars"`
}

// DefaultSettings returns the settings used before the user changes anything.
func DefaultSettings() Settings {
	return Settings{
		TimeFormat:  TimeFormatBoth,
		ShowAvatars: true,
	}
}
