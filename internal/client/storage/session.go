package storage

import (
	"context"
	"time"

	"github.com/iudanet/gophchat/internal/models"
)

// SessionStorage хранит текущую сессию пользователя на клиенте
type SessionStorage interface {
	// SaveSession replaces the stored session
	SaveSession(ctx context.Context, session *Session) error

	// GetSession returns ErrSessionNotFound if nobody is logged in
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes the stored session (logout)
	DeleteSession(ctx context.Context) error
}

// SettingsStorage хранит настройки отображения
type SettingsStorage interface {
	// GetSettings returns models.DefaultSettings if nothing was saved yet
	GetSettings(ctx context.Context) (models.Settings, error)
	SaveSettings(ctx context.Context, settings models.Settings) error
}

// Session данные входа, которые переживают перезапуск клиента
type Session struct {
	SavedAt  time.Time `json:"saved_at"`
	Username string    `json:"username"`
	Avatar   string    `json:"avatar,omitempty"`
	Token    string    `json:"token"`
}

// User returns the session owner as a public user.
func (s *Session) User() models.User {
	return models.User{Username: s.Username, Avatar: s.Avatar}
}
