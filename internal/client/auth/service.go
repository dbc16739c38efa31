package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/gophchat/internal/apperr"
	"github.com/iudanet/gophchat/internal/client/storage"
	"github.com/iudanet/gophchat/internal/validation"
	"github.com/iudanet/gophchat/pkg/api"
)

// ErrSessionExpired возвращается Restore, когда сервер больше не принимает
// сохраненный токен (например, после входа с другого клиента)
var ErrSessionExpired = fmt.Errorf("%w: session expired, please log in again", apperr.ErrAuth)

// Service предоставляет функции авторизации и хранит сессию между запусками
type Service struct {
	api      AuthAPI
	sessions storage.SessionStorage
	logger   *slog.Logger
	now      func() time.Time
}

// NewService создает новый сервис авторизации
func NewService(authAPI AuthAPI, sessions storage.SessionStorage, logger *slog.Logger) *Service {
	return &Service{
		api:      authAPI,
		sessions: sessions,
		logger:   logger,
		now:      time.Now,
	}
}

// Register регистрирует нового пользователя и сохраняет сессию
func (s *Service) Register(ctx context.Context, username, password, avatar string) (*storage.Session, error) {
	username, err := validation.ValidateUsername(username)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateAvatar(avatar); err != nil {
		return nil, err
	}

	resp, err := s.api.Register(ctx, api.RegisterRequest{
		Username: username,
		Password: password,
		Avatar:   avatar,
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return s.save(ctx, &storage.Session{
		Username: resp.Username,
		Avatar:   avatar,
		Token:    resp.Token,
	})
}

// Login выполняет вход. Сервер выдает новый токен, и токены других
// клиентов этого пользователя перестают действовать
func (s *Service) Login(ctx context.Context, username, password string) (*storage.Session, error) {
	username, err := validation.ValidateCredentials(username, password)
	if err != nil {
		return nil, err
	}

	resp, err := s.api.Login(ctx, api.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	return s.save(ctx, &storage.Session{
		Username: resp.Username,
		Avatar:   resp.Avatar,
		Token:    resp.Token,
	})
}

// Restore загружает сохраненную сессию и проверяет токен на сервере.
// Отклоненный токен удаляется локально и возвращается ErrSessionExpired.
// При временной ошибке сессия остается на диске
func (s *Service) Restore(ctx context.Context) (*storage.Session, error) {
	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := s.api.Verify(ctx, session.Token)
	if err != nil {
		if apperr.KindOf(err) != apperr.KindAuth {
			return nil, fmt.Errorf("failed to verify session: %w", err)
		}

		s.logger.InfoContext(ctx, "stored session rejected by server", "username", session.Username)
		if delErr := s.sessions.DeleteSession(ctx); delErr != nil {
			return nil, errors.Join(ErrSessionExpired, fmt.Errorf("failed to delete session: %w", delErr))
		}
		return nil, ErrSessionExpired
	}

	// аватар мог измениться при входе с другого клиента
	if resp.Avatar != session.Avatar {
		session.Avatar = resp.Avatar
		if err := s.sessions.SaveSession(ctx, session); err != nil {
			s.logger.WarnContext(ctx, "failed to update stored avatar", "error", err)
		}
	}
	return session, nil
}

// Current возвращает сохраненную сессию без обращения к серверу
func (s *Service) Current(ctx context.Context) (*storage.Session, error) {
	return s.sessions.GetSession(ctx)
}

// Logout удаляет локальную сессию. Сервер не уведомляется: токен
// перестанет действовать при следующем входе
func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (s *Service) save(ctx context.Context, session *storage.Session) (*storage.Session, error) {
	session.SavedAt = s.now().UTC()
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	s.logger.DebugContext(ctx, "session saved", "username", session.Username)
	return session, nil
}
