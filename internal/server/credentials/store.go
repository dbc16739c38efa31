// Package credentials хранит учетные записи пользователей: регистрация,
// вход с ротацией токена и проверка bearer токена.
//
// Состояние загружается из backend один раз при старте и целиком
// перезаписывается при каждой мутации. Новое состояние становится видимым
// только после успешной записи снимка.
package credentials

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/iudanet/gophchat/internal/apperr"
	"github.com/iudanet/gophchat/internal/crypto"
	"github.com/iudanet/gophchat/internal/models"
	"github.com/iudanet/gophchat/internal/server/metrics"
	"github.com/iudanet/gophchat/internal/server/storage"
	"github.com/iudanet/gophchat/internal/validation"
)

// RegisterResult is returned by a successful Register.
type RegisterResult struct {
	Token    string
	Username string
}

// LoginResult is returned by a successful Login.
type LoginResult struct {
	Token    string
	Username string
	Avatar   string
}

// Store is the credential store.
type Store struct {
	backend storage.UserSnapshots
	logger  *slog.Logger
	now     func() time.Time

	// users - первичный срез в порядке регистрации,
	// индексы указывают на позиции в нем
	users   []models.User
	byName  map[string]int
	byToken map[string]int
	mu      sync.RWMutex
}

// New loads the user snapshot from backend and returns a ready store.
func New(ctx context.Context, backend storage.UserSnapshots, logger *slog.Logger) (*Store, error) {
	users, err := backend.LoadUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	s := &Store{
		backend: backend,
		logger:  logger,
		now:     time.Now,
	}
	s.swap(users)

	logger.InfoContext(ctx, "credential store loaded", slog.Int("users", len(users)))
	return s, nil
}

// Register creates a new account and issues its first token.
func (s *Store) Register(ctx context.Context, username, password, avatar string) (result RegisterResult, err error) {
	defer func() { observe("register", err) }()

	username, err = validation.ValidateUsername(username)
	if err != nil {
		return RegisterResult{}, err
	}
	if err = validation.ValidateAvatar(avatar); err != nil {
		return RegisterResult{}, err
	}

	// bcrypt медленный - считаем до захвата блокировки
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return RegisterResult{}, err
	}
	token, err := crypto.GenerateToken()
	if err != nil {
		return RegisterResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[username]; exists {
		s.logger.WarnContext(ctx, "username already exists", slog.String("username", username))
		return RegisterResult{}, apperr.ErrUsernameTaken
	}

	next := slices.Clone(s.users)
	next = append(next, models.User{
		Username:     username,
		PasswordHash: hash,
		Avatar:       avatar,
		Token:        token,
		CreatedAt:    s.now().UTC(),
	})

	if err = s.backend.SaveUsers(ctx, next); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist users", slog.Any("error", err))
		return RegisterResult{}, apperr.Transient("save users", err)
	}
	s.swap(next)

	s.logger.InfoContext(ctx, "user registered", slog.String("username", username))
	return RegisterResult{Token: token, Username: username}, nil
}

// Login checks the password and rotates the user's token.
// The previous token stops authenticating once Login returns.
func (s *Store) Login(ctx context.Context, username, password string) (result LoginResult, err error) {
	defer func() { observe("login", err) }()

	username, err = validation.ValidateCredentials(username, password)
	if err != nil {
		return LoginResult{}, err
	}

	s.mu.RLock()
	idx, ok := s.byName[username]
	var hash string
	if ok {
		hash = s.users[idx].PasswordHash
	}
	s.mu.RUnlock()

	if !ok {
		s.logger.WarnContext(ctx, "login failed: user not found", slog.String("username", username))
		return LoginResult{}, apperr.ErrInvalidCredentials
	}
	if err = crypto.VerifyPassword(hash, password); err != nil {
		s.logger.WarnContext(ctx, "login failed: invalid password", slog.String("username", username))
		return LoginResult{}, apperr.ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken()
	if err != nil {
		return LoginResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// пользователи не удаляются, позиция стабильна
	idx = s.byName[username]
	next := slices.Clone(s.users)
	next[idx].Token = token

	if err = s.backend.SaveUsers(ctx, next); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist users", slog.Any("error", err))
		return LoginResult{}, apperr.Transient("save users", err)
	}
	s.swap(next)

	s.logger.InfoContext(ctx, "user logged in", slog.String("username", username))
	return LoginResult{Token: token, Username: username, Avatar: next[idx].Avatar}, nil
}

// Verify resolves a bearer token to its user. The returned copy carries no
// password hash.
func (s *Store) Verify(ctx context.Context, token string) (user models.User, err error) {
	defer func() { observe("verify", err) }()

	if !crypto.IsTokenFormat(token) {
		return models.User{}, apperr.ErrInvalidToken
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byToken[token]
	if !ok {
		s.logger.DebugContext(ctx, "unknown token")
		return models.User{}, apperr.ErrInvalidToken
	}

	user = s.users[idx]
	user.PasswordHash = ""
	return user, nil
}

// Count returns the number of registered users.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// swap устанавливает новый снимок и перестраивает индексы.
// Вызывается под s.mu.Lock (или до публикации Store)
func (s *Store) swap(users []models.User) {
	byName := make(map[string]int, len(users))
	byToken := make(map[string]int, len(users))
	for i, u := range users {
		byName[u.Username] = i
		if u.Token != "" {
			byToken[u.Token] = i
		}
	}

	s.users = users
	s.byName = byName
	s.byToken = byToken
	metrics.UsersTotal.Set(float64(len(users)))
}

func observe(action string, err error) {
	result := "ok"
	if err != nil {
		result = apperr.KindOf(err).String()
	}
	metrics.AuthAttemptsTotal.WithLabelValues(action, result).Inc()
}
