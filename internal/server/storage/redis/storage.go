// Package redis keeps each snapshot as a single JSON value in Redis.
// SET replaces the value atomically, so readers see either the old or the
// new snapshot.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iudanet/gophchat/internal/models"
	"github.com/iudanet/gophchat/internal/server/storage"
)

const (
	defaultTimeout = 5 * time.Second
	defaultPrefix  = "gophchat"
)

// Config captures the settings for establishing a Redis connection.
type Config struct {
	Addr     string
	Password string
	Prefix   string
	DB       int
	Timeout  time.Duration
}

// Storage represents Redis storage implementation
type Storage struct {
	client      *redis.Client
	usersKey    string
	messagesKey string
}

var _ storage.Backend = (*Storage)(nil)

// New connects to Redis and validates connectivity with a ping.
func New(ctx context.Context, cfg Config) (*Storage, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = defaultPrefix
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Storage{
		client:      client,
		usersKey:    prefix + ":users",
		messagesKey: prefix + ":messages",
	}, nil
}

// LoadUsers reads the users snapshot.
func (s *Storage) LoadUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := s.get(ctx, s.usersKey, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SaveUsers replaces the users snapshot.
func (s *Storage) SaveUsers(ctx context.Context, users []models.User) error {
	if users == nil {
		users = []models.User{}
	}
	return s.set(ctx, s.usersKey, users)
}

// LoadMessages reads the log snapshot.
func (s *Storage) LoadMessages(ctx context.Context) ([]models.Message, error) {
	msgs := []models.Message{}
	if err := s.get(ctx, s.messagesKey, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// SaveMessages replaces the log snapshot.
func (s *Storage) SaveMessages(ctx context.Context, msgs []models.Message) error {
	if msgs == nil {
		msgs = []models.Message{}
	}
	return s.set(ctx, s.messagesKey, msgs)
}

// Ping checks the Redis connection.
func (s *Storage) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Close closes the client.
func (s *Storage) Close() error {
	return s.client.Close()
}

func (s *Storage) get(ctx context.Context, key string, v any) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		if errors.Is(err, redis.ErrClosed) {
			return storage.ErrStorageClosed
		}
		return fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", storage.ErrCorruptSnapshot, key, err)
	}
	return nil
}

func (s *Storage) set(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		if errors.Is(err, redis.ErrClosed) {
			return storage.ErrStorageClosed
		}
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
