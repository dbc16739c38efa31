// Package file stores snapshots as JSON documents in a data directory,
// one file per collection (users.json, messages.json).
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/iudanet/gophchat/internal/models"
	"github.com/iudanet/gophchat/internal/server/storage"
)

const (
	usersFile    = "users.json"
	messagesFile = "messages.json"
)

// Storage represents JSON file storage implementation
type Storage struct {
	dir    string
	mu     sync.Mutex // сериализует запись во временные файлы
	closed bool
}

var _ storage.Backend = (*Storage)(nil)

// New creates the data directory if needed and returns a file backend.
func New(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &Storage{dir: dir}, nil
}

// LoadUsers reads users.json. A missing file means no users yet.
func (s *Storage) LoadUsers(_ context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := s.read(usersFile, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SaveUsers rewrites users.json.
func (s *Storage) SaveUsers(_ context.Context, users []models.User) error {
	if users == nil {
		users = []models.User{}
	}
	return s.write(usersFile, users)
}

// LoadMessages reads messages.json. A missing file means an empty log.
func (s *Storage) LoadMessages(_ context.Context) ([]models.Message, error) {
	msgs := []models.Message{}
	if err := s.read(messagesFile, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// SaveMessages rewrites messages.json.
func (s *Storage) SaveMessages(_ context.Context, msgs []models.Message) error {
	if msgs == nil {
		msgs = []models.Message{}
	}
	return s.write(messagesFile, msgs)
}

// Ping checks that the data directory is still there.
func (s *Storage) Ping(_ context.Context) error {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return storage.ErrStorageClosed
	}

	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("failed to stat data dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data path %s is not a directory", s.dir)
	}
	return nil
}

// Close marks the storage closed. Files need no cleanup.
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *Storage) read(name string, v any) error {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return storage.ErrStorageClosed
	}

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", storage.ErrCorruptSnapshot, name, err)
	}
	return nil
}

// write пишет во временный файл и переименовывает его,
// чтобы читатель никогда не увидел частично записанный снимок
func (s *Storage) write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrStorageClosed
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// после успешного rename файла уже нет, ошибку игнорируем
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", name, err)
	}
	if err := os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}
