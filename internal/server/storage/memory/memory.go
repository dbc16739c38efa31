// Package memory is an in-process snapshot backend. It keeps copies of the
// last saved snapshots and can be told to fail, which makes it the default
// fake for store tests.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/iudanet/gophchat/internal/models"
	"github.com/iudanet/gophchat/internal/server/storage"
)

// Storage хранит снимки в памяти процесса
type Storage struct {
	saveUsersErr    error
	saveMessagesErr error
	loadErr         error
	users           []models.User
	messages        []models.Message
	userSaves       int
	messageSaves    int
	mu              sync.Mutex
	closed          bool
}

var _ storage.Backend = (*Storage)(nil)

// New creates an empty in-memory backend.
func New() *Storage {
	return &Storage{}
}

// LoadUsers returns a copy of the saved users.
func (s *Storage) LoadUsers(_ context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, storage.ErrStorageClosed
	}
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return slices.Clone(s.users), nil
}

// SaveUsers replaces the saved users with a copy of users.
func (s *Storage) SaveUsers(_ context.Context, users []models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrStorageClosed
	}
	if s.saveUsersErr != nil {
		return s.saveUsersErr
	}
	s.users = slices.Clone(users)
	s.userSaves++
	return nil
}

// LoadMessages returns a copy of the saved log.
func (s *Storage) LoadMessages(_ context.Context) ([]models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, storage.ErrStorageClosed
	}
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return slices.Clone(s.messages), nil
}

// SaveMessages replaces the saved log with a copy of msgs.
func (s *Storage) SaveMessages(_ context.Context, msgs []models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrStorageClosed
	}
	if s.saveMessagesErr != nil {
		return s.saveMessagesErr
	}
	s.messages = slices.Clone(msgs)
	s.messageSaves++
	return nil
}

// Ping reports ErrStorageClosed after Close.
func (s *Storage) Ping(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrStorageClosed
	}
	return nil
}

// Close marks the backend closed.
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

// FailSaveUsers makes subsequent SaveUsers calls return err. nil clears it.
func (s *Storage) FailSaveUsers(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveUsersErr = err
}

// FailSaveMessages makes subsequent SaveMessages calls return err.
func (s *Storage) FailSaveMessages(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveMessagesErr = err
}

// FailLoad makes both Load methods return err.
func (s *Storage) FailLoad(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadErr = err
}

// UserSaves returns how many user snapshots were written.
func (s *Storage) UserSaves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userSaves
}

// MessageSaves returns how many log snapshots were written.
func (s *Storage) MessageSaves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.messageSaves
}
