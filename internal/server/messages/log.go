// Package messages implements the shared bounded message log.
//
// The log holds at most Cap entries. When an append finds the log full it
// first drops everything except the newest Keep entries. Clients that had not
// yet fetched the dropped range never see it: there is no backfill.
package messages

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/gophchat/internal/apperr"
	"github.com/iudanet/gophchat/internal/models"
	"github.com/iudanet/gophchat/internal/server/metrics"
	"github.com/iudanet/gophchat/internal/server/storage"
	"github.com/iudanet/gophchat/internal/validation"
)

// Default retention bounds
const (
	DefaultCap  = 100
	DefaultKeep = 50
)

// ErrInvalidRetention is returned by New for bounds outside 0 < keep < cap.
var ErrInvalidRetention = errors.New("retention requires 0 < keep < cap")

// Retention configures log trimming.
type Retention struct {
	Cap  int
	Keep int
}

// Log is the message log.
type Log struct {
	backend   storage.MessageSnapshots
	logger    *slog.Logger
	now       func() time.Time
	newID     func() (uuid.UUID, error)
	messages  []models.Message
	retention Retention
	mu        sync.RWMutex
}

// New loads the persisted log. A zero Retention means the defaults.
func New(ctx context.Context, backend storage.MessageSnapshots, retention Retention, logger *slog.Logger) (*Log, error) {
	if retention == (Retention{}) {
		retention = Retention{Cap: DefaultCap, Keep: DefaultKeep}
	}
	if retention.Keep <= 0 || retention.Keep >= retention.Cap {
		return nil, fmt.Errorf("%w: cap=%d keep=%d", ErrInvalidRetention, retention.Cap, retention.Keep)
	}

	msgs, err := backend.LoadMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}

	l := &Log{
		backend:   backend,
		logger:    logger,
		retention: retention,
		now:       time.Now,
		newID:     uuid.NewV7,
		messages:  msgs,
	}
	metrics.LogLength.Set(float64(len(msgs)))

	logger.InfoContext(ctx, "message log loaded",
		slog.Int("messages", len(msgs)),
		slog.Int("cap", retention.Cap),
		slog.Int("keep", retention.Keep))
	return l, nil
}

// Append stores a message from author. At least one of text and image must
// be non-empty. The author's avatar is copied into the message.
func (l *Log) Append(ctx context.Context, author models.User, text, image string) (models.Message, error) {
	text, err := validation.ValidateContent(text, image)
	if err != nil {
		return models.Message{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// UUIDv7 монотонен внутри процесса, id генерируется под блокировкой,
	// поэтому порядок id совпадает с порядком вставки
	id, err := l.newID()
	if err != nil {
		return models.Message{}, fmt.Errorf("failed to generate message id: %w", err)
	}

	msg := models.Message{
		ID:        id.String(),
		Username:  author.Username,
		Avatar:    author.Avatar,
		Message:   text,
		Image:     image,
		Timestamp: l.now().UTC(),
	}

	trimmed := false
	var next []models.Message
	if len(l.messages) >= l.retention.Cap {
		next = make([]models.Message, 0, l.retention.Keep+1)
		next = append(next, l.messages[len(l.messages)-l.retention.Keep:]...)
		trimmed = true
	} else {
		next = slices.Clone(l.messages)
	}
	next = append(next, msg)

	if err := l.backend.SaveMessages(ctx, next); err != nil {
		l.logger.ErrorContext(ctx, "failed to persist messages", slog.Any("error", err))
		return models.Message{}, apperr.Transient("save messages", err)
	}
	l.messages = next

	metrics.MessagesAppendedTotal.Inc()
	metrics.LogLength.Set(float64(len(next)))
	if trimmed {
		metrics.LogTrimsTotal.Inc()
		l.logger.InfoContext(ctx, "message log trimmed", slog.Int("kept", l.retention.Keep))
	}

	l.logger.DebugContext(ctx, "message appended",
		slog.String("id", msg.ID),
		slog.String("username", msg.Username),
		slog.Bool("has_image", msg.Image != ""))
	return msg, nil
}

// List returns a copy of the whole log in insertion order.
func (l *Log) List(_ context.Context) []models.Message {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Message, len(l.messages))
	copy(out, l.messages)
	return out
}

// Len returns the current number of messages.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.messages)
}
