package storage

import (
	"context"

	"github.com/iudanet/gophchat/internal/models"
)

// MessageSnapshots persists the whole message log at once.
type MessageSnapshots interface {
	// LoadMessages returns the saved log in insertion order.
	LoadMessages(ctx context.Context) ([]models.Message, error)

	// SaveMessages replaces the stored log with msgs.
	SaveMessages(ctx context.Context, msgs []models.Message) error
}

// Backend is a durable keyed store holding both collections.
type Backend interface {
	UserSnapshots
	MessageSnapshots

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases the backend's resources.
	Close() error
}
