package storage

import (
	"context"

	"github.com/iudanet/gophchat/internal/models"
)

// UserSnapshots persists the whole user collection at once.
type UserSnapshots interface {
	// LoadUsers returns the last saved snapshot in registration order.
	// An empty store yields an empty slice and no error.
	LoadUsers(ctx context.Context) ([]models.User, error)

	// SaveUsers replaces the stored collection with users.
	// Readers never observe a partially written snapshot.
	SaveUsers(ctx context.Context, users []models.User) error
}
