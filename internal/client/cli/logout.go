package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/gophchat/internal/client/storage"
)

// runLogout удаляет только локальную сессию: сервер о выходе не узнает,
// токен станет недействительным при следующем login
func (c *Cli) runLogout(ctx context.Context) error {
	session, err := c.auth.Current(ctx)
	if errors.Is(err, storage.ErrSessionNotFound) {
		c.io.Println("Not logged in, nothing to do.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}

	if err := c.auth.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	c.io.Printf("✓ Logged out %s. The local session has been deleted.\n", session.Username)
	return nil
}
