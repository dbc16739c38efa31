package cli

import (
	"context"
	"errors"
	"time"

	"github.com/iudanet/gophchat/internal/apperr"
	"github.com/iudanet/gophchat/internal/client/auth"
	"github.com/iudanet/gophchat/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	session, err := c.auth.Restore(ctx)
	switch {
	case errors.Is(err, storage.ErrSessionNotFound):
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'gophchat login' to authenticate.")
		return nil

	case errors.Is(err, auth.ErrSessionExpired):
		c.io.Println("Status: Session expired")
		c.io.Println("⚠️  The token was replaced by a newer login. Please login again.")
		return nil

	case apperr.KindOf(err) == apperr.KindTransient:
		// сервер недоступен: показываем то, что сохранено локально
		session, err = c.auth.Current(ctx)
		if err != nil {
			return err
		}
		c.io.Println("Status: Authenticated (not verified, server unreachable)")

	case err != nil:
		return err

	default:
		c.io.Println("Status: Authenticated")
	}

	c.io.Printf("Username: %s\n", session.Username)
	if session.Avatar != "" {
		c.io.Println("Avatar:   set")
	}
	if !session.SavedAt.IsZero() {
		c.io.Printf("Since:    %s\n", session.SavedAt.Local().Format(time.RFC3339))
	}
	return nil
}
