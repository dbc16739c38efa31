package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/gophchat/internal/client/tui"
	"github.com/iudanet/gophchat/internal/models"
)

func (c *Cli) runChat(ctx context.Context) error {
	session, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	settings, err := c.settings.GetSettings(ctx)
	if err != nil {
		c.logger.WarnContext(ctx, "failed to load settings, using defaults", "error", err)
		settings = models.DefaultSettings()
	}

	if err := c.engine.Start(ctx, *session); err != nil {
		return fmt.Errorf("failed to start chat: %w", err)
	}
	defer c.engine.Logout()

	loggedOut, err := c.runUI(ctx, tui.Options{
		Chat:     c.engine,
		Settings: c.settings,
		Initial:  settings,
		Logout: func(ctx context.Context) error {
			c.engine.Logout()
			return c.auth.Logout(ctx)
		},
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if loggedOut {
		c.io.Println("✓ Logged out.")
	}
	return nil
}
