package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/gophchat/internal/client/iocli"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if password != confirm {
		return errors.New("passwords do not match")
	}

	avatarPath, err := c.io.ReadInput("Avatar image path (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read avatar path: %w", err)
	}
	var avatar string
	if avatarPath != "" {
		if avatar, err = iocli.LoadImage(avatarPath); err != nil {
			return err
		}
	}

	c.io.Println()
	c.io.Println("Registering user...")

	session, err := c.auth.Register(ctx, username, password, avatar)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Registration successful!")
	c.io.Printf("Username: %s\n", session.Username)
	c.io.Println("You are now logged in. Run 'gophchat chat' to start chatting.")
	return nil
}
