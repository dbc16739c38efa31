package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/gophchat/internal/models"
)

// runSettings без аргументов показывает настройки, с аргументами вида
// key=value меняет и сохраняет их
func (c *Cli) runSettings(ctx context.Context, args []string) error {
	settings, err := c.settings.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if len(args) > 0 {
		for _, arg := range args {
			key, value, ok := strings.Cut(arg, "=")
			if !ok {
				return fmt.Errorf("invalid setting %q, want key=value", arg)
			}
			switch key {
			case "time":
				format, err := models.ParseTimeFormat(value)
				if err != nil {
					return err
				}
				settings.TimeFormat = format
			case "avatars":
				switch value {
				case "on":
					settings.ShowAvatars = true
				case "off":
					settings.ShowAvatars = false
				default:
					return fmt.Errorf("invalid avatars value %q, want on or off", value)
				}
			default:
				return fmt.Errorf("unknown setting %q, want time or avatars", key)
			}
		}

		if err := c.settings.SaveSettings(ctx, settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		c.io.Println("✓ Settings saved")
	}

	avatars := "off"
	if settings.ShowAvatars {
		avatars = "on"
	}
	c.io.Printf("Time format: %s\n", settings.TimeFormat)
	c.io.Printf("Avatars:     %s\n", avatars)
	return nil
}
