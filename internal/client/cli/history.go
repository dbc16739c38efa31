package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/iudanet/gophchat/internal/client/render"
	"github.com/iudanet/gophchat/internal/client/sync"
	"github.com/iudanet/gophchat/internal/models"
)

const historyWidth = 80

// runHistory печатает лог сообщений. Вход не обязателен: get_messages
// не требует токена
func (c *Cli) runHistory(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	last := fs.Int("n", 0, "Show only the last N messages")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("usage: gophchat history [-n N]: %w", err)
	}

	msgs, err := c.messages.GetMessages(ctx)
	if err != nil {
		return fmt.Errorf("failed to load messages: %w", err)
	}
	models.SortMessages(msgs)
	if *last > 0 && len(msgs) > *last {
		msgs = msgs[len(msgs)-*last:]
	}

	settings, err := c.settings.GetSettings(ctx)
	if err != nil {
		c.logger.WarnContext(ctx, "failed to load settings, using defaults", "error", err)
		settings = models.DefaultSettings()
	}

	view := sync.View{Messages: msgs}
	if session, err := c.auth.Current(ctx); err == nil {
		view.User = session.User()
	}

	c.io.Println(render.Messages(view, settings, historyWidth))
	return nil
}
