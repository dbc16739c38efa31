package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/iudanet/gophchat/internal/client/iocli"
	"github.com/iudanet/gophchat/internal/validation"
	"github.com/iudanet/gophchat/pkg/api"
)

func (c *Cli) runSend(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("send", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	imagePath := fs.String("image", "", "Path to an image to attach")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("usage: gophchat send [-image PATH] TEXT: %w", err)
	}

	var image string
	if *imagePath != "" {
		var err error
		if image, err = iocli.LoadImage(*imagePath); err != nil {
			return err
		}
	}

	text, err := validation.ValidateContent(strings.Join(fs.Args(), " "), image)
	if err != nil {
		return errors.New("usage: gophchat send [-image PATH] TEXT")
	}

	session, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	msg, err := c.messages.SendMessage(ctx, session.Token, api.SendMessageRequest{Message: text, Image: image})
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	c.io.Printf("✓ Message sent (id %s)\n", msg.ID)
	return nil
}
