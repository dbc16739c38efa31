package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/gophchat/internal/client/auth"
	"github.com/iudanet/gophchat/internal/client/iocli"
	"github.com/iudanet/gophchat/internal/client/storage"
	"github.com/iudanet/gophchat/internal/client/sync"
	"github.com/iudanet/gophchat/internal/client/tui"
)

//go:generate moq -out auth_service_mock_test.go . AuthService

// AuthService операции с сессией пользователя
type AuthService interface {
	Register(ctx context.Context, username, password, avatar string) (*storage.Session, error)
	Login(ctx context.Context, username, password string) (*storage.Session, error)
	Restore(ctx context.Context) (*storage.Session, error)
	Current(ctx context.Context) (*storage.Session, error)
	Logout(ctx context.Context) error
}

// ChatEngine движок синхронизации, с которым работает команда chat
type ChatEngine interface {
	tui.Chat
	Start(ctx context.Context, session storage.Session) error
	Logout()
}

var _ AuthService = (*auth.Service)(nil)
var _ ChatEngine = (*sync.Engine)(nil)

// ErrUnknownCommand возвращается Run для неизвестной команды
var ErrUnknownCommand = errors.New("unknown command")

type Cli struct {
	io       iocli.IO
	auth     AuthService
	messages sync.MessagesAPI
	settings storage.SettingsStorage
	engine   ChatEngine
	logger   *slog.Logger
	runUI    func(ctx context.Context, opts tui.Options) (bool, error)
}

func New(
	io iocli.IO,
	authService AuthService,
	messages sync.MessagesAPI,
	settings storage.SettingsStorage,
	engine ChatEngine,
	logger *slog.Logger,
) *Cli {
	return &Cli{
		io:       io,
		auth:     authService,
		messages: messages,
		settings: settings,
		engine:   engine,
		logger:   logger,
		runUI:    tui.Run,
	}
}

// Run выполняет команду. args не содержат имени команды
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "send":
		return c.runSend(ctx, args)
	case "history":
		return c.runHistory(ctx, args)
	case "chat":
		return c.runChat(ctx)
	case "settings":
		return c.runSettings(ctx, args)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

// requireSession возвращает проверенную на сервере сессию
func (c *Cli) requireSession(ctx context.Context) (*storage.Session, error) {
	session, err := c.auth.Restore(ctx)
	switch {
	case errors.Is(err, storage.ErrSessionNotFound):
		return nil, errors.New("not logged in. Please run 'gophchat login' first")
	case errors.Is(err, auth.ErrSessionExpired):
		return nil, fmt.Errorf("%w. Please run 'gophchat login' again", err)
	case err != nil:
		return nil, err
	}
	return session, nil
}

func PrintUsage(out iocli.IO) {
	out.Println("GophChat Client")
	out.Println()
	out.Println("Usage:")
	out.Println("  gophchat [OPTIONS] COMMAND")
	out.Println()
	out.Println("Options:")
	out.Println("  -version                 Show version information")
	out.Println("  -server URL              Server URL (default: http://localhost:8080)")
	out.Println("  -db PATH                 Path to local database (default: gophchat-client.db)")
	out.Println("  -interval DURATION       Poll interval for chat (default: 1s)")
	out.Println()
	out.Println("Commands:")
	out.Println("  register                 Register new user")
	out.Println("  login                    Login to server")
	out.Println("  logout                   Forget the saved session")
	out.Println("  status                   Show authentication status")
	out.Println("  chat                     Open interactive chat")
	out.Println("  send [-image PATH] TEXT  Send one message")
	out.Println("  history [-n N]           Print the message log")
	out.Println("  settings [time=time|date|both] [avatars=on|off]")
	out.Println("                           Show or change display settings")
	out.Println()
	out.Println("Examples:")
	out.Println("  gophchat register")
	out.Println("  gophchat -server https://chat.example.com login")
	out.Println("  gophchat send -image cat.png 'look at this'")
	out.Println("  gophchat settings time=date avatars=off")
}
