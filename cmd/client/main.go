package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/gophchat/internal/client/api"
	"github.com/iudanet/gophchat/internal/client/auth"
	"github.com/iudanet/gophchat/internal/client/cli"
	"github.com/iudanet/gophchat/internal/client/iocli"
	"github.com/iudanet/gophchat/internal/client/storage/boltdb"
	"github.com/iudanet/gophchat/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

var errUsage = errors.New("no command given")

func main() {
	if err := run(); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run() error {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "gophchat-client.db", "Path to local database")
	interval := flag.Duration("interval", sync.DefaultInterval, "Poll interval for chat")
	logPath := flag.String("log", "", "Write debug log to file (the terminal is used by the chat UI)")
	flag.Parse()

	if *showVersion {
		printVersion()
		return nil
	}

	stdio := iocli.NewStdio()
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(stdio)
		return errUsage
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, closeLog, err := newLogger(*logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL)
	authService := auth.NewService(apiClient, boltStorage, logger)
	engine := sync.NewEngine(apiClient, *interval, logger)

	c := cli.New(stdio, authService, apiClient, boltStorage, engine, logger)
	err = c.Run(ctx, args[0], args[1:])
	if errors.Is(err, cli.ErrUnknownCommand) {
		cli.PrintUsage(stdio)
	}
	return err
}

func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}

func printVersion() {
	fmt.Printf("GophChat Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
