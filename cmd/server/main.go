package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/gophchat/internal/server"
	"github.com/iudanet/gophchat/internal/server/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx, os.Args[1:])
	if err != nil {
		return err
	}

	if cfg.ShowVersion {
		printVersion()
		return nil
	}

	logger := cfg.NewLogger(os.Stdout)
	logger.Info("GophChat server starting",
		"version", Version,
		"storage", cfg.StorageBackend,
		"addr", cfg.HTTPAddr,
	)

	backend, err := server.OpenBackend(ctx, cfg)
	if err != nil {
		return err
	}

	srv, err := server.New(ctx, cfg, backend, logger, Version)
	if err != nil {
		_ = backend.Close()
		return err
	}
	defer func() {
		if err := srv.Close(); err != nil {
			logger.Error("failed to close server", "error", err)
		}
	}()

	if err := srv.Run(ctx); err != nil {
		return err
	}

	logger.Info("GophChat server stopped")
	return nil
}

func printVersion() {
	fmt.Printf("GophChat Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
