package server

import (
	"context"
	"fmt"

	"github.com/iudanet/gophchat/internal/server/config"
	"github.com/iudanet/gophchat/internal/server/storage"
	"github.com/iudanet/gophchat/internal/server/storage/file"
	"github.com/iudanet/gophchat/internal/server/storage/memory"
	"github.com/iudanet/gophchat/internal/server/storage/redis"
	"github.com/iudanet/gophchat/internal/server/storage/sqlite"
)

// OpenBackend открывает хранилище, выбранное в STORAGE_BACKEND
func OpenBackend(ctx context.Context, cfg *config.Config) (storage.Backend, error) {
	switch cfg.StorageBackend {
	case config.BackendFile:
		s, err := file.New(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to open file storage: %w", err)
		}
		return s, nil
	case config.BackendSQLite:
		s, err := sqlite.New(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite storage: %w", err)
		}
		return s, nil
	case config.BackendRedis:
		s, err := redis.New(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			Prefix:   cfg.Redis.Prefix,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open redis storage: %w", err)
		}
		return s, nil
	case config.BackendMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
