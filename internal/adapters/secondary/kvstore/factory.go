package kvstore

import (
	"context"
	"fmt"

	"github.com/lorrc/medspa-leads-backend/internal/core/ports"
)

// Backend selects a key-value store implementation.
type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendRedis    Backend = "redis"
	BackendPostgres Backend = "postgres"
)

// Config holds the settings for constructing a store.
type Config struct {
	Backend     Backend
	Redis       RedisConfig
	DatabaseURL string
}

// New constructs the key-value store selected by the configuration.
func New(ctx context.Context, cfg Config) (ports.KVStore, error) {
	switch cfg.Backend {
	case BackendRedis:
		return NewRedisStore(ctx, cfg.Redis)
	case BackendPostgres:
		return NewPostgresStore(ctx, cfg.DatabaseURL)
	case BackendMemory, "":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
