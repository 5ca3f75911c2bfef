package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/failtrace/internal/config"
	"github.com/aretw0/failtrace/pkg/adapters/file"
	"github.com/aretw0/failtrace/pkg/adapters/memory"
	"github.com/aretw0/failtrace/pkg/adapters/redis"
	"github.com/aretw0/failtrace/pkg/checklist"
	"github.com/aretw0/failtrace/pkg/persistence/middleware"
	"github.com/aretw0/failtrace/pkg/ports"
)

const pingTimeout = 3 * time.Second

// OpenStore builds the KVStore selected by cfg.Backend.
// The returned closer is nil for backends holding no connection.
// On Redis the checklist is exempt from the TTL: it outlives any single session.
func OpenStore(ctx context.Context, cfg config.StoreConfig) (ports.KVStore, func() error, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return memory.NewStore(), nil, nil
	case config.BackendFile, "":
		return file.New(cfg.Dir), nil, nil
	case config.BackendRedis:
		opts := []redis.Option{
			redis.WithTTL(cfg.Redis.TTL),
			redis.WithPersistentKeys(checklist.StoreKey),
		}
		if cfg.Redis.Prefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Redis.Prefix))
		}
		store := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, opts...)

		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		if err := store.Ping(pingCtx); err != nil {
			_ = store.Close()
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

// encrypt wraps store so every blob is sealed with the configured key.
func encrypt(store ports.KVStore, cfg config.EncryptionConfig) (ports.KVStore, error) {
	active, fallback, err := cfg.Decode()
	if err != nil {
		return nil, fmt.Errorf("store.encryption: %w", err)
	}
	mw, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey:    active,
		FallbackKeys: fallback,
	})
	if err != nil {
		return nil, fmt.Errorf("store.encryption: %w", err)
	}
	return middleware.Chain(store, mw), nil
}
