// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"log/slog"
	"time"
)

// Config holds cache backend configuration.
type Config struct {
	// RedisURL selects the Redis backend when non-empty.
	RedisURL string

	// KeyPrefix namespaces Redis keys.
	KeyPrefix string

	// DefaultTTL is the TTL used when callers pass 0.
	DefaultTTL time.Duration

	// MaxItems caps the in-memory backend. 0 means unlimited.
	MaxItems int
}

// New creates a cache backend from config. When RedisURL is set but
// the connection fails, it logs a warning and falls back to the
// in-memory backend so the console still starts.
func New(ctx context.Context, cfg Config, log *slog.Logger) Cacher {
	if cfg.RedisURL != "" {
		rc, err := NewRedisCache(ctx, RedisConfig{
			URL:        cfg.RedisURL,
			KeyPrefix:  cfg.KeyPrefix,
			DefaultTTL: cfg.DefaultTTL,
		})
		if err == nil {
			log.Info("cache backend ready", "backend", "redis")
			return rc
		}
		log.Warn("redis cache unavailable, falling back to memory", "error", err)
	}

	mc := NewMemoryCache(MemoryConfig{
		DefaultTTL: cfg.DefaultTTL,
		MaxItems:   cfg.MaxItems,
	})
	log.Info("cache backend ready", "backend", "memory")
	return mc
}
