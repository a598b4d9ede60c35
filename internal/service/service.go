// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service provides the business logic between the admin
// handlers and the Veracity backend API. Each service caches the
// responses it fetches and invalidates the affected key families
// after a mutation.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/olegiv/veracity-admin/internal/cache"
)

// deps bundles what every service needs.
type deps struct {
	cache cache.Cacher
	gens  *cache.Generations
	ttl   time.Duration
	log   *slog.Logger
}

// Deps holds shared service dependencies.
type Deps struct {
	Cache cache.Cacher
	Gens  *cache.Generations
	TTL   time.Duration
	Log   *slog.Logger
}

func newDeps(d Deps) deps {
	if d.TTL <= 0 {
		d.TTL = 5 * time.Minute
	}
	if d.Log == nil {
		d.Log = slog.Default()
	}
	return deps{cache: d.Cache, gens: d.Gens, ttl: d.TTL, log: d.Log}
}

// fetchCached returns the cached value for key, or fetches it from the
// backend. The family generation is snapshotted before the fetch; if a
// mutation bumped it while the request was in flight the response is
// returned to the caller but not cached, so the next read refetches.
func fetchCached[T any](ctx context.Context, d deps, family, key string, ttl time.Duration, fetch func(context.Context) (T, error)) (T, error) {
	tc := cache.NewTypedCache[T](d.cache)

	value, err := tc.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		d.log.Warn("cache read failed", "key", key, "error", err)
	}

	snapshot := d.gens.Current(family)

	value, err = fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	if d.gens.Fresh(family, snapshot) {
		if err := tc.Set(ctx, key, value, ttl); err != nil {
			d.log.Warn("cache write failed", "key", key, "error", err)
		}
	}
	return value, nil
}

// invalidate bumps the generation for each family and drops its keys.
func (d deps) invalidate(ctx context.Context, families ...string) {
	for _, family := range families {
		d.gens.Bump(family)
		if err := d.cache.DeleteByPrefix(ctx, family); err != nil {
			d.log.Warn("cache invalidation failed", "family", family, "error", err)
		}
	}
}
