// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// TypedCache wraps a Cacher with JSON serialization for a specific type.
// It carries the backend responses the admin pages render, so a page
// revisit within the TTL does not hit the backend again.
type TypedCache[T any] struct {
	cache Cacher
}

// NewTypedCache creates a typed wrapper around the given cache.
func NewTypedCache[T any](c Cacher) *TypedCache[T] {
	return &TypedCache[T]{cache: c}
}

// Get retrieves and unmarshals a value.
func (tc *TypedCache[T]) Get(ctx context.Context, key string) (T, error) {
	var zero T

	data, err := tc.cache.Get(ctx, key)
	if err != nil {
		return zero, err
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		// Corrupt entry, drop it so the next read refetches.
		_ = tc.cache.Delete(ctx, key)
		return zero, fmt.Errorf("unmarshal cached value: %w", err)
	}
	return value, nil
}

// Set marshals and stores a value.
func (tc *TypedCache[T]) Set(ctx context.Context, key string, value T, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal value for cache: %w", err)
	}
	return tc.cache.Set(ctx, key, data, ttl)
}

// Delete removes a key.
func (tc *TypedCache[T]) Delete(ctx context.Context, key string) error {
	return tc.cache.Delete(ctx, key)
}

// GetOrSet returns the cached value for key, or calls fetch, caches the
// result and returns it. A fetch error is returned without caching.
func (tc *TypedCache[T]) GetOrSet(ctx context.Context, key string, ttl time.Duration, fetch func(context.Context) (T, error)) (T, error) {
	value, err := tc.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, ErrCacheMiss) && !isUnmarshalError(err) {
		var zero T
		return zero, err
	}

	value, err = fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	// Cache write failures are not fatal, the caller still gets the value.
	_ = tc.Set(ctx, key, value, ttl)
	return value, nil
}

func isUnmarshalError(err error) bool {
	return err != nil && !errors.Is(err, ErrCacheMiss) && !errors.Is(err, ErrCacheClosed)
}
