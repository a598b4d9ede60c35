// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/olegiv/veracity-admin/internal/api"
	"github.com/olegiv/veracity-admin/internal/cache"
)

// testBackend is a fake Veracity backend that counts requests per path.
type testBackend struct {
	t      *testing.T
	mux    *http.ServeMux
	server *httptest.Server
	hits   map[string]*atomic.Int64
}

func newTestBackend(t *testing.T) *testBackend {
	t.Helper()
	b := &testBackend{
		t:    t,
		mux:  http.NewServeMux(),
		hits: make(map[string]*atomic.Int64),
	}
	b.server = httptest.NewServer(b.mux)
	t.Cleanup(b.server.Close)
	return b
}

// respond registers a JSON response for method+path and tracks hits.
func (b *testBackend) respond(method, path, body string) {
	counter := &atomic.Int64{}
	b.hits[method+" "+path] = counter
	b.mux.HandleFunc(method+" "+path, func(w http.ResponseWriter, r *http.Request) {
		counter.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	})
}

func (b *testBackend) hitCount(method, path string) int64 {
	counter, ok := b.hits[method+" "+path]
	if !ok {
		b.t.Fatalf("no handler registered for %s %s", method, path)
	}
	return counter.Load()
}

func (b *testBackend) client() *api.Client {
	return api.NewClient(api.Config{
		BaseURL:       b.server.URL,
		SessionCookie: "session",
	})
}

func testDeps(t *testing.T) Deps {
	t.Helper()
	c := cache.NewMemoryCache(cache.MemoryConfig{
		DefaultTTL:      time.Minute,
		CleanupInterval: time.Hour,
	})
	t.Cleanup(func() { _ = c.Close() })
	return Deps{
		Cache: c,
		Gens:  cache.NewGenerations(),
		TTL:   time.Minute,
		Log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func testCtx() context.Context {
	return api.WithSession(context.Background(), "test-token")
}
