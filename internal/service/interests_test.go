// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"io"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/olegiv/veracity-admin/internal/api"
	"github.com/olegiv/veracity-admin/internal/cache"
)

const interestsPage = `{"interests":[{"id":"i1","name":"Robotics"}],"total":1}`

func TestInterestsDeleteInvalidatesList(t *testing.T) {
	backend := newTestBackend(t)
	backend.respond("GET", "/admin/interests", interestsPage)
	backend.respond("DELETE", "/admin/interests/i1", `{}`)

	svc := NewInterestService(backend.client(), testDeps(t))
	ctx := testCtx()

	if _, err := svc.ListInterests(ctx, api.InterestsParams{Limit: 20}); err != nil {
		t.Fatalf("ListInterests: %v", err)
	}
	if err := svc.DeleteInterest(ctx, "i1"); err != nil {
		t.Fatalf("DeleteInterest: %v", err)
	}
	if _, err := svc.ListInterests(ctx, api.InterestsParams{Limit: 20}); err != nil {
		t.Fatalf("ListInterests: %v", err)
	}

	if got := backend.hitCount("GET", "/admin/interests"); got != 2 {
		t.Errorf("list fetched %d times, want 2", got)
	}
}

// A mutation that lands while a list fetch is still in flight must not
// leave the pre-mutation response in the cache. The caller still gets
// the response, but the next read goes back to the backend.
func TestInterestsListMidFlightInvalidationNotCached(t *testing.T) {
	backend := newTestBackend(t)
	deps := testDeps(t)

	counter := &atomic.Int64{}
	backend.hits["GET /admin/interests"] = counter
	backend.mux.HandleFunc("GET /admin/interests", func(w http.ResponseWriter, r *http.Request) {
		if counter.Add(1) == 1 {
			// Simulates a delete committing on the backend while
			// this response is being served.
			deps.Gens.Bump(cache.FamilyInterests)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, interestsPage)
	})

	svc := NewInterestService(backend.client(), deps)
	ctx := testCtx()

	page, err := svc.ListInterests(ctx, api.InterestsParams{Limit: 20})
	if err != nil {
		t.Fatalf("ListInterests: %v", err)
	}
	if page.Total != 1 {
		t.Errorf("Total = %d, want 1", page.Total)
	}

	if _, err := svc.ListInterests(ctx, api.InterestsParams{Limit: 20}); err != nil {
		t.Fatalf("ListInterests: %v", err)
	}
	if got := backend.hitCount("GET", "/admin/interests"); got != 2 {
		t.Errorf("list fetched %d times after invalidation, want 2", got)
	}

	// The second fetch ran under the bumped generation, so it caches.
	if _, err := svc.ListInterests(ctx, api.InterestsParams{Limit: 20}); err != nil {
		t.Fatalf("ListInterests: %v", err)
	}
	if got := backend.hitCount("GET", "/admin/interests"); got != 2 {
		t.Errorf("list fetched %d times from warm cache, want 2", got)
	}
}

func TestInterestsCreateRequiresName(t *testing.T) {
	backend := newTestBackend(t)
	backend.respond("POST", "/admin/interests", `{"id":"i2","name":"AI"}`)

	svc := NewInterestService(backend.client(), testDeps(t))

	if _, err := svc.CreateInterest(testCtx(), "   "); err == nil {
		t.Fatal("expected error for blank name")
	}
	if got := backend.hitCount("POST", "/admin/interests"); got != 0 {
		t.Errorf("backend called %d times for blank name, want 0", got)
	}
}

func TestInterestsCreateTrimsName(t *testing.T) {
	backend := newTestBackend(t)
	backend.respond("GET", "/admin/interests", interestsPage)
	backend.respond("POST", "/admin/interests", `{"id":"i2","name":"AI"}`)

	svc := NewInterestService(backend.client(), testDeps(t))
	ctx := testCtx()

	// Warm the list, then create and confirm the list refetches.
	if _, err := svc.ListInterests(ctx, api.InterestsParams{Limit: 20}); err != nil {
		t.Fatalf("ListInterests: %v", err)
	}

	created, err := svc.CreateInterest(ctx, "  AI  ")
	if err != nil {
		t.Fatalf("CreateInterest: %v", err)
	}
	if created.Name != "AI" {
		t.Errorf("created.Name = %q, want %q", created.Name, "AI")
	}

	if _, err := svc.ListInterests(ctx, api.InterestsParams{Limit: 20}); err != nil {
		t.Fatalf("ListInterests: %v", err)
	}
	if got := backend.hitCount("GET", "/admin/interests"); got != 2 {
		t.Errorf("list fetched %d times, want 2", got)
	}
}
