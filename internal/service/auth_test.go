// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/olegiv/veracity-admin/internal/api"
)

const adminInfo = `{"email":"owner@example.com","role":"owner"}`

func TestAuthCurrentAdminCached(t *testing.T) {
	backend := newTestBackend(t)
	backend.respond("GET", "/admin/me", adminInfo)

	svc := NewAuthService(backend.client(), testDeps(t))
	ctx := testCtx()

	for i := 0; i < 3; i++ {
		admin, err := svc.CurrentAdmin(ctx)
		if err != nil {
			t.Fatalf("CurrentAdmin: %v", err)
		}
		if !admin.IsOwner() {
			t.Error("expected owner role")
		}
	}

	if got := backend.hitCount("GET", "/admin/me"); got != 1 {
		t.Errorf("backend hit %d times, want 1", got)
	}
}

func TestAuthCurrentAdminRequiresSession(t *testing.T) {
	backend := newTestBackend(t)
	backend.respond("GET", "/admin/me", adminInfo)

	svc := NewAuthService(backend.client(), testDeps(t))

	_, err := svc.CurrentAdmin(context.Background())
	if !errors.Is(err, api.ErrNoSession) {
		t.Fatalf("err = %v, want ErrNoSession", err)
	}
}

func TestAuthLogoutPurgesCache(t *testing.T) {
	backend := newTestBackend(t)
	backend.respond("GET", "/admin/me", adminInfo)
	backend.respond("GET", "/admin/users", usersPage)
	backend.respond("POST", "/admin/auth/logout", `{}`)

	deps := testDeps(t)
	auth := NewAuthService(backend.client(), deps)
	directory := NewDirectoryService(backend.client(), deps)
	ctx := testCtx()

	if _, err := auth.CurrentAdmin(ctx); err != nil {
		t.Fatalf("CurrentAdmin: %v", err)
	}
	if _, err := directory.ListUsers(ctx, api.UsersParams{Limit: 10}); err != nil {
		t.Fatalf("ListUsers: %v", err)
	}

	if err := auth.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	// Everything refetches after logout.
	if _, err := auth.CurrentAdmin(ctx); err != nil {
		t.Fatalf("CurrentAdmin: %v", err)
	}
	if _, err := directory.ListUsers(ctx, api.UsersParams{Limit: 10}); err != nil {
		t.Fatalf("ListUsers: %v", err)
	}

	if got := backend.hitCount("GET", "/admin/me"); got != 2 {
		t.Errorf("identity fetched %d times, want 2", got)
	}
	if got := backend.hitCount("GET", "/admin/users"); got != 2 {
		t.Errorf("users fetched %d times, want 2", got)
	}
}
