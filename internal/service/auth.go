// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/olegiv/veracity-admin/internal/api"
	"github.com/olegiv/veracity-admin/internal/cache"
	"github.com/olegiv/veracity-admin/internal/model"
)

// currentAdminTTL keeps the signed-in admin's identity cached briefly.
// Role changes on the backend surface within this window.
const currentAdminTTL = 5 * time.Minute

// AuthService handles admin sign-in, sign-out and identity lookup.
type AuthService struct {
	api *api.Client
	deps

	// lastToken holds the most recent backend session token so
	// background jobs can query the backend without a request context.
	lastToken atomic.Value
}

// NewAuthService creates a new auth service.
func NewAuthService(client *api.Client, d Deps) *AuthService {
	return &AuthService{api: client, deps: newDeps(d)}
}

// Login authenticates against the backend and returns the backend
// session token to store in the admin's session. The cached identity
// for the previous sign-in, if any, is dropped.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	token, err := s.api.Login(ctx, email, password)
	if err != nil {
		return "", err
	}
	s.invalidate(ctx, cache.FamilyCurrentAdmin)
	s.lastToken.Store(token)
	return token, nil
}

// Token returns the most recently issued backend session token, if any.
// It satisfies the scheduler's token source for cache warm jobs.
func (s *AuthService) Token(_ context.Context) (string, bool) {
	token, _ := s.lastToken.Load().(string)
	return token, token != ""
}

// Logout ends the backend session and purges the whole cache, so no
// data fetched under the old session outlives it.
func (s *AuthService) Logout(ctx context.Context) error {
	err := s.api.Logout(ctx)
	if last, _ := s.lastToken.Load().(string); last != "" && last == api.SessionFromContext(ctx) {
		s.lastToken.Store("")
	}
	for _, family := range []string{
		cache.FamilyUsers, cache.FamilyUser, cache.FamilyModerators,
		cache.FamilyInterests, cache.FamilyCurrentAdmin, cache.FamilyAnalytics,
	} {
		s.gens.Bump(family)
	}
	if cerr := s.cache.Clear(ctx); cerr != nil {
		s.log.Warn("cache purge on logout failed", "error", cerr)
	}
	return err
}

// CurrentAdmin returns the signed-in admin's identity. The result is
// cached per backend session token for a short window.
func (s *AuthService) CurrentAdmin(ctx context.Context) (*model.AdminInfo, error) {
	token := api.SessionFromContext(ctx)
	if token == "" {
		return nil, api.ErrNoSession
	}

	key := cache.DetailKey(cache.FamilyCurrentAdmin, token)
	return fetchCached(ctx, s.deps, cache.FamilyCurrentAdmin, key, currentAdminTTL,
		func(ctx context.Context) (*model.AdminInfo, error) {
			return s.api.Me(ctx)
		})
}
