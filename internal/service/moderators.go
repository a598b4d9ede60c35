// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/olegiv/veracity-admin/internal/api"
	"github.com/olegiv/veracity-admin/internal/cache"
	"github.com/olegiv/veracity-admin/internal/model"
)

// minModeratorPasswordLen matches the backend's password policy.
const minModeratorPasswordLen = 8

// ModeratorService manages moderator accounts. Only the owner may use
// the mutating operations; the guard enforcing that lives in the
// middleware layer.
type ModeratorService struct {
	api *api.Client
	deps
}

// NewModeratorService creates a new moderator service.
func NewModeratorService(client *api.Client, d Deps) *ModeratorService {
	return &ModeratorService{api: client, deps: newDeps(d)}
}

// ListModerators returns a page of moderator accounts.
func (s *ModeratorService) ListModerators(ctx context.Context, params api.ModeratorsParams) (*model.PaginatedModerators, error) {
	key := cache.Key(cache.FamilyModerators, params.Values())
	return fetchCached(ctx, s.deps, cache.FamilyModerators, key, s.ttl,
		func(ctx context.Context) (*model.PaginatedModerators, error) {
			return s.api.ListModerators(ctx, params)
		})
}

// CreateModerator creates a moderator account and invalidates the
// moderator list.
func (s *ModeratorService) CreateModerator(ctx context.Context, email, password string) (*model.Moderator, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid moderator email %q", email)
	}
	if len(password) < minModeratorPasswordLen {
		return nil, fmt.Errorf("password must be at least %d characters", minModeratorPasswordLen)
	}

	mod, err := s.api.CreateModerator(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, cache.FamilyModerators)
	return mod, nil
}

// DeleteModerator removes a moderator account. The owner account can
// never be deleted.
func (s *ModeratorService) DeleteModerator(ctx context.Context, mod model.Moderator) error {
	if mod.IsOwner() {
		return fmt.Errorf("the owner account cannot be deleted")
	}
	if err := s.api.DeleteModerator(ctx, mod.Email); err != nil {
		return err
	}
	s.invalidate(ctx, cache.FamilyModerators)
	return nil
}
