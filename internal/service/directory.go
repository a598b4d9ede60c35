// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"fmt"

	"github.com/olegiv/veracity-admin/internal/api"
	"github.com/olegiv/veracity-admin/internal/cache"
	"github.com/olegiv/veracity-admin/internal/model"
)

// DirectoryService manages the user directory: listing, detail lookup
// and the status/role moderation actions.
type DirectoryService struct {
	api *api.Client
	deps
}

// NewDirectoryService creates a new directory service.
func NewDirectoryService(client *api.Client, d Deps) *DirectoryService {
	return &DirectoryService{api: client, deps: newDeps(d)}
}

// ListUsers returns a page of users matching the filter.
func (s *DirectoryService) ListUsers(ctx context.Context, params api.UsersParams) (*model.PaginatedUsers, error) {
	key := cache.Key(cache.FamilyUsers, params.Values())
	return fetchCached(ctx, s.deps, cache.FamilyUsers, key, s.ttl,
		func(ctx context.Context) (*model.PaginatedUsers, error) {
			return s.api.ListUsers(ctx, params)
		})
}

// GetUser returns a single user's profile.
func (s *DirectoryService) GetUser(ctx context.Context, id string) (*model.User, error) {
	key := cache.DetailKey(cache.FamilyUser, id)
	return fetchCached(ctx, s.deps, cache.FamilyUser, key, s.ttl,
		func(ctx context.Context) (*model.User, error) {
			return s.api.GetUser(ctx, id)
		})
}

// UpdateUserStatus changes a user's status. Both the user list and
// the user's detail entry are invalidated.
func (s *DirectoryService) UpdateUserStatus(ctx context.Context, id, status string) error {
	if !model.IsValidUserStatus(status) {
		return fmt.Errorf("invalid user status %q", status)
	}
	if err := s.api.UpdateUserStatus(ctx, id, status); err != nil {
		return err
	}
	s.invalidateUser(ctx, id)
	return nil
}

// UpdateUserRole changes a user's role. Both the user list and the
// user's detail entry are invalidated.
func (s *DirectoryService) UpdateUserRole(ctx context.Context, id, role string) error {
	if !model.IsValidUserRole(role) {
		return fmt.Errorf("invalid user role %q", role)
	}
	if err := s.api.UpdateUserRole(ctx, id, role); err != nil {
		return err
	}
	s.invalidateUser(ctx, id)
	return nil
}

func (s *DirectoryService) invalidateUser(ctx context.Context, id string) {
	s.invalidate(ctx, cache.FamilyUsers)
	s.gens.Bump(cache.FamilyUser)
	if err := s.cache.DeleteByPrefix(ctx, cache.DetailKey(cache.FamilyUser, id)); err != nil {
		s.log.Warn("cache invalidation failed", "user_id", id, "error", err)
	}
}
