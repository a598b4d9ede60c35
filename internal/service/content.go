// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"

	"github.com/olegiv/veracity-admin/internal/api"
	"github.com/olegiv/veracity-admin/internal/cache"
	"github.com/olegiv/veracity-admin/internal/model"
)

// ContentService exposes a user's posts and activity history for the
// moderation tabs on the user detail page. Entries are keyed under the
// user's detail family, so moderating the user drops them too.
type ContentService struct {
	api *api.Client
	deps
}

// NewContentService creates a new content service.
func NewContentService(client *api.Client, d Deps) *ContentService {
	return &ContentService{api: client, deps: newDeps(d)}
}

// ListUserPosts returns a page of the user's posts, newest first.
// Deleted posts are included and carry their deletion timestamp.
func (s *ContentService) ListUserPosts(ctx context.Context, userID string, params api.PageParams) (*model.PaginatedPosts, error) {
	key := cache.Key(cache.DetailKey(cache.FamilyUser, userID)+":posts", params.Values())
	return fetchCached(ctx, s.deps, cache.FamilyUser, key, s.ttl,
		func(ctx context.Context) (*model.PaginatedPosts, error) {
			return s.api.ListUserPosts(ctx, userID, params)
		})
}

// ListUserActivity returns a page of the user's activity events,
// newest first.
func (s *ContentService) ListUserActivity(ctx context.Context, userID string, params api.PageParams) (*model.PaginatedActivity, error) {
	key := cache.Key(cache.DetailKey(cache.FamilyUser, userID)+":activity", params.Values())
	return fetchCached(ctx, s.deps, cache.FamilyUser, key, s.ttl,
		func(ctx context.Context) (*model.PaginatedActivity, error) {
			return s.api.ListUserActivity(ctx, userID, params)
		})
}
