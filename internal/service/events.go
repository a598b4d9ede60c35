// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"

	"github.com/olegiv/veracity-admin/internal/api"
	"github.com/olegiv/veracity-admin/internal/cache"
	"github.com/olegiv/veracity-admin/internal/model"
)

// EventService exposes the events a user created or registered for.
type EventService struct {
	api *api.Client
	deps
}

// NewEventService creates a new event service.
func NewEventService(client *api.Client, d Deps) *EventService {
	return &EventService{api: client, deps: newDeps(d)}
}

// ListUserEvents returns a page of the user's event relations, both
// events they created and events they registered for.
func (s *EventService) ListUserEvents(ctx context.Context, userID string, params api.PageParams) (*model.PaginatedEvents, error) {
	key := cache.Key(cache.DetailKey(cache.FamilyUser, userID)+":events", params.Values())
	return fetchCached(ctx, s.deps, cache.FamilyUser, key, s.ttl,
		func(ctx context.Context) (*model.PaginatedEvents, error) {
			return s.api.ListUserEvents(ctx, userID, params)
		})
}
