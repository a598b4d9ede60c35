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

// InterestService manages the interest taxonomy users tag their
// profiles with.
type InterestService struct {
	api *api.Client
	deps
}

// NewInterestService creates a new interest service.
func NewInterestService(client *api.Client, d Deps) *InterestService {
	return &InterestService{api: client, deps: newDeps(d)}
}

// ListInterests returns a page of interests.
func (s *InterestService) ListInterests(ctx context.Context, params api.InterestsParams) (*model.PaginatedInterests, error) {
	key := cache.Key(cache.FamilyInterests, params.Values())
	return fetchCached(ctx, s.deps, cache.FamilyInterests, key, s.ttl,
		func(ctx context.Context) (*model.PaginatedInterests, error) {
			return s.api.ListInterests(ctx, params)
		})
}

// CreateInterest adds a new interest and invalidates the list.
func (s *InterestService) CreateInterest(ctx context.Context, name string) (*model.Interest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("interest name is required")
	}

	interest, err := s.api.CreateInterest(ctx, name)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, cache.FamilyInterests)
	return interest, nil
}

// UpdateInterest renames an interest and invalidates the list.
func (s *InterestService) UpdateInterest(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("interest name is required")
	}

	if err := s.api.UpdateInterest(ctx, id, name); err != nil {
		return err
	}
	s.invalidate(ctx, cache.FamilyInterests)
	return nil
}

// DeleteInterest removes an interest and invalidates the list.
func (s *InterestService) DeleteInterest(ctx context.Context, id string) error {
	if err := s.api.DeleteInterest(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, cache.FamilyInterests)
	return nil
}
