// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/olegiv/veracity-admin/internal/model"
)

// ModeratorsParams are the query parameters for the moderators list.
type ModeratorsParams struct {
	Offset int
	Limit  int
	Search string
}

// Values encodes the parameters for the query string and cache key.
func (p ModeratorsParams) Values() url.Values {
	v := make(url.Values)
	if p.Offset > 0 {
		v.Set("offset", strconv.Itoa(p.Offset))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	return v
}

// ListModerators fetches a page of moderator accounts.
func (c *Client) ListModerators(ctx context.Context, params ModeratorsParams) (*model.PaginatedModerators, error) {
	var page model.PaginatedModerators
	if err := c.Get(ctx, "/admin/moderators"+queryString(params.Values()), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateModerator creates a moderator account.
func (c *Client) CreateModerator(ctx context.Context, email, password string) (*model.Moderator, error) {
	payload := map[string]string{"email": email, "password": password}
	var created model.Moderator
	if err := c.Post(ctx, "/admin/moderators", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteModerator removes a moderator account by email.
func (c *Client) DeleteModerator(ctx context.Context, email string) error {
	return c.Delete(ctx, "/admin/moderators/"+url.PathEscape(email))
}
