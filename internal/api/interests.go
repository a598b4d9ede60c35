// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/olegiv/veracity-admin/internal/model"
)

// InterestsParams are the query parameters for the interests list.
type InterestsParams struct {
	Offset int
	Limit  int
	Search string
}

// Values encodes the parameters for the query string and cache key.
func (p InterestsParams) Values() url.Values {
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

// ListInterests fetches a page of interest tags.
func (c *Client) ListInterests(ctx context.Context, params InterestsParams) (*model.PaginatedInterests, error) {
	var page model.PaginatedInterests
	if err := c.Get(ctx, "/admin/interests"+queryString(params.Values()), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateInterest creates a new interest tag.
func (c *Client) CreateInterest(ctx context.Context, name string) (*model.Interest, error) {
	payload := map[string]string{"name": name}
	var created model.Interest
	if err := c.Post(ctx, "/admin/interests", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateInterest renames an interest tag.
func (c *Client) UpdateInterest(ctx context.Context, interestID, name string) error {
	payload := map[string]string{"name": name}
	return c.Patch(ctx, "/admin/interests/"+url.PathEscape(interestID), payload, nil)
}

// DeleteInterest removes an interest tag.
func (c *Client) DeleteInterest(ctx context.Context, interestID string) error {
	return c.Delete(ctx, "/admin/interests/"+url.PathEscape(interestID))
}
