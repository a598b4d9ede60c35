// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"net/url"

	"github.com/olegiv/veracity-admin/internal/model"
)

// ListUserPosts fetches a page of a user's posts.
func (c *Client) ListUserPosts(ctx context.Context, userID string, params PageParams) (*model.PaginatedPosts, error) {
	var page model.PaginatedPosts
	path := "/admin/users/" + url.PathEscape(userID) + "/posts" + queryString(params.Values())
	if err := c.Get(ctx, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ListUserActivity fetches a page of a user's activity feed.
func (c *Client) ListUserActivity(ctx context.Context, userID string, params PageParams) (*model.PaginatedActivity, error) {
	var page model.PaginatedActivity
	path := "/admin/users/" + url.PathEscape(userID) + "/activity" + queryString(params.Values())
	if err := c.Get(ctx, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
