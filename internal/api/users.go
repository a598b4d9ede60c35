// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/olegiv/veracity-admin/internal/model"
)

// UsersParams are the query parameters for the users list.
// Zero/empty values are not serialized.
type UsersParams struct {
	Offset int
	Limit  int
	Status string
	Search string
}

// Values encodes the parameters for the query string and cache key.
func (p UsersParams) Values() url.Values {
	v := make(url.Values)
	if p.Offset > 0 {
		v.Set("offset", strconv.Itoa(p.Offset))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Status != "" {
		v.Set("status", p.Status)
	}
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	return v
}

// ListUsers fetches a page of users.
func (c *Client) ListUsers(ctx context.Context, params UsersParams) (*model.PaginatedUsers, error) {
	var page model.PaginatedUsers
	if err := c.Get(ctx, "/admin/users"+queryString(params.Values()), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetUser fetches a single user by ID.
func (c *Client) GetUser(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	if err := c.Get(ctx, "/admin/users/"+url.PathEscape(userID), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUserStatus patches a user's status.
func (c *Client) UpdateUserStatus(ctx context.Context, userID, status string) error {
	payload := map[string]string{"status": status}
	return c.Patch(ctx, "/admin/users/"+url.PathEscape(userID)+"/status", payload, nil)
}

// UpdateUserRole patches a user's role.
func (c *Client) UpdateUserRole(ctx context.Context, userID, role string) error {
	payload := map[string]string{"role": role}
	return c.Patch(ctx, "/admin/users/"+url.PathEscape(userID)+"/role", payload, nil)
}

// PageParams are offset/limit parameters shared by the per-user
// posts, activity, and events lists.
type PageParams struct {
	Offset int
	Limit  int
}

// Values encodes the parameters for the query string and cache key.
func (p PageParams) Values() url.Values {
	v := make(url.Values)
	if p.Offset > 0 {
		v.Set("offset", strconv.Itoa(p.Offset))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	return v
}

// ListUserEvents fetches the events a user created or registered for.
func (c *Client) ListUserEvents(ctx context.Context, userID string, params PageParams) (*model.PaginatedEvents, error) {
	var page model.PaginatedEvents
	path := "/admin/users/" + url.PathEscape(userID) + "/events" + queryString(params.Values())
	if err := c.Get(ctx, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
