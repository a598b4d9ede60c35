// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"

	"github.com/olegiv/veracity-admin/internal/model"
)

// Me returns the admin identity for the current backend session.
func (c *Client) Me(ctx context.Context) (*model.AdminInfo, error) {
	var admin model.AdminInfo
	if err := c.Get(ctx, "/admin/me", &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

// Logout terminates the backend session.
func (c *Client) Logout(ctx context.Context) error {
	return c.Post(ctx, "/admin/auth/logout", nil, nil)
}
