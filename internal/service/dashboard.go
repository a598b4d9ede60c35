// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"

	"github.com/olegiv/veracity-admin/internal/api"
	"github.com/olegiv/veracity-admin/internal/model"
)

// pendingPreviewSize is how many pending users the dashboard shows.
const pendingPreviewSize = 5

// DashboardData is everything the dashboard page renders.
type DashboardData struct {
	TotalUsers     int
	ActiveUsers    int
	PendingUsers   int
	InactiveUsers  int
	PendingPreview []model.User
}

// DashboardService aggregates the counters and the pending-approval
// preview shown on the landing page.
type DashboardService struct {
	directory *DirectoryService
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(directory *DirectoryService) *DashboardService {
	return &DashboardService{directory: directory}
}

// Load gathers the status counters and the pending preview. Counters
// come from single-item list queries, only the total matters. The
// directory cache makes repeat dashboard visits cheap.
func (s *DashboardService) Load(ctx context.Context) (*DashboardData, error) {
	data := &DashboardData{}

	total, err := s.countUsers(ctx, "")
	if err != nil {
		return nil, err
	}
	data.TotalUsers = total

	for _, c := range []struct {
		status string
		dst    *int
	}{
		{model.UserStatusActive, &data.ActiveUsers},
		{model.UserStatusPending, &data.PendingUsers},
		{model.UserStatusInactive, &data.InactiveUsers},
	} {
		n, err := s.countUsers(ctx, c.status)
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}

	preview, err := s.directory.ListUsers(ctx, api.UsersParams{
		Limit:  pendingPreviewSize,
		Status: model.UserStatusPending,
	})
	if err != nil {
		return nil, err
	}
	data.PendingPreview = preview.Users

	return data, nil
}

func (s *DashboardService) countUsers(ctx context.Context, status string) (int, error) {
	page, err := s.directory.ListUsers(ctx, api.UsersParams{Limit: 1, Status: status})
	if err != nil {
		return 0, err
	}
	return page.Total, nil
}
