// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/olegiv/veracity-admin/internal/model"
)

// DateRangeParams are the parameters shared by the date-ranged
// analytics series. Dates are formatted YYYY-MM-DD.
type DateRangeParams struct {
	StartDate string
	EndDate   string
	Interval  string
}

// Values encodes the parameters for the query string and cache key.
func (p DateRangeParams) Values() url.Values {
	v := make(url.Values)
	v.Set("startDate", p.StartDate)
	v.Set("endDate", p.EndDate)
	if p.Interval != "" {
		v.Set("interval", p.Interval)
	}
	return v
}

// AnalyticsOverview fetches the platform-wide aggregate counters.
func (c *Client) AnalyticsOverview(ctx context.Context) (*model.AnalyticsOverview, error) {
	var overview model.AnalyticsOverview
	if err := c.Get(ctx, "/admin/analytics/overview", &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

// UserGrowth fetches the user growth series.
func (c *Client) UserGrowth(ctx context.Context, params DateRangeParams) ([]model.UserGrowthPoint, error) {
	var series []model.UserGrowthPoint
	if err := c.Get(ctx, "/admin/analytics/user-growth"+queryString(params.Values()), &series); err != nil {
		return nil, err
	}
	return series, nil
}

// ConnectionActivity fetches the connection request series.
func (c *Client) ConnectionActivity(ctx context.Context, params DateRangeParams) ([]model.ConnectionActivityPoint, error) {
	var series []model.ConnectionActivityPoint
	if err := c.Get(ctx, "/admin/analytics/connection-activity"+queryString(params.Values()), &series); err != nil {
		return nil, err
	}
	return series, nil
}

// ContentEngagement fetches the post/like/comment volume series.
func (c *Client) ContentEngagement(ctx context.Context, params DateRangeParams) ([]model.ContentEngagementPoint, error) {
	var series []model.ContentEngagementPoint
	if err := c.Get(ctx, "/admin/analytics/content-engagement"+queryString(params.Values()), &series); err != nil {
		return nil, err
	}
	return series, nil
}

// EventInterest fetches per-month event activity for a calendar year.
func (c *Client) EventInterest(ctx context.Context, year int) ([]model.EventInterestPoint, error) {
	var series []model.EventInterestPoint
	path := "/admin/analytics/event-interest?year=" + strconv.Itoa(year)
	if err := c.Get(ctx, path, &series); err != nil {
		return nil, err
	}
	return series, nil
}

// TopInterests fetches the most-selected interests. A zero limit lets
// the backend apply its default.
func (c *Client) TopInterests(ctx context.Context, limit int) ([]model.TopInterest, error) {
	v := make(url.Values)
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	var ranking []model.TopInterest
	if err := c.Get(ctx, "/admin/analytics/top-interests"+queryString(v), &ranking); err != nil {
		return nil, err
	}
	return ranking, nil
}

// UserRetention fetches the retention series.
func (c *Client) UserRetention(ctx context.Context, params DateRangeParams) ([]model.UserRetentionPoint, error) {
	var series []model.UserRetentionPoint
	if err := c.Get(ctx, "/admin/analytics/user-retention"+queryString(params.Values()), &series); err != nil {
		return nil, err
	}
	return series, nil
}

// SpeakerAnalytics fetches the top speakers ranking. A zero limit lets
// the backend apply its default.
func (c *Client) SpeakerAnalytics(ctx context.Context, limit int) ([]model.SpeakerAnalytics, error) {
	v := make(url.Values)
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	var ranking []model.SpeakerAnalytics
	if err := c.Get(ctx, "/admin/analytics/speaker-analytics"+queryString(v), &ranking); err != nil {
		return nil, err
	}
	return ranking, nil
}
