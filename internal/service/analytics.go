// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/olegiv/veracity-admin/internal/api"
	"github.com/olegiv/veracity-admin/internal/cache"
	"github.com/olegiv/veracity-admin/internal/model"
)

// Date range presets offered by the analytics page.
const (
	RangeWeek    = "7d"
	RangeMonth   = "30d"
	RangeQuarter = "90d"
	RangeYear    = "1y"
)

// dateLayout is the backend's date format for range parameters.
const dateLayout = "2006-01-02"

// ResolveRange turns a range preset into concrete start/end dates and
// the aggregation interval the charts use. Unknown presets fall back
// to the 30-day range.
func ResolveRange(preset string, now time.Time) api.DateRangeParams {
	end := now
	var start time.Time
	var interval string

	switch preset {
	case RangeWeek:
		start = end.AddDate(0, 0, -7)
		interval = model.IntervalDay
	case RangeQuarter:
		start = end.AddDate(0, 0, -90)
		interval = model.IntervalWeek
	case RangeYear:
		start = end.AddDate(-1, 0, 0)
		interval = model.IntervalMonth
	default:
		start = end.AddDate(0, 0, -30)
		interval = model.IntervalDay
	}

	return api.DateRangeParams{
		StartDate: start.Format(dateLayout),
		EndDate:   end.Format(dateLayout),
		Interval:  interval,
	}
}

// ValidRangePreset reports whether the preset is one the page offers.
func ValidRangePreset(preset string) bool {
	switch preset {
	case RangeWeek, RangeMonth, RangeQuarter, RangeYear:
		return true
	}
	return false
}

// AnalyticsService serves the analytics dashboards. Every chart is
// cached independently, so switching the date range only refetches
// the range-dependent charts.
type AnalyticsService struct {
	api *api.Client
	deps
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(client *api.Client, d Deps) *AnalyticsService {
	return &AnalyticsService{api: client, deps: newDeps(d)}
}

// Overview returns the platform-wide counters.
func (s *AnalyticsService) Overview(ctx context.Context) (*model.AnalyticsOverview, error) {
	key := cache.FamilyAnalytics + ":overview"
	return fetchCached(ctx, s.deps, cache.FamilyAnalytics, key, s.ttl,
		func(ctx context.Context) (*model.AnalyticsOverview, error) {
			return s.api.AnalyticsOverview(ctx)
		})
}

// UserGrowth returns new and cumulative user counts over the range.
func (s *AnalyticsService) UserGrowth(ctx context.Context, rangeParams api.DateRangeParams) ([]model.UserGrowthPoint, error) {
	key := cache.Key(cache.FamilyAnalytics+":user-growth", rangeParams.Values())
	return fetchCached(ctx, s.deps, cache.FamilyAnalytics, key, s.ttl,
		func(ctx context.Context) ([]model.UserGrowthPoint, error) {
			return s.api.UserGrowth(ctx, rangeParams)
		})
}

// ConnectionActivity returns sent/accepted connection counts over the range.
func (s *AnalyticsService) ConnectionActivity(ctx context.Context, rangeParams api.DateRangeParams) ([]model.ConnectionActivityPoint, error) {
	key := cache.Key(cache.FamilyAnalytics+":connection-activity", rangeParams.Values())
	return fetchCached(ctx, s.deps, cache.FamilyAnalytics, key, s.ttl,
		func(ctx context.Context) ([]model.ConnectionActivityPoint, error) {
			return s.api.ConnectionActivity(ctx, rangeParams)
		})
}

// ContentEngagement returns posts, likes and comments over the range.
func (s *AnalyticsService) ContentEngagement(ctx context.Context, rangeParams api.DateRangeParams) ([]model.ContentEngagementPoint, error) {
	key := cache.Key(cache.FamilyAnalytics+":content-engagement", rangeParams.Values())
	return fetchCached(ctx, s.deps, cache.FamilyAnalytics, key, s.ttl,
		func(ctx context.Context) ([]model.ContentEngagementPoint, error) {
			return s.api.ContentEngagement(ctx, rangeParams)
		})
}

// EventInterest returns per-month event creation and registration
// counts for the given year.
func (s *AnalyticsService) EventInterest(ctx context.Context, year int) ([]model.EventInterestPoint, error) {
	key := cache.FamilyAnalytics + ":event-interest:" + strconv.Itoa(year)
	return fetchCached(ctx, s.deps, cache.FamilyAnalytics, key, s.ttl,
		func(ctx context.Context) ([]model.EventInterestPoint, error) {
			return s.api.EventInterest(ctx, year)
		})
}

// TopInterests returns the most-used interests. A limit of 0 uses the
// backend default.
func (s *AnalyticsService) TopInterests(ctx context.Context, limit int) ([]model.TopInterest, error) {
	key := cache.Key(cache.FamilyAnalytics+":top-interests", limitValues(limit))
	return fetchCached(ctx, s.deps, cache.FamilyAnalytics, key, s.ttl,
		func(ctx context.Context) ([]model.TopInterest, error) {
			return s.api.TopInterests(ctx, limit)
		})
}

// UserRetention returns weekly cohort retention figures over the range.
func (s *AnalyticsService) UserRetention(ctx context.Context, rangeParams api.DateRangeParams) ([]model.UserRetentionPoint, error) {
	key := cache.Key(cache.FamilyAnalytics+":user-retention", rangeParams.Values())
	return fetchCached(ctx, s.deps, cache.FamilyAnalytics, key, s.ttl,
		func(ctx context.Context) ([]model.UserRetentionPoint, error) {
			return s.api.UserRetention(ctx, rangeParams)
		})
}

// SpeakerAnalytics returns engagement figures for speaker accounts.
func (s *AnalyticsService) SpeakerAnalytics(ctx context.Context, limit int) ([]model.SpeakerAnalytics, error) {
	key := cache.Key(cache.FamilyAnalytics+":speakers", limitValues(limit))
	return fetchCached(ctx, s.deps, cache.FamilyAnalytics, key, s.ttl,
		func(ctx context.Context) ([]model.SpeakerAnalytics, error) {
			return s.api.SpeakerAnalytics(ctx, limit)
		})
}

func limitValues(limit int) url.Values {
	v := make(url.Values)
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	return v
}
