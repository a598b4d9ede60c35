// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/olegiv/veracity-admin/internal/middleware"
	"github.com/olegiv/veracity-admin/internal/model"
	"github.com/olegiv/veracity-admin/internal/render"
	"github.com/olegiv/veracity-admin/internal/service"
	"github.com/olegiv/veracity-admin/internal/uikit"
)

// rankingSize is how many rows the top-interests and top-speakers
// rankings show.
const rankingSize = 5

// AnalyticsHandler handles the analytics dashboard.
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
	renderer  *render.Renderer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analytics *service.AnalyticsService, renderer *render.Renderer) *AnalyticsHandler {
	return &AnalyticsHandler{
		analytics: analytics,
		renderer:  renderer,
	}
}

// AnalyticsData holds every series for the analytics template. The
// backend buckets all series; templates chart them as delivered.
type AnalyticsData struct {
	Range              string
	Ranges             []string
	Year               int
	Overview           *model.AnalyticsOverview
	UserGrowth         []model.UserGrowthPoint
	ConnectionActivity []model.ConnectionActivityPoint
	ContentEngagement  []model.ContentEngagementPoint
	EventInterest      []model.EventInterestPoint
	TopInterests       []model.TopInterest
	UserRetention      []model.UserRetentionPoint
	Speakers           []model.SpeakerAnalytics
}

// Page handles GET /analytics. The range selector picks the date
// window and bucket interval for the date-ranged series; the event
// interest chart keys on a calendar year instead. A failed series logs
// and renders empty rather than failing the whole page; the overview
// counters are the exception.
func (h *AnalyticsHandler) Page(w http.ResponseWriter, r *http.Request) {
	now := time.Now()

	rangePreset := r.URL.Query().Get("range")
	if !service.ValidRangePreset(rangePreset) {
		rangePreset = service.RangeMonth
	}
	rangeParams := service.ResolveRange(rangePreset, now)
	year := uikit.ParseIntParam(r, "year", now.Year(), 2000, now.Year())

	ctx := r.Context()

	overview, err := h.analytics.Overview(ctx)
	if err != nil {
		logAndInternalError(w, "failed to load analytics overview", "error", err)
		return
	}

	data := AnalyticsData{
		Range:    rangePreset,
		Ranges:   []string{service.RangeWeek, service.RangeMonth, service.RangeQuarter, service.RangeYear},
		Year:     year,
		Overview: overview,
	}

	if data.UserGrowth, err = h.analytics.UserGrowth(ctx, rangeParams); err != nil {
		slog.Warn("failed to load user growth series", "error", err)
	}
	if data.ConnectionActivity, err = h.analytics.ConnectionActivity(ctx, rangeParams); err != nil {
		slog.Warn("failed to load connection activity series", "error", err)
	}
	if data.ContentEngagement, err = h.analytics.ContentEngagement(ctx, rangeParams); err != nil {
		slog.Warn("failed to load content engagement series", "error", err)
	}
	if data.EventInterest, err = h.analytics.EventInterest(ctx, year); err != nil {
		slog.Warn("failed to load event interest series", "error", err, "year", year)
	}
	if data.TopInterests, err = h.analytics.TopInterests(ctx, rankingSize); err != nil {
		slog.Warn("failed to load top interests", "error", err)
	}
	if data.UserRetention, err = h.analytics.UserRetention(ctx, rangeParams); err != nil {
		slog.Warn("failed to load user retention series", "error", err)
	}
	if data.Speakers, err = h.analytics.SpeakerAnalytics(ctx, rankingSize); err != nil {
		slog.Warn("failed to load speaker analytics", "error", err)
	}

	if err := h.renderer.Render(w, r, "console/analytics", render.TemplateData{
		Title:  "Analytics",
		Active: "analytics",
		Admin:  middleware.GetAdmin(r),
		Data:   data,
	}); err != nil {
		logAndInternalError(w, "failed to render analytics", "error", err)
	}
}
