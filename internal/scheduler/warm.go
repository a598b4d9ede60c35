// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/olegiv/veracity-admin/internal/api"
	"github.com/olegiv/veracity-admin/internal/service"
)

// warmTopInterests is how many interests the warm job pre-fetches,
// matching the analytics page default.
const warmTopInterests = 5

// TokenSource supplies a backend session token for background work.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// AnalyticsWarmJob re-populates the analytics cache so the first
// analytics page view after a TTL expiry does not pay for the full
// round of backend queries.
type AnalyticsWarmJob struct {
	analytics *service.AnalyticsService
	tokens    TokenSource
	logger    *slog.Logger
}

// NewAnalyticsWarmJob creates the analytics cache warm job.
func NewAnalyticsWarmJob(analytics *service.AnalyticsService, tokens TokenSource, logger *slog.Logger) *AnalyticsWarmJob {
	return &AnalyticsWarmJob{
		analytics: analytics,
		tokens:    tokens,
		logger:    logger,
	}
}

// Name identifies the job in logs.
func (j *AnalyticsWarmJob) Name() string { return "analytics-warm" }

// Run refreshes the overview, the default-range charts and the top
// interests list. It is a no-op until an admin has signed in, since
// backend queries need a session token.
func (j *AnalyticsWarmJob) Run(ctx context.Context) error {
	token, ok := j.tokens.Token(ctx)
	if !ok {
		j.logger.Debug("analytics warm skipped: no session token yet")
		return nil
	}
	ctx = api.WithSession(ctx, token)

	rangeParams := service.ResolveRange(service.RangeMonth, time.Now())

	var errs []error
	if _, err := j.analytics.Overview(ctx); err != nil {
		errs = append(errs, err)
	}
	if _, err := j.analytics.UserGrowth(ctx, rangeParams); err != nil {
		errs = append(errs, err)
	}
	if _, err := j.analytics.ContentEngagement(ctx, rangeParams); err != nil {
		errs = append(errs, err)
	}
	if _, err := j.analytics.TopInterests(ctx, warmTopInterests); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
