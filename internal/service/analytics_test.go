// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"testing"
	"time"

	"github.com/olegiv/veracity-admin/internal/model"
)

func TestResolveRange(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		preset       string
		wantStart    string
		wantInterval string
	}{
		{RangeWeek, "2026-03-08", model.IntervalDay},
		{RangeMonth, "2026-02-13", model.IntervalDay},
		{RangeQuarter, "2025-12-15", model.IntervalWeek},
		{RangeYear, "2025-03-15", model.IntervalMonth},
		// Unknown presets fall back to the 30-day range.
		{"bogus", "2026-02-13", model.IntervalDay},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			got := ResolveRange(tt.preset, now)
			if got.StartDate != tt.wantStart {
				t.Errorf("StartDate = %q, want %q", got.StartDate, tt.wantStart)
			}
			if got.EndDate != "2026-03-15" {
				t.Errorf("EndDate = %q, want %q", got.EndDate, "2026-03-15")
			}
			if got.Interval != tt.wantInterval {
				t.Errorf("Interval = %q, want %q", got.Interval, tt.wantInterval)
			}
		})
	}
}

func TestValidRangePreset(t *testing.T) {
	for _, preset := range []string{RangeWeek, RangeMonth, RangeQuarter, RangeYear} {
		if !ValidRangePreset(preset) {
			t.Errorf("ValidRangePreset(%q) = false", preset)
		}
	}
	if ValidRangePreset("14d") {
		t.Error(`ValidRangePreset("14d") = true`)
	}
}

func TestAnalyticsOverviewCached(t *testing.T) {
	backend := newTestBackend(t)
	backend.respond("GET", "/admin/analytics/overview", `{"totalUsers":100,"activeUsers":80}`)

	svc := NewAnalyticsService(backend.client(), testDeps(t))
	ctx := testCtx()

	for i := 0; i < 2; i++ {
		overview, err := svc.Overview(ctx)
		if err != nil {
			t.Fatalf("Overview: %v", err)
		}
		if overview.TotalUsers != 100 {
			t.Errorf("TotalUsers = %d, want 100", overview.TotalUsers)
		}
	}

	if got := backend.hitCount("GET", "/admin/analytics/overview"); got != 1 {
		t.Errorf("backend hit %d times, want 1", got)
	}
}
