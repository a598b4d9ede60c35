// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strconv"
	"testing"
	"time"
)

const overviewJSON = `{"totalUsers":120,"activeUsers":90,"pendingUsers":12,
	"totalConnections":340,"totalPosts":75,"totalEvents":9,"totalSpeakers":4}`

func registerAnalytics(app *testApp) {
	app.backend.respond("GET", "/admin/analytics/overview", overviewJSON)
	app.backend.respond("GET", "/admin/analytics/user-growth",
		`[{"date":"2026-08-01","userCount":100},{"date":"2026-08-02","userCount":104}]`)
	app.backend.respond("GET", "/admin/analytics/connection-activity", `[]`)
	app.backend.respond("GET", "/admin/analytics/content-engagement", `[]`)
	app.backend.respond("GET", "/admin/analytics/event-interest", `[]`)
	app.backend.respond("GET", "/admin/analytics/top-interests", `[]`)
	app.backend.respond("GET", "/admin/analytics/user-retention", `[]`)
	app.backend.respond("GET", "/admin/analytics/speaker-analytics", `[]`)
}

func TestAnalytics_RendersWithDefaultRange(t *testing.T) {
	app := newTestApp(t)
	app.signIn()
	registerAnalytics(app)

	resp, body := app.get(RouteAnalytics)
	assertStatus(t, resp.StatusCode, http.StatusOK)
	assertContains(t, body, "analytics range=30d users=120 growth=2")
}

func TestAnalytics_InvalidRangeFallsBack(t *testing.T) {
	app := newTestApp(t)
	app.signIn()
	registerAnalytics(app)

	resp, body := app.get(RouteAnalytics + "?range=42d")
	assertStatus(t, resp.StatusCode, http.StatusOK)
	assertContains(t, body, "range=30d")
}

func TestAnalytics_RangeSelection(t *testing.T) {
	app := newTestApp(t)
	app.signIn()
	registerAnalytics(app)

	for _, preset := range []string{"7d", "90d", "1y"} {
		resp, body := app.get(RouteAnalytics + "?range=" + preset)
		assertStatus(t, resp.StatusCode, http.StatusOK)
		assertContains(t, body, "range="+preset)
	}
}

func TestAnalytics_YearParamOutOfRangeFallsBack(t *testing.T) {
	app := newTestApp(t)
	app.signIn()
	registerAnalytics(app)

	thisYear := strconv.Itoa(time.Now().Year())

	for _, query := range []string{"?year=1990", "?year=9999", "?year=abc"} {
		resp, body := app.get(RouteAnalytics + query)
		assertStatus(t, resp.StatusCode, http.StatusOK)
		assertContains(t, body, "year="+thisYear)
	}
}

func TestAnalytics_SeriesFailureStillRenders(t *testing.T) {
	app := newTestApp(t)
	app.signIn()
	app.backend.respond("GET", "/admin/analytics/overview", overviewJSON)
	app.backend.respond("GET", "/admin/analytics/user-growth", `[]`)
	app.backend.respond("GET", "/admin/analytics/connection-activity", `[]`)
	app.backend.respond("GET", "/admin/analytics/content-engagement", `[]`)
	app.backend.respond("GET", "/admin/analytics/event-interest", `[]`)
	app.backend.respond("GET", "/admin/analytics/top-interests", `[]`)
	app.backend.respond("GET", "/admin/analytics/speaker-analytics", `[]`)
	app.backend.handle("GET", "/admin/analytics/user-retention", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	resp, body := app.get(RouteAnalytics)
	assertStatus(t, resp.StatusCode, http.StatusOK)
	assertContains(t, body, "users=120")
}
