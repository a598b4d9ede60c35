// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"net/url"
	"testing"
)

const interestsPageJSON = `{
	"interests": [
		{"id":"i1","name":"Go"},
		{"id":"i2","name":"Distributed Systems"}
	],
	"total": 45
}`

func TestInterestsList_Renders(t *testing.T) {
	app := newTestApp(t)
	app.signIn()
	app.backend.respond("GET", "/admin/interests", interestsPageJSON)

	resp, body := app.get(RouteInterests)
	assertStatus(t, resp.StatusCode, http.StatusOK)
	assertContains(t, body, "interests total=45 count=2")
}

func TestInterestCreate_Success(t *testing.T) {
	app := newTestApp(t)
	app.signIn()
	app.backend.respond("POST", "/admin/interests", `{"id":"i3","name":"Databases"}`)
	app.backend.respond("GET", "/admin/interests", interestsPageJSON)

	resp := app.postForm(RouteInterests, url.Values{"name": {"Databases"}})
	body := app.followRedirect(resp, redirectInterests)
	assertContains(t, body, `[flash:success:Interest "Databases" created]`)
}

func TestInterestCreate_EmptyNameRejected(t *testing.T) {
	app := newTestApp(t)
	app.signIn()
	app.backend.respond("POST", "/admin/interests", `{}`)
	app.backend.respond("GET", "/admin/interests", interestsPageJSON)

	resp := app.postForm(RouteInterests, url.Values{"name": {"   "}})
	body := app.followRedirect(resp, redirectInterests)
	assertContains(t, body, "[flash:error:")

	if got := app.backend.hitCount("POST", "/admin/interests"); got != 0 {
		t.Errorf("create backend hits = %d; want 0", got)
	}
}

func TestInterestRename_Success(t *testing.T) {
	app := newTestApp(t)
	app.signIn()
	app.backend.respond("PATCH", "/admin/interests/i1", `{}`)
	app.backend.respond("GET", "/admin/interests", interestsPageJSON)

	resp := app.postForm(RouteInterests+"/i1", url.Values{"name": {"Golang"}})
	body := app.followRedirect(resp, redirectInterests)
	assertContains(t, body, "[flash:success:Interest renamed]")
}

func TestInterestDelete_Success(t *testing.T) {
	app := newTestApp(t)
	app.signIn()
	app.backend.respond("DELETE", "/admin/interests/i2", `{}`)
	app.backend.respond("GET", "/admin/interests", interestsPageJSON)

	resp := app.postForm(RouteInterests+"/i2/delete", nil)
	body := app.followRedirect(resp, redirectInterests)
	assertContains(t, body, "[flash:success:Interest deleted]")

	if got := app.backend.hitCount("DELETE", "/admin/interests/i2"); got != 1 {
		t.Errorf("delete backend hits = %d; want 1", got)
	}
}
