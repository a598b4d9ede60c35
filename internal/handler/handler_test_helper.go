package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"testing/fstest"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/olegiv/veracity-admin/internal/api"
	"github.com/olegiv/veracity-admin/internal/cache"
	"github.com/olegiv/veracity-admin/internal/middleware"
	"github.com/olegiv/veracity-admin/internal/render"
	"github.com/olegiv/veracity-admin/internal/service"
	"github.com/olegiv/veracity-admin/internal/session"
)

// testBackend is a fake Veracity backend that counts requests per route.
type testBackend struct {
	t      *testing.T
	mux    *http.ServeMux
	server *httptest.Server
	hits   map[string]*atomic.Int64
}

func newTestBackend(t *testing.T) *testBackend {
	t.Helper()
	b := &testBackend{
		t:    t,
		mux:  http.NewServeMux(),
		hits: make(map[string]*atomic.Int64),
	}
	b.server = httptest.NewServer(b.mux)
	t.Cleanup(b.server.Close)
	return b
}

// respond registers a JSON response for method+path and tracks hits.
func (b *testBackend) respond(method, path, body string) {
	counter := &atomic.Int64{}
	b.hits[method+" "+path] = counter
	b.mux.HandleFunc(method+" "+path, func(w http.ResponseWriter, r *http.Request) {
		counter.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	})
}

// handle registers a custom handler for method+path and tracks hits.
func (b *testBackend) handle(method, path string, fn http.HandlerFunc) {
	counter := &atomic.Int64{}
	b.hits[method+" "+path] = counter
	b.mux.HandleFunc(method+" "+path, func(w http.ResponseWriter, r *http.Request) {
		counter.Add(1)
		fn(w, r)
	})
}

func (b *testBackend) hitCount(method, path string) int64 {
	counter, ok := b.hits[method+" "+path]
	if !ok {
		b.t.Fatalf("no handler registered for %s %s", method, path)
	}
	return counter.Load()
}

// testTemplates returns minimal templates that emit assertable markers.
func testTemplates() fstest.MapFS {
	page := func(body string) *fstest.MapFile {
		return &fstest.MapFile{Data: []byte(`{{define "content"}}{{template "flash" .}}` + body + `{{end}}`)}
	}
	return fstest.MapFS{
		"layouts/base.html": &fstest.MapFile{
			Data: []byte(`{{define "base"}}{{block "content" .}}{{end}}{{end}}`),
		},
		"layouts/console.html": &fstest.MapFile{
			Data: []byte(`{{define "nav"}}{{end}}`),
		},
		"partials/flash.html": &fstest.MapFile{
			Data: []byte(`{{define "flash"}}{{if .Flash}}[flash:{{.FlashKind}}:{{.Flash}}]{{end}}{{end}}`),
		},
		"auth/login.html": page(`login-page`),
		"console/dashboard.html": page(
			`dashboard total={{.Data.TotalUsers}} pending={{.Data.PendingUsers}} preview={{len .Data.PendingPreview}}`),
		"console/users.html": page(
			`users total={{.Data.Total}} count={{len .Data.Users}} status={{.Data.Status}} search={{.Data.Search}} range={{.Data.Pagination.PageRange}}`),
		"console/user_detail.html": page(
			`user {{.Data.User.Email}} tab={{.Data.Tab}} posts={{len .Data.Posts}} activity={{len .Data.Activity}} events={{len .Data.Events}}`),
		"console/moderators.html": page(
			`moderators total={{.Data.Total}} count={{len .Data.Moderators}}`),
		"console/interests.html": page(
			`interests total={{.Data.Total}} count={{len .Data.Interests}}`),
		"console/analytics.html": page(
			`analytics range={{.Data.Range}} users={{.Data.Overview.TotalUsers}} growth={{len .Data.UserGrowth}} year={{.Data.Year}}`),
	}
}

// testApp wires handlers, services and a fake backend behind a real
// session-managed router the way main does, minus the auth guards.
type testApp struct {
	t       *testing.T
	backend *testBackend
	server  *httptest.Server
	client  *http.Client
	sm      *scs.SessionManager
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	backend := newTestBackend(t)
	apiClient := api.NewClient(api.Config{
		BaseURL:       backend.server.URL,
		SessionCookie: "session",
	})

	c := cache.NewMemoryCache(cache.MemoryConfig{
		DefaultTTL:      time.Minute,
		CleanupInterval: time.Hour,
	})
	t.Cleanup(func() { _ = c.Close() })
	deps := service.Deps{
		Cache: c,
		Gens:  cache.NewGenerations(),
		TTL:   time.Minute,
		Log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	sm := scs.New()
	sm.Lifetime = 24 * time.Hour

	renderer, err := render.New(render.Config{
		TemplatesFS:    testTemplates(),
		SessionManager: sm,
	})
	if err != nil {
		t.Fatalf("failed to build test renderer: %v", err)
	}

	authSvc := service.NewAuthService(apiClient, deps)
	directory := service.NewDirectoryService(apiClient, deps)
	content := service.NewContentService(apiClient, deps)
	events := service.NewEventService(apiClient, deps)
	moderators := service.NewModeratorService(apiClient, deps)
	interests := service.NewInterestService(apiClient, deps)
	analytics := service.NewAnalyticsService(apiClient, deps)
	dashboard := service.NewDashboardService(directory)

	authHandler := NewAuthHandler(authSvc, renderer, sm, middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig()))
	dashboardHandler := NewDashboardHandler(dashboard, renderer)
	usersHandler := NewUsersHandler(directory, content, events, renderer)
	moderatorsHandler := NewModeratorsHandler(moderators, renderer)
	interestsHandler := NewInterestsHandler(interests, renderer)
	analyticsHandler := NewAnalyticsHandler(analytics, renderer)

	r := chi.NewRouter()
	r.Use(sm.LoadAndSave)
	r.Use(middleware.BackendSession(sm))

	// Seeds a backend token the way a completed login would.
	r.Get("/test-login", func(w http.ResponseWriter, req *http.Request) {
		sm.Put(req.Context(), session.KeyBackendToken, "test-token")
		w.WriteHeader(http.StatusNoContent)
	})

	r.Get(RouteLogin, authHandler.LoginForm)
	r.Post(RouteLogin, authHandler.Login)
	r.Post(RouteLogout, authHandler.Logout)

	r.Get(RouteRoot, dashboardHandler.Home)
	r.Get(RouteUsers, usersHandler.List)
	r.Get(RouteUsersID, usersHandler.Detail)
	r.Post(RouteUsersIDStatus, usersHandler.UpdateStatus)
	r.Post(RouteUsersIDRole, usersHandler.UpdateRole)
	r.Get(RouteModerators, moderatorsHandler.List)
	r.Post(RouteModerators, moderatorsHandler.Create)
	r.Post(RouteModeratorsDelete, moderatorsHandler.Delete)
	r.Get(RouteInterests, interestsHandler.List)
	r.Post(RouteInterests, interestsHandler.Create)
	r.Post(RouteInterestsID, interestsHandler.Update)
	r.Post(RouteInterestsIDDelete, interestsHandler.Delete)
	r.Get(RouteAnalytics, analyticsHandler.Page)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("failed to build cookie jar: %v", err)
	}
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &testApp{t: t, backend: backend, server: server, client: client, sm: sm}
}

// signIn seeds the console session with a backend token.
func (a *testApp) signIn() {
	a.t.Helper()
	resp, err := a.client.Get(a.server.URL + "/test-login")
	if err != nil {
		a.t.Fatalf("test login failed: %v", err)
	}
	_ = resp.Body.Close()
}

// get issues a GET and returns the response with its body read.
func (a *testApp) get(path string) (*http.Response, string) {
	a.t.Helper()
	resp, err := a.client.Get(a.server.URL + path)
	if err != nil {
		a.t.Fatalf("GET %s failed: %v", path, err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, string(body)
}

// postForm issues a form POST and returns the response.
func (a *testApp) postForm(path string, form url.Values) *http.Response {
	a.t.Helper()
	resp, err := a.client.PostForm(a.server.URL+path, form)
	if err != nil {
		a.t.Fatalf("POST %s failed: %v", path, err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return resp
}

// followRedirect asserts a 303 and fetches the Location, returning its body.
func (a *testApp) followRedirect(resp *http.Response, wantLocation string) string {
	a.t.Helper()
	if resp.StatusCode != http.StatusSeeOther {
		a.t.Fatalf("status = %d; want %d", resp.StatusCode, http.StatusSeeOther)
	}
	location := resp.Header.Get("Location")
	if location != wantLocation {
		a.t.Fatalf("redirect location = %q; want %q", location, wantLocation)
	}
	_, body := a.get(location)
	return body
}

// assertContains fails unless body contains the marker.
func assertContains(t *testing.T, body, marker string) {
	t.Helper()
	if !strings.Contains(body, marker) {
		t.Errorf("body missing %q:\n%s", marker, body)
	}
}

// assertStatus checks if the response status code matches the expected value.
func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("status = %d; want %d", got, want)
	}
}
