// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"html/template"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"
)

func testTemplatesFS() fstest.MapFS {
	return fstest.MapFS{
		"layouts/base.html": &fstest.MapFile{
			Data: []byte(`{{define "base"}}<html><body>{{block "content" .}}{{end}}</body></html>{{end}}`),
		},
		"layouts/console.html": &fstest.MapFile{
			Data: []byte(`{{define "nav"}}<nav>{{.Active}}</nav>{{end}}`),
		},
		"partials/flash.html": &fstest.MapFile{
			Data: []byte(`{{define "flash"}}{{if .Flash}}<div class="flash-{{.FlashKind}}">{{.Flash}}</div>{{end}}{{end}}`),
		},
		"console/dashboard.html": &fstest.MapFile{
			Data: []byte(`{{define "content"}}{{template "nav" .}}{{template "flash" .}}<h1>{{.Title}}</h1>{{end}}`),
		},
		"auth/login.html": &fstest.MapFile{
			Data: []byte(`{{define "content"}}{{template "flash" .}}<form>login</form>{{end}}`),
		},
	}
}

func TestNew_ParsesConsoleAndAuthTemplates(t *testing.T) {
	r, err := New(Config{TemplatesFS: testTemplatesFS()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for _, name := range []string{"console/dashboard", "auth/login"} {
		if _, ok := r.templates[name]; !ok {
			t.Errorf("template %s not parsed", name)
		}
	}
}

func TestRender_WritesHTML(t *testing.T) {
	r, err := New(Config{TemplatesFS: testTemplatesFS()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)

	err = r.Render(w, req, "console/dashboard", TemplateData{Title: "Dashboard", Active: "dashboard"})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, "<h1>Dashboard</h1>") {
		t.Errorf("body missing title: %q", body)
	}
	if !strings.Contains(body, "<nav>dashboard</nav>") {
		t.Errorf("body missing nav: %q", body)
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	r, err := New(Config{TemplatesFS: testTemplatesFS()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)

	if err := r.Render(w, req, "console/missing", TemplateData{}); err == nil {
		t.Error("Render() expected error for unknown template")
	}
}

func TestTemplateFuncs_UikitFuncsPresent(t *testing.T) {
	funcs := (&Renderer{}).TemplateFuncs()

	uikitFuncs := []string{
		"lower", "upper", "title", "truncate", "hasPrefix",
		"safeURL", "add", "sub", "pct", "now",
		"formatDate", "formatDateTime", "formatDatePtr", "relTime",
		"toJSON", "formatNumber", "formatFloat", "derefInt", "dict",
	}

	for _, name := range uikitFuncs {
		if _, ok := funcs[name]; !ok {
			t.Errorf("TemplateFuncs missing uikit function: %s", name)
		}
	}
}

func TestTemplateFuncs_ConsoleFuncsPresent(t *testing.T) {
	funcs := (&Renderer{}).TemplateFuncs()

	consoleFuncs := []string{
		"safe", "sanitizeHTML", "mediaURL", "seq",
		"usersListURL", "userTabURL",
	}

	for _, name := range consoleFuncs {
		if _, ok := funcs[name]; !ok {
			t.Errorf("TemplateFuncs missing console function: %s", name)
		}
	}
}

func TestTemplateFuncs_SanitizeHTML(t *testing.T) {
	funcs := (&Renderer{}).TemplateFuncs()
	sanitize := funcs["sanitizeHTML"].(func(string) template.HTML)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text", "hello world", "hello world"},
		{"script stripped", `hello <script>alert(1)</script>world`, "hello world"},
		{"formatting kept", "<p>a <strong>b</strong></p>", "<p>a <strong>b</strong></p>"},
		{"event handler stripped", `<a href="/x" onclick="evil()">x</a>`, `<a href="/x" rel="nofollow">x</a>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(sanitize(tt.input)); got != tt.expected {
				t.Errorf("sanitizeHTML(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTemplateFuncs_UsersListURL(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		search   string
		page     int
		expected string
	}{
		{"no params", "", "", 1, "/users"},
		{"status only", "pending", "", 1, "/users?status=pending"},
		{"search only", "", "alice", 1, "/users?search=alice"},
		{"page 2", "", "", 2, "/users?page=2"},
		{"all params", "active", "bob", 3, "/users?page=3&search=bob&status=active"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := usersListURL(tt.status, tt.search, tt.page)
			if got != tt.expected {
				t.Errorf("usersListURL(%q, %q, %d) = %q, want %q",
					tt.status, tt.search, tt.page, got, tt.expected)
			}
		})
	}
}

func TestTemplateFuncs_UserTabURL(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		tab      string
		page     int
		expected string
	}{
		{"profile default", "u1", "profile", 1, "/users/u1"},
		{"empty tab", "u1", "", 1, "/users/u1"},
		{"posts tab", "u1", "posts", 1, "/users/u1?tab=posts"},
		{"events page 2", "u1", "events", 2, "/users/u1?page=2&tab=events"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := userTabURL(tt.userID, tt.tab, tt.page)
			if got != tt.expected {
				t.Errorf("userTabURL(%q, %q, %d) = %q, want %q",
					tt.userID, tt.tab, tt.page, got, tt.expected)
			}
		})
	}
}

func TestTemplateFuncs_FormatDate(t *testing.T) {
	funcs := (&Renderer{}).TemplateFuncs()

	formatDate := funcs["formatDate"].(func(time.Time) string)
	testTime := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	if got := formatDate(testTime); got != "Mar 15, 2025" {
		t.Errorf("formatDate() = %q, want %q", got, "Mar 15, 2025")
	}
}

func TestAddTemplateFuncs_Override(t *testing.T) {
	r := &Renderer{}
	r.AddTemplateFuncs(template.FuncMap{
		"mediaURL": func(ref string) string { return "cdn:" + ref },
	})

	funcs := r.TemplateFuncs()
	mediaURL := funcs["mediaURL"].(func(string) string)
	if got := mediaURL("a.png"); got != "cdn:a.png" {
		t.Errorf("mediaURL() = %q, want %q", got, "cdn:a.png")
	}
}
