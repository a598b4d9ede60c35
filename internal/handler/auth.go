// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/veracity-admin/internal/middleware"
	"github.com/olegiv/veracity-admin/internal/render"
	"github.com/olegiv/veracity-admin/internal/service"
	"github.com/olegiv/veracity-admin/internal/session"
)

// AuthHandler handles authentication routes.
type AuthHandler struct {
	auth            *service.AuthService
	renderer        *render.Renderer
	sessionManager  *scs.SessionManager
	loginProtection *middleware.LoginProtection
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, renderer *render.Renderer, sm *scs.SessionManager, lp *middleware.LoginProtection) *AuthHandler {
	return &AuthHandler{
		auth:            auth,
		renderer:        renderer,
		sessionManager:  sm,
		loginProtection: lp,
	}
}

// LoginForm renders the login page. Signed-in admins never reach it:
// the PublicOnly guard redirects them to the dashboard.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if err := h.renderer.Render(w, r, "auth/login", render.TemplateData{
		Title: "Sign in",
	}); err != nil {
		logAndInternalError(w, "failed to render login page", "error", err)
	}
}

// Login handles the login form submission.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectLogin) {
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if email == "" || password == "" {
		flashError(w, r, h.renderer, redirectLogin, "Email and password are required")
		return
	}

	if h.loginProtection != nil {
		if locked, remaining := h.loginProtection.IsAccountLocked(email); locked {
			slog.Warn("login attempt on locked account", "email", email)
			flashError(w, r, h.renderer, redirectLogin,
				"Account temporarily locked. Try again in "+formatDuration(remaining)+".")
			return
		}
	}

	token, err := h.auth.Login(r.Context(), email, password)
	if err != nil {
		slog.Debug("login failed", "email", email, "error", err)
		if h.loginProtection != nil {
			if locked, lockDuration := h.loginProtection.RecordFailedAttempt(email); locked {
				flashError(w, r, h.renderer, redirectLogin,
					"Too many failed attempts. Account locked for "+formatDuration(lockDuration)+".")
				return
			}
			remaining := h.loginProtection.GetRemainingAttempts(email)
			if remaining > 0 && remaining <= 3 {
				flashError(w, r, h.renderer, redirectLogin,
					fmt.Sprintf("Invalid email or password. %d attempts remaining.", remaining))
				return
			}
		}
		flashError(w, r, h.renderer, redirectLogin, "Invalid email or password")
		return
	}

	if h.loginProtection != nil {
		h.loginProtection.RecordSuccessfulLogin(email)
	}

	// Regenerate session ID to prevent session fixation
	if err := h.sessionManager.RenewToken(r.Context()); err != nil {
		logAndInternalError(w, "session renewal error", "error", err)
		return
	}

	h.sessionManager.Put(r.Context(), session.KeyBackendToken, token)
	h.sessionManager.Put(r.Context(), session.KeyAdminEmail, email)

	slog.Info("admin signed in", "email", email)
	flashSuccess(w, r, h.renderer, redirectDashboard, "Welcome back")
}

// Logout ends the backend session and destroys the local one.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	email := h.sessionManager.GetString(r.Context(), session.KeyAdminEmail)

	if err := h.auth.Logout(r.Context()); err != nil {
		// The local session is destroyed regardless; the backend
		// token expires on its own.
		slog.Warn("backend logout failed", "error", err, "email", email)
	}

	if err := h.sessionManager.Destroy(r.Context()); err != nil {
		slog.Error("session destroy error", "error", err)
	}

	slog.Info("admin signed out", "email", email)
	flashAndRedirect(w, r, h.renderer, redirectLogin, "You have been signed out", "info")
}

// formatDuration formats a duration into a human-readable string.
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%d seconds", int(d.Seconds()))
	}
	if d < time.Hour {
		mins := int(d.Minutes())
		if mins == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", mins)
	}
	hours := int(d.Hours())
	if hours == 1 {
		return "1 hour"
	}
	return fmt.Sprintf("%d hours", hours)
}
