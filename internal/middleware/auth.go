// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for authentication,
// authorization, and request context handling.
package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/alexedwards/scs/v2"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/olegiv/veracity-admin/internal/api"
	"github.com/olegiv/veracity-admin/internal/logging"
	"github.com/olegiv/veracity-admin/internal/model"
	"github.com/olegiv/veracity-admin/internal/service"
	"github.com/olegiv/veracity-admin/internal/session"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// ContextKeyAdmin is the context key for the signed-in admin.
const ContextKeyAdmin ContextKey = "admin"

// BackendSession creates middleware that forwards the stored backend
// session token into the request context, so every API call made while
// handling the request authenticates as the signed-in admin. It also
// propagates chi's request ID to the logger.
func BackendSession(sm *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if reqID := chimw.GetReqID(ctx); reqID != "" {
				ctx = logging.WithRequestID(ctx, reqID)
			}
			if token := sm.GetString(ctx, session.KeyBackendToken); token != "" {
				ctx = api.WithSession(ctx, token)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Protected creates middleware that requires a signed-in admin.
// The admin's identity is settled before the page handler runs; a
// session the backend no longer accepts is destroyed and the request
// redirected to login.
func Protected(sm *scs.SessionManager, auth *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if api.SessionFromContext(ctx) == "" {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			admin, err := auth.CurrentAdmin(ctx)
			if err != nil {
				var apiErr *api.Error
				if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
					_ = sm.Destroy(ctx)
				}
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			ctx = context.WithValue(ctx, ContextKeyAdmin, admin)
			ctx = logging.WithAdminEmail(ctx, admin.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PublicOnly creates middleware for pages like login that a signed-in
// admin should not see. A valid session redirects to the dashboard.
func PublicOnly(auth *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if api.SessionFromContext(ctx) != "" {
				if _, err := auth.CurrentAdmin(ctx); err == nil {
					http.Redirect(w, r, "/", http.StatusSeeOther)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// OwnerOnly creates middleware that restricts a route to the owner.
// A signed-in moderator is sent back to the dashboard rather than
// shown an error page. Must run after Protected.
func OwnerOnly() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			admin := GetAdmin(r)
			if admin == nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			if !admin.IsOwner() {
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetAdmin retrieves the signed-in admin from the request context.
// Returns nil if no admin is in context.
func GetAdmin(r *http.Request) *model.AdminInfo {
	admin, ok := r.Context().Value(ContextKeyAdmin).(*model.AdminInfo)
	if !ok {
		return nil
	}
	return admin
}
