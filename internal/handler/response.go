// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/olegiv/veracity-admin/internal/api"
	"github.com/olegiv/veracity-admin/internal/render"
)

// flashAndRedirect sets a flash message and redirects to the given URL.
// Uses http.StatusSeeOther (303) for POST redirects.
func flashAndRedirect(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, url, message, messageType string) {
	renderer.SetFlash(r, message, messageType)
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// flashError sets an error flash message and redirects to the given URL.
func flashError(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, url, message string) {
	flashAndRedirect(w, r, renderer, url, message, "error")
}

// flashSuccess sets a success flash message and redirects to the given URL.
func flashSuccess(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, url, message string) {
	flashAndRedirect(w, r, renderer, url, message, "success")
}

// parseFormOrRedirect parses the request form and redirects with an error message on failure.
// Returns true if parsing succeeded, false if it failed (and redirect was performed).
func parseFormOrRedirect(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, redirectURL string) bool {
	if err := r.ParseForm(); err != nil {
		flashError(w, r, renderer, redirectURL, "Invalid form data")
		return false
	}
	return true
}

// logAndHTTPError logs an error and writes an HTTP error response.
func logAndHTTPError(w http.ResponseWriter, message string, statusCode int, logMsg string, args ...any) {
	slog.Error(logMsg, args...)
	http.Error(w, message, statusCode)
}

// logAndInternalError logs an error and writes a 500 Internal Server Error response.
func logAndInternalError(w http.ResponseWriter, logMsg string, args ...any) {
	logAndHTTPError(w, "Internal Server Error", http.StatusInternalServerError, logMsg, args...)
}

// backendErrorRedirect handles an error from a backend-backed mutation:
// rejected sessions send the admin back to the login page, structured
// backend errors surface their message, anything else gets a generic
// flash. The caller's log message names the failed operation.
func backendErrorRedirect(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, redirectURL, logMsg string, err error) {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		if apiErr.IsUnauthorized() {
			http.Redirect(w, r, redirectLogin, http.StatusSeeOther)
			return
		}
		slog.Warn(logMsg, "error", err, "status", apiErr.StatusCode)
		flashError(w, r, renderer, redirectURL, apiErr.Error())
		return
	}
	slog.Error(logMsg, "error", err)
	flashError(w, r, renderer, redirectURL, "The operation failed. Please try again.")
}

// isNotFound reports whether the error is a backend 404.
func isNotFound(err error) bool {
	var apiErr *api.Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// localRedirectTarget validates a form-supplied return path. Only
// same-site absolute paths are accepted; anything else falls back.
func localRedirectTarget(raw, fallback string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return fallback
	}
	return raw
}
