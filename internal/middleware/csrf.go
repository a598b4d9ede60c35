// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"log/slog"
	"net/http"

	"filippo.io/csrf/gorilla"
)

// CSRFConfig configures forgery protection for the console's form
// endpoints. filippo.io/csrf/gorilla validates requests with Fetch
// metadata headers rather than a token cookie, so the only knobs are
// the signing key, the failure handler, and trusted origins.
type CSRFConfig struct {
	// AuthKey is a 32-byte key that signs CSRF tokens. The console
	// reuses the session secret.
	AuthKey []byte

	// ErrorHandler runs when validation fails. Defaults to a logged 403.
	ErrorHandler http.Handler

	// TrustedOrigins lists host:port values allowed to submit forms
	// cross-origin.
	TrustedOrigins []string
}

// DefaultCSRFConfig returns the console's CSRF configuration. addr is
// the host:port the server listens on; in development it is added to
// the trusted origins because Sec-Fetch-Site is unreliable over plain
// HTTP. The library expects host-only values, not full URLs.
func DefaultCSRFConfig(authKey []byte, addr string, isDev bool) CSRFConfig {
	cfg := CSRFConfig{
		AuthKey: authKey,
	}

	if isDev && addr != "" {
		cfg.TrustedOrigins = []string{addr}
	}

	return cfg
}

// CSRF returns a middleware that rejects forged form submissions.
func CSRF(cfg CSRFConfig) func(http.Handler) http.Handler {
	var opts []csrf.Option

	if cfg.ErrorHandler != nil {
		opts = append(opts, csrf.ErrorHandler(cfg.ErrorHandler))
	} else {
		opts = append(opts, csrf.ErrorHandler(http.HandlerFunc(csrfErrorHandler)))
	}

	if len(cfg.TrustedOrigins) > 0 {
		opts = append(opts, csrf.TrustedOrigins(cfg.TrustedOrigins))
	}

	return csrf.Protect(cfg.AuthKey, opts...)
}

// csrfErrorHandler logs the rejection with enough request context to
// distinguish a misconfigured origin from a real forgery attempt.
func csrfErrorHandler(w http.ResponseWriter, r *http.Request) {
	reason := "unknown"
	if err := csrf.FailureReason(r); err != nil {
		reason = err.Error()
	}
	slog.Warn("rejected form submission failing CSRF checks",
		"reason", reason,
		"method", r.Method,
		"path", r.URL.Path,
		"origin", r.Header.Get("Origin"),
		"sec_fetch_site", r.Header.Get("Sec-Fetch-Site"),
	)
	http.Error(w, "Forbidden - CSRF validation failed", http.StatusForbidden)
}
