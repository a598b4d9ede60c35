// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected in production.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	// APIBaseURL is the Veracity backend API root.
	APIBaseURL string `env:"VERACITY_API_BASE_URL,required"`
	// APISessionCookie is the name of the backend's session cookie.
	APISessionCookie string `env:"VERACITY_API_SESSION_COOKIE" envDefault:"veracity_session"`
	// APITimeout bounds backend requests, in seconds.
	APITimeout int `env:"VERACITY_API_TIMEOUT" envDefault:"15"`

	// StorageBaseURL resolves relative media paths returned by the backend.
	StorageBaseURL string `env:"VERACITY_STORAGE_BASE_URL"`

	SessionSecret string `env:"VERACITY_SESSION_SECRET,required"`
	SessionDBPath string `env:"VERACITY_SESSION_DB_PATH" envDefault:"./data/sessions.db"`

	ServerHost string `env:"VERACITY_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"VERACITY_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"VERACITY_ENV" envDefault:"development"`
	LogLevel   string `env:"VERACITY_LOG_LEVEL" envDefault:"info"`

	// Cache configuration
	RedisURL      string `env:"VERACITY_REDIS_URL"`                               // Optional Redis URL for distributed caching
	CachePrefix   string `env:"VERACITY_CACHE_PREFIX" envDefault:"veracity:"`     // Redis key prefix
	CacheTTL      int    `env:"VERACITY_CACHE_TTL" envDefault:"300"`              // Default cache TTL in seconds
	CacheMaxSize  int    `env:"VERACITY_CACHE_MAX_SIZE" envDefault:"10000"`       // Max memory cache entries
	WarmCacheCron string `env:"VERACITY_WARM_CACHE_CRON" envDefault:"@every 10m"` // Analytics warm-up schedule, empty disables
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// MinSessionSecretLength is the minimum required length for the session secret.
// AES-256 requires 32 bytes minimum for secure encryption.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := validateBaseURL("VERACITY_API_BASE_URL", cfg.APIBaseURL); err != nil {
		return nil, err
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")

	if cfg.StorageBaseURL != "" {
		if err := validateBaseURL("VERACITY_STORAGE_BASE_URL", cfg.StorageBaseURL); err != nil {
			return nil, err
		}
		cfg.StorageBaseURL = strings.TrimRight(cfg.StorageBaseURL, "/")
	}

	// Validate session secret length
	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("VERACITY_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	// Reject known weak/default secrets
	for _, weak := range knownWeakSecrets {
		if cfg.SessionSecret == weak {
			return nil, fmt.Errorf("VERACITY_SESSION_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	// Warn about low-entropy secrets
	if !hasMinimumEntropy(cfg.SessionSecret) {
		slog.Warn("VERACITY_SESSION_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	return cfg, nil
}

// validateBaseURL requires an absolute http(s) URL.
func validateBaseURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", name, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an absolute http(s) URL, got %q", name, raw)
	}
	return nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
