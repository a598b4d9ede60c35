// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"os"
	"testing"
)

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set %s: %v", key, err)
	}
}

func setRequired(t *testing.T) {
	t.Helper()
	setEnv(t, "VERACITY_SESSION_SECRET", "test-secret-key-32-bytes-long!!!")
	setEnv(t, "VERACITY_API_BASE_URL", "https://api.veracity.example")
}

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.APISessionCookie != "veracity_session" {
		t.Errorf("APISessionCookie = %q, want %q", cfg.APISessionCookie, "veracity_session")
	}
	if cfg.APITimeout != 15 {
		t.Errorf("APITimeout = %d, want 15", cfg.APITimeout)
	}
	if cfg.SessionDBPath != "./data/sessions.db" {
		t.Errorf("SessionDBPath = %q, want %q", cfg.SessionDBPath, "./data/sessions.db")
	}
	if cfg.ServerHost != "localhost" {
		t.Errorf("ServerHost = %q, want %q", cfg.ServerHost, "localhost")
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d, want %d", cfg.ServerPort, 8080)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want %q", cfg.Env, "development")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.CacheTTL != 300 {
		t.Errorf("CacheTTL = %d, want 300", cfg.CacheTTL)
	}
}

func TestLoad_RequiredVars(t *testing.T) {
	t.Run("missing_secret", func(t *testing.T) {
		os.Clearenv()
		setEnv(t, "VERACITY_API_BASE_URL", "https://api.veracity.example")

		if _, err := Load(); err == nil {
			t.Fatal("Load() should fail when VERACITY_SESSION_SECRET is not set")
		}
	})

	t.Run("missing_api_base_url", func(t *testing.T) {
		os.Clearenv()
		setEnv(t, "VERACITY_SESSION_SECRET", "test-secret-key-32-bytes-long!!!")

		if _, err := Load(); err == nil {
			t.Fatal("Load() should fail when VERACITY_API_BASE_URL is not set")
		}
	})
}

func TestLoad_APIBaseURLValidation(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"https", "https://api.veracity.example", false},
		{"http", "http://localhost:3000", false},
		{"trailing_slash_trimmed", "https://api.veracity.example/", false},
		{"no_scheme", "api.veracity.example", true},
		{"bad_scheme", "ftp://api.veracity.example", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			setEnv(t, "VERACITY_SESSION_SECRET", "test-secret-key-32-bytes-long!!!")
			setEnv(t, "VERACITY_API_BASE_URL", tt.url)

			cfg, err := Load()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Load() should fail for %q", tt.url)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if cfg.APIBaseURL[len(cfg.APIBaseURL)-1] == '/' {
				t.Errorf("APIBaseURL = %q, trailing slash not trimmed", cfg.APIBaseURL)
			}
		})
	}
}

func TestLoad_StorageBaseURL(t *testing.T) {
	os.Clearenv()
	setRequired(t)
	setEnv(t, "VERACITY_STORAGE_BASE_URL", "https://cdn.veracity.example/media/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.StorageBaseURL != "https://cdn.veracity.example/media" {
		t.Errorf("StorageBaseURL = %q", cfg.StorageBaseURL)
	}
}

func TestLoad_SessionSecretTooShort(t *testing.T) {
	tests := []struct {
		name   string
		secret string
	}{
		{"empty", ""},
		{"short", "short"},
		{"31_bytes", "1234567890123456789012345678901"}, // 31 bytes
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			setEnv(t, "VERACITY_API_BASE_URL", "https://api.veracity.example")
			setEnv(t, "VERACITY_SESSION_SECRET", tt.secret)

			if _, err := Load(); err == nil {
				t.Fatalf("Load() should fail with %d-byte secret", len(tt.secret))
			}
		})
	}
}

func TestLoad_KnownWeakSecretRejected(t *testing.T) {
	os.Clearenv()
	setEnv(t, "VERACITY_API_BASE_URL", "https://api.veracity.example")
	setEnv(t, "VERACITY_SESSION_SECRET", "change-me-to-32-byte-secret-key!")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should reject a known default secret")
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"development", true},
		{"production", false},
		{"staging", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := Config{Env: tt.env}
			if got := cfg.IsDevelopment(); got != tt.want {
				t.Errorf("IsDevelopment() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfig_ServerAddr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"localhost", 8080, "localhost:8080"},
		{"0.0.0.0", 3000, "0.0.0.0:3000"},
		{"127.0.0.1", 443, "127.0.0.1:443"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			cfg := Config{ServerHost: tt.host, ServerPort: tt.port}
			if got := cfg.ServerAddr(); got != tt.want {
				t.Errorf("ServerAddr() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfig_UseRedisCache(t *testing.T) {
	if (Config{}).UseRedisCache() {
		t.Error("UseRedisCache() = true with no URL")
	}
	if !(Config{RedisURL: "redis://localhost:6379/0"}).UseRedisCache() {
		t.Error("UseRedisCache() = false with URL set")
	}
}
