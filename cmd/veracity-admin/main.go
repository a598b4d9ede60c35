// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/olegiv/veracity-admin/internal/api"
	"github.com/olegiv/veracity-admin/internal/cache"
	"github.com/olegiv/veracity-admin/internal/config"
	"github.com/olegiv/veracity-admin/internal/handler"
	"github.com/olegiv/veracity-admin/internal/logging"
	"github.com/olegiv/veracity-admin/internal/middleware"
	"github.com/olegiv/veracity-admin/internal/render"
	"github.com/olegiv/veracity-admin/internal/scheduler"
	"github.com/olegiv/veracity-admin/internal/service"
	"github.com/olegiv/veracity-admin/internal/session"
	"github.com/olegiv/veracity-admin/internal/storage"
	"github.com/olegiv/veracity-admin/internal/store"
	"github.com/olegiv/veracity-admin/internal/version"
	"github.com/olegiv/veracity-admin/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Veracity Admin - moderation console for the Veracity platform\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  VERACITY_API_BASE_URL       Backend API root (required)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  VERACITY_SESSION_SECRET     Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  VERACITY_SESSION_DB_PATH    SQLite session store path (default: ./data/sessions.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  VERACITY_STORAGE_BASE_URL   Media storage root for relative image paths\n")
		_, _ = fmt.Fprintf(os.Stderr, "  VERACITY_SERVER_PORT        Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  VERACITY_ENV                Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  VERACITY_REDIS_URL          Redis URL for distributed caching (optional)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	versionInfo := version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	if *showVersion {
		_, _ = fmt.Printf("veracity-admin %s (commit: %s, built: %s)\n", versionInfo.Version, versionInfo.GitCommit, versionInfo.BuildTime)
		os.Exit(0)
	}

	if err := run(versionInfo); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(versionInfo version.Info) error {
	// Load .env files if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)

	// Ensure the session store directory exists
	dbDir := filepath.Dir(cfg.SessionDBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing session store", "path", cfg.SessionDBPath)
	db, err := store.NewDB(cfg.SessionDBPath)
	if err != nil {
		return fmt.Errorf("initializing session store: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing session store", "error", err)
		}
	}(db)

	slog.Info("running session store migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	sessionManager := session.New(db, cfg.IsDevelopment())
	slog.Info("session manager initialized")

	ctx := context.Background()

	cacheBackend := cache.New(ctx, cache.Config{
		RedisURL:   cfg.RedisURL,
		KeyPrefix:  cfg.CachePrefix,
		DefaultTTL: time.Duration(cfg.CacheTTL) * time.Second,
		MaxItems:   cfg.CacheMaxSize,
	}, logger)
	defer func() {
		if err := cacheBackend.Close(); err != nil {
			slog.Error("error closing cache backend", "error", err)
		}
	}()

	client := api.NewClient(api.Config{
		BaseURL:       cfg.APIBaseURL,
		SessionCookie: cfg.APISessionCookie,
		Timeout:       time.Duration(cfg.APITimeout) * time.Second,
	})
	slog.Info("backend client initialized", "base_url", cfg.APIBaseURL, "timeout_s", cfg.APITimeout)

	deps := service.Deps{
		Cache: cacheBackend,
		Gens:  cache.NewGenerations(),
		TTL:   time.Duration(cfg.CacheTTL) * time.Second,
		Log:   logger,
	}

	authService := service.NewAuthService(client, deps)
	directoryService := service.NewDirectoryService(client, deps)
	contentService := service.NewContentService(client, deps)
	eventService := service.NewEventService(client, deps)
	moderatorService := service.NewModeratorService(client, deps)
	interestService := service.NewInterestService(client, deps)
	analyticsService := service.NewAnalyticsService(client, deps)
	dashboardService := service.NewDashboardService(directoryService)

	mediaResolver := storage.NewResolver(cfg.StorageBaseURL)

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("getting templates fs: %w", err)
	}

	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
		Storage:        mediaResolver,
		IsDev:          cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}
	slog.Info("template renderer initialized")

	// Analytics cache warm-up keeps the dashboard charts hot across
	// TTL expiries. Runs as a no-op until the first admin sign-in
	// provides a backend session.
	sched := scheduler.New(logger)
	if cfg.WarmCacheCron != "" {
		warmJob := scheduler.NewAnalyticsWarmJob(analyticsService, authService, logger)
		if err := sched.AddJob(cfg.WarmCacheCron, warmJob); err != nil {
			return fmt.Errorf("scheduling analytics warm-up: %w", err)
		}
	}
	sched.Start()
	defer sched.Stop()

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.StripTrailingSlash)

	securityConfig := middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())
	r.Use(middleware.SecurityHeaders(securityConfig))
	slog.Info("security headers middleware initialized", "hsts", !cfg.IsDevelopment())

	r.Use(sessionManager.LoadAndSave)
	r.Use(middleware.BackendSession(sessionManager))

	csrfConfig := middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.ServerAddr(), cfg.IsDevelopment())
	csrfMiddleware := middleware.CSRF(csrfConfig)
	slog.Info("CSRF protection initialized", "secure", !cfg.IsDevelopment())

	loginProtection := middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig())
	slog.Info("login protection initialized")

	authHandler := handler.NewAuthHandler(authService, renderer, sessionManager, loginProtection)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, renderer)
	usersHandler := handler.NewUsersHandler(directoryService, contentService, eventService, renderer)
	moderatorsHandler := handler.NewModeratorsHandler(moderatorService, renderer)
	interestsHandler := handler.NewInterestsHandler(interestService, renderer)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService, renderer)

	// Auth routes: signed-in admins are bounced back to the dashboard.
	r.Group(func(r chi.Router) {
		r.Use(csrfMiddleware)
		r.Use(middleware.PublicOnly(authService))
		r.Get(handler.RouteLogin, authHandler.LoginForm)
		r.With(loginProtection.Middleware()).Post(handler.RouteLogin, authHandler.Login)
	})

	// Console routes: every page requires a live backend session.
	r.Group(func(r chi.Router) {
		r.Use(csrfMiddleware)
		r.Use(middleware.Protected(sessionManager, authService))

		r.Get(handler.RouteRoot, dashboardHandler.Home)
		r.Post(handler.RouteLogout, authHandler.Logout)

		r.Get(handler.RouteUsers, usersHandler.List)
		r.Get(handler.RouteUsersID, usersHandler.Detail)
		r.Post(handler.RouteUsersIDStatus, usersHandler.UpdateStatus)
		r.Post(handler.RouteUsersIDRole, usersHandler.UpdateRole)

		r.Get(handler.RouteInterests, interestsHandler.List)
		r.Post(handler.RouteInterests, interestsHandler.Create)
		r.Post(handler.RouteInterestsID, interestsHandler.Update)
		r.Post(handler.RouteInterestsIDDelete, interestsHandler.Delete)

		r.Get(handler.RouteAnalytics, analyticsHandler.Page)

		// Moderator management is restricted to the owner account.
		r.Group(func(r chi.Router) {
			r.Use(middleware.OwnerOnly())
			r.Get(handler.RouteModerators, moderatorsHandler.List)
			r.Post(handler.RouteModerators, moderatorsHandler.Create)
			r.Post(handler.RouteModeratorsDelete, moderatorsHandler.Delete)
		})
	})

	// Static assets: cache for 1 year
	staticFS, err := fs.Sub(web.Static, "static/dist")
	if err != nil {
		return fmt.Errorf("getting static fs: %w", err)
	}
	staticHandler := middleware.StaticCache(31536000)(http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	r.Handle("/static/*", staticHandler)

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env, "version", versionInfo.Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
