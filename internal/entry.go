// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/ocastel/tooldex/internal/api"
	"github.com/ocastel/tooldex/internal/catalog"
	"github.com/ocastel/tooldex/internal/index"
	"github.com/ocastel/tooldex/internal/ingest"
	"github.com/ocastel/tooldex/internal/mcpserver"
	"github.com/ocastel/tooldex/internal/sse"
	"github.com/ocastel/tooldex/internal/toolservice"
)

// Run starts the HTTP server with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config
	logger := app.logger
	if logger == nil {
		logger = newLogger(cfg, os.Stdout)
	}

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("backend", cfg.Catalog.Backend),
		slog.String("source", cfg.Catalog.Source),
		slog.String("log_level", cfg.App.LogLevel.String()))

	store, reload, cleanup, err := buildCatalog(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	// SSE broker.
	broker := sse.NewBroker(2 * time.Second)
	defer broker.Close()

	// Refresh re-ingests the source and notifies SSE clients.
	var refresh toolservice.RefreshFunc
	if reload != nil {
		refresh = func(_ context.Context) (ingest.Report, error) {
			rep, reloadErr := reload()
			if reloadErr != nil {
				return rep, reloadErr
			}
			broker.PublishCatalogRefresh(rep.Imported, rep.Skipped, rep.Conflicts)
			return rep, nil
		}
	}

	// Build API service and router.
	svc := toolservice.NewService(store, refresh)
	apiRouter := api.NewRouter(svc, cfg.Auth.AuthEnabled(), cfg.Auth.Token, broker)

	// Build chi router.
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints (unauthenticated).
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Mount API routes under /api.
	r.Mount("/api", apiRouter)

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Start source watcher.
	if cfg.Catalog.Watch && cfg.Catalog.Source != "" && reload != nil {
		g.Go(func() error {
			if err := ingest.Watch(gCtx, cfg.Catalog.Source, reload, logger, func(rep ingest.Report) {
				broker.PublishCatalogRefresh(rep.Imported, rep.Skipped, rep.Conflicts)
			}); err != nil {
				logger.Error("Source watcher stopped", slog.String("error", err.Error()))
			}
			return nil
		})
	}

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

// RunMCP serves the catalog over MCP stdio until the client disconnects.
func RunMCP(_ context.Context, opts ...Option) error {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Stdout carries the MCP protocol, so logs go to stderr.
	logger := app.logger
	if logger == nil {
		logger = newLogger(cfg, os.Stderr)
	}

	store, reload, cleanup, err := buildCatalog(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	var refresh toolservice.RefreshFunc
	if reload != nil {
		refresh = func(context.Context) (ingest.Report, error) { return reload() }
	}

	svc := toolservice.NewService(store, refresh)
	return mcpserver.New(svc).ServeStdio()
}

// RunMigrate executes the one-shot CSV-to-SQLite migration.
func RunMigrate(_ context.Context, opts ...Option) error {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config
	logger := app.logger
	if logger == nil {
		logger = newLogger(cfg, os.Stdout)
	}

	if cfg.Catalog.Source == "" {
		return fmt.Errorf("migrate: catalog source is required")
	}

	db, err := index.Open(cfg.SQLite.Path)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	defer db.Close()

	if _, err := index.Migrate(db, cfg.Catalog.Source, cfg.Catalog.Delimiter, logger); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func newLogger(cfg *Config, w io.Writer) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

// buildCatalog constructs the store for the configured backend and
// returns the reload function used by refresh and the watcher. cleanup
// releases backend resources.
func buildCatalog(cfg *Config, logger *slog.Logger) (*catalog.Store, ingest.ReloadFunc, func(), error) {
	noop := func() {}

	switch cfg.Catalog.Backend {
	case BackendSQLite:
		db, err := index.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, noop, fmt.Errorf("init store: %w", err)
		}

		// First run convenience: populate an empty store from the
		// source when one is configured.
		if n, countErr := db.Count(); countErr == nil && n == 0 && cfg.Catalog.Source != "" {
			if _, migErr := index.Migrate(db, cfg.Catalog.Source, cfg.Catalog.Delimiter, logger); migErr != nil {
				logger.Warn("initial migration failed", slog.String("error", migErr.Error()))
			}
		}

		rows, err := db.AllTools()
		if err != nil {
			db.Close()
			return nil, nil, noop, fmt.Errorf("load tools: %w", err)
		}
		store := catalog.NewStore(index.Tools(rows))
		logger.Info("catalog loaded", slog.String("backend", BackendSQLite), slog.Int("tools", len(rows)))

		var reload ingest.ReloadFunc
		if cfg.Catalog.Source != "" {
			reload = func() (ingest.Report, error) {
				rep, err := index.Migrate(db, cfg.Catalog.Source, cfg.Catalog.Delimiter, logger)
				if err != nil {
					return rep, err
				}
				rows, err := db.AllTools()
				if err != nil {
					return rep, err
				}
				store.Replace(index.Tools(rows))
				return rep, nil
			}
		}
		return store, reload, func() { db.Close() }, nil

	default: // BackendMemory
		tools, rep, err := ingest.ParseFile(cfg.Catalog.Source, cfg.Catalog.Delimiter)
		if err != nil {
			return nil, nil, noop, fmt.Errorf("parse source: %w", err)
		}
		store := catalog.NewStore(tools)
		logger.Info("catalog loaded",
			slog.String("backend", BackendMemory),
			slog.Int("imported", rep.Imported),
			slog.Int("skipped", rep.Skipped),
			slog.Int("conflicts", rep.Conflicts))

		reload := func() (ingest.Report, error) {
			tools, rep, err := ingest.ParseFile(cfg.Catalog.Source, cfg.Catalog.Delimiter)
			if err != nil {
				return rep, err
			}
			store.Replace(tools)
			return rep, nil
		}
		return store, reload, noop, nil
	}
}
