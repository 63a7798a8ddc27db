package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/erazemk/omara/internal/api"
	"github.com/erazemk/omara/internal/db"
	"github.com/erazemk/omara/internal/store"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE:  a.runServe,
	}
}

// openStore opens the database, creating its directory if needed, and
// ensures the schema and default rows exist. Concurrent starts against the
// same file are serialized with a file lock.
func openStore(ctx context.Context, path string) (*sql.DB, bool, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, false, fmt.Errorf("creating database directory: %w", err)
	}

	unlock, err := db.Lock(ctx, path)
	if err != nil {
		return nil, false, err
	}
	defer unlock()

	database, err := db.Open(path)
	if err != nil {
		return nil, false, err
	}

	if err := db.EnsureSchema(database); err != nil {
		database.Close()
		return nil, false, err
	}

	seeded, err := store.SeedDefaults(ctx, database)
	if err != nil {
		database.Close()
		return nil, false, err
	}

	return database, seeded, nil
}

func (a *app) runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	database, seeded, err := openStore(ctx, a.cfg.DB)
	if err != nil {
		slog.Error("failed to open database", "path", a.cfg.DB, "error", err)
		return err
	}
	defer database.Close()

	if seeded {
		slog.Info("default categories and locations created")
	}
	slog.Info("database ready", "path", a.cfg.DB)

	// Load JWT secret from database (auto-generated on first run).
	jwtSecret, err := store.GetJWTSecret(ctx, database)
	if err != nil {
		slog.Error("failed to get JWT secret", "error", err)
		return err
	}

	handler := api.LoggingMiddleware(api.NewRouter(database, jwtSecret))

	server := &http.Server{
		Addr:              a.cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	go func() {
		sig := <-quit
		slog.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			slog.Error("server forced to shutdown", "error", err)
		}
	}()

	slog.Info("server started", "addr", a.cfg.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server error", "error", err)
		return err
	}

	slog.Info("server stopped, closing database")
	return nil
}
