package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dukerupert/jitter/internal/config"
	"github.com/dukerupert/jitter/internal/database"
	"github.com/dukerupert/jitter/internal/logging"
	"github.com/dukerupert/jitter/internal/server"
	"github.com/dukerupert/jitter/internal/store"
	"github.com/dukerupert/jitter/internal/store/supabase"
	"github.com/dukerupert/jitter/internal/tracker"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		slog.Error("failed to read .env", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, config.ErrMissingConfiguration) {
			slog.Error("store is not configured", "backend", os.Getenv("JITTER_STORE"), "error", err)
		} else {
			slog.Error("invalid configuration", "error", err)
		}
		os.Exit(1)
	}

	logger := logging.Setup(cfg.LogLevel, cfg.LogFormat)

	st, err := openStore(cfg.Store)
	if err != nil {
		logger.Error("failed to open store", "backend", cfg.Store.Backend, "error", err)
		os.Exit(1)
	}
	defer st.Close()

	svc := tracker.New(st, cfg.RecentLimit)
	srv := server.New(svc, server.Options{CORSOrigins: cfg.CORSOrigins, TrustProxy: cfg.TrustProxy}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go srv.RateLimiter().Run(ctx, 5*time.Minute)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("jitter listening", "addr", "http://localhost:"+cfg.Port, "store", cfg.Store.Backend)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	logger.Info("shutting down")
	srv.Hub().Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func openStore(cfg config.StoreConfig) (store.Store, error) {
	switch cfg.Backend {
	case config.BackendSupabase:
		s, err := supabase.New(cfg.SupabaseURL, cfg.SupabaseKey)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		db, err := database.Open(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		return store.NewSQLiteStore(db), nil
	}
}
