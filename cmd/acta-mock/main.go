package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/acta-build/acta-go/internal/mockapi"
	"github.com/acta-build/acta-go/internal/platform/config"
	"github.com/acta-build/acta-go/internal/platform/logger"
	"github.com/acta-build/acta-go/pkg/secrets"
)

// main serves the mock ACTA backend under /api/<network> with Prometheus
// metrics on /metrics.
func main() {
	cfg := config.MockServerFromEnv()
	log := logger.New(cfg.LogLevel)

	if cfg.APIKey == "generate" {
		key, err := secrets.GenerateAPIKey()
		if err != nil {
			log.Error("failed to generate api key", "error", err)
			os.Exit(1)
		}
		cfg.APIKey = key
		log.Info("generated api key", "api_key", key)
	}

	backend, err := mockapi.New(cfg, mockapi.WithLogger(log))
	if err != nil {
		log.Error("failed to initialize mock backend", "error", err)
		os.Exit(1)
	}

	router := chi.NewRouter()
	router.Mount(cfg.PathPrefix(), backend.Handler())
	router.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info("starting mock acta backend",
		"addr", cfg.Addr,
		"base_path", cfg.PathPrefix(),
		"legacy_result_key", cfg.LegacyResultKey,
		"api_key_required", cfg.APIKey != "",
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
