// Package mockapi is an in-memory stand-in for the ACTA backend. It serves
// the same nine routes as the public API, keeps credentials in a process-local
// ledger and can answer direct vault reads in the legacy "result" shape.
package mockapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/acta-build/acta-go/internal/platform/config"
	"github.com/acta-build/acta-go/internal/platform/middleware"
	"github.com/acta-build/acta-go/pkg/platform/metrics"
	"github.com/acta-build/acta-go/pkg/secrets"
)

// Backend serves the mock ACTA API.
type Backend struct {
	cfg        config.MockServer
	store      *Store
	logger     *slog.Logger
	metrics    *metrics.BackendMetrics
	apiKeyHash []byte
}

// Option configures a Backend.
type Option func(*options)

type options struct {
	logger     *slog.Logger
	registerer prometheus.Registerer
	now        func() time.Time
	keyCost    int
}

// WithLogger sets the request and error logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRegisterer registers backend metrics on reg instead of the default
// registry.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}

// WithClock sets the clock used for verification timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithAPIKeyCost sets the bcrypt cost of the stored API key hash.
func WithAPIKeyCost(cost int) Option {
	return func(o *options) {
		o.keyCost = cost
	}
}

// New creates a Backend. When cfg.APIKey is set every request must carry it
// in X-API-Key; only its bcrypt hash is kept.
func New(cfg config.MockServer, opts ...Option) (*Backend, error) {
	o := options{
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	cfg.ApplyNetworkDefaults()

	b := &Backend{
		cfg:     cfg,
		store:   NewStore(o.now),
		logger:  o.logger,
		metrics: metrics.NewBackend(o.registerer),
	}
	if cfg.APIKey != "" {
		hash, err := secrets.HashAPIKey(cfg.APIKey, o.keyCost)
		if err != nil {
			return nil, err
		}
		b.apiKeyHash = hash
	}
	return b, nil
}

// Store exposes the ledger for seeding and inspection.
func (b *Backend) Store() *Store {
	return b.store
}

// Handler returns the API routes with logging, request IDs, panic recovery
// and API key checks applied. Routes are relative; mount the handler under
// the network path prefix.
func (b *Backend) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(b.logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(b.logger, b.metrics))
	r.Use(middleware.APIKey(b.apiKeyHash, b.logger, b.metrics))
	r.Use(middleware.ContentTypeJSON)
	b.Register(r)
	return r
}
