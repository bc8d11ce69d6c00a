// Package acta is the Go client for the ACTA credential API.
//
// A Client issues, stores and verifies verifiable credentials anchored to the
// Stellar network through the ACTA backend, which brokers the Issuance and
// Vault contracts. The client never holds signing keys: on-chain writes follow
// a prepare → sign externally → submit flow.
//
//	client, err := acta.New(acta.TestNetURL, acta.WithAPIKey(key))
//	if err != nil {
//		return err
//	}
//	tx, err := client.PrepareStoreTx(ctx, models.PrepareStoreRequest{...})
//	// sign tx.UnsignedXDR with a wallet
//	res, err := client.VaultStore(ctx, models.SignedSubmission{...})
//
// A Client is immutable after New and safe for concurrent use. It performs no
// retries, caching or client-side timeouts; callers control deadlines through
// the context passed to each call.
package acta

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/acta-build/acta-go/pkg/acta/network"
	"github.com/acta-build/acta-go/pkg/acta/transport"
	dErrors "github.com/acta-build/acta-go/pkg/domain-errors"
	"github.com/acta-build/acta-go/pkg/platform/metrics"
	"github.com/acta-build/acta-go/pkg/platform/tracer"
)

// Public ACTA API endpoints.
const (
	MainNetURL = "https://acta.build/api/mainnet"
	TestNetURL = "https://acta.build/api/testnet"
)

// Version is reported in the default User-Agent.
const Version = "0.3.0"

// Client is the typed entry point to the ACTA API.
type Client struct {
	transport *transport.Transport
	network   network.Network
	tracer    tracer.Tracer
	metrics   *metrics.ClientMetrics
	logger    *slog.Logger
}

// Option configures a Client.
type Option func(*options)

type options struct {
	apiKey     string
	userAgent  string
	httpClient transport.Doer
	logger     *slog.Logger
	metrics    *metrics.ClientMetrics
	tracer     tracer.Tracer
}

// WithAPIKey sends key in the X-API-Key header of every call.
func WithAPIKey(key string) Option {
	return func(o *options) {
		o.apiKey = key
	}
}

// WithHTTPClient sets the HTTP client used for every call. Use it to impose
// transport-level timeouts or TLS settings.
func WithHTTPClient(client transport.Doer) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithLogger sets the structured logger. Calls are logged at debug level and
// failures at warn level. The default discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics records per-operation Prometheus metrics.
func WithMetrics(m *metrics.ClientMetrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithTracer emits one span per operation.
func WithTracer(t tracer.Tracer) Option {
	return func(o *options) {
		o.tracer = t
	}
}

// WithUserAgent overrides the default "acta-go/<version>" User-Agent.
func WithUserAgent(ua string) Option {
	return func(o *options) {
		o.userAgent = ua
	}
}

// New creates a Client for baseURL. The network is resolved once from the
// URL. A missing or non-absolute http(s) URL is a configuration error, so a
// returned Client is always usable.
func New(baseURL string, opts ...Option) (*Client, error) {
	if err := validateBaseURL(baseURL); err != nil {
		return nil, err
	}

	o := options{
		userAgent: "acta-go/" + Version,
		tracer:    tracer.NewNoop(),
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.httpClient == nil {
		o.httpClient = &http.Client{}
	}

	resolved := network.Resolve(baseURL)
	logger := o.logger.With("network", resolved.String())

	return &Client{
		transport: transport.New(transport.Config{
			BaseURL:    baseURL,
			APIKey:     o.apiKey,
			UserAgent:  o.userAgent,
			HTTPClient: o.httpClient,
			Logger:     logger,
			Metrics:    o.metrics,
		}),
		network: resolved,
		tracer:  o.tracer,
		metrics: o.metrics,
		logger:  logger,
	}, nil
}

// MustNew is like New but panics on a configuration error. Intended for
// package-level wiring with constant URLs.
func MustNew(baseURL string, opts ...Option) *Client {
	c, err := New(baseURL, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func validateBaseURL(baseURL string) error {
	if baseURL == "" {
		return dErrors.New(dErrors.CodeConfiguration, "acta: base URL is required")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeConfiguration, "acta: invalid base URL")
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return dErrors.New(dErrors.CodeConfiguration, "acta: base URL must be an absolute http(s) URL")
	}
	return nil
}

// Network returns the network resolved from the base URL.
func (c *Client) Network() network.Network {
	return c.network
}

// BaseURL returns the API base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.transport.BaseURL()
}

// Operation names used for metrics labels and error values.
const (
	OpCreateCredential = "create_credential"
	OpGetConfig        = "get_config"
	OpPrepareStoreTx   = "prepare_store_tx"
	OpPrepareIssueTx   = "prepare_issue_tx"
	OpVaultStore       = "vault_store"
	OpVaultVerify      = "vault_verify"
	OpVerifyStatus     = "verify_status"
	OpVaultListDirect  = "vault_list_vc_ids_direct"
	OpVaultGetDirect   = "vault_get_vc_direct"
)

// API routes, relative to the base URL.
const (
	routeCredentials    = "/credentials"
	routeConfig         = "/config"
	routePrepareStore   = "/tx/prepare/store"
	routePrepareIssue   = "/tx/prepare/issue"
	routeVaultStore     = "/vault/store"
	routeVaultVerify    = "/vault/verify"
	routeVerifyPrefix   = "/verify/"
	routeVaultListIDs   = "/vault/list_vc_ids_direct"
	routeVaultGetDirect = "/vault/get_vc_direct"
)
