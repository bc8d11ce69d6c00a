// Package transport performs the HTTP calls of the ACTA client: JSON
// encoding, headers, status classification, logging and metrics. It holds no
// per-call state and is safe for concurrent use.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/acta-build/acta-go/pkg/platform/metrics"
	"github.com/acta-build/acta-go/pkg/platform/tracer"
)

// Header names sent with every call.
const (
	HeaderAPIKey    = "X-API-Key"
	HeaderRequestID = "X-Request-ID"
)

// Doer is the minimal interface needed from an HTTP client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config configures a Transport.
type Config struct {
	BaseURL    string
	APIKey     string
	UserAgent  string
	HTTPClient Doer
	Logger     *slog.Logger
	Metrics    *metrics.ClientMetrics
}

// Transport executes API calls against one base URL.
type Transport struct {
	baseURL   string
	apiKey    string
	userAgent string
	client    Doer
	logger    *slog.Logger
	metrics   *metrics.ClientMetrics
}

// New creates a Transport. Without an HTTPClient it uses an http.Client with
// no timeout; deadlines are the caller's, set through the request context.
func New(cfg Config) *Transport {
	t := &Transport{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:    cfg.APIKey,
		userAgent: cfg.UserAgent,
		client:    cfg.HTTPClient,
		logger:    cfg.Logger,
		metrics:   cfg.Metrics,
	}
	if t.client == nil {
		t.client = &http.Client{}
	}
	if t.logger == nil {
		t.logger = slog.New(slog.DiscardHandler)
	}
	return t
}

// BaseURL returns the normalized base URL.
func (t *Transport) BaseURL() string {
	return t.baseURL
}

// Call describes one API call. Body is JSON-encoded when non-nil. Span, when
// set, receives HTTP attributes.
type Call struct {
	Operation string
	Method    string
	Path      string
	Body      any
	Span      tracer.Span
}

// Response is a successful (2xx) answer.
type Response struct {
	StatusCode int
	Body       []byte
	RequestID  string
}

// Do executes call. Any non-2xx status, network failure or encoding failure
// is returned as *Error. Nothing is retried.
func (t *Transport) Do(ctx context.Context, call Call) (resp *Response, err error) {
	start := time.Now()
	requestID := uuid.NewString()
	status := 0
	defer func() {
		t.observe(ctx, call, requestID, status, time.Since(start), err)
	}()

	req, err := t.newRequest(ctx, call, requestID)
	if err != nil {
		return nil, err
	}

	httpResp, err := t.client.Do(req)
	if err != nil {
		category, msg := categorizeDoError(ctx, err)
		return nil, t.newError(call, category, msg, 0, nil, err)
	}
	defer httpResp.Body.Close()
	status = httpResp.StatusCode

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, t.newError(call, ErrorUnavailable, "failed to read response body", status, nil, err)
	}

	if status < 200 || status > 299 {
		return nil, t.newError(call, categorizeStatus(status),
			fmt.Sprintf("server returned HTTP %d", status), status, body, nil)
	}

	return &Response{StatusCode: status, Body: body, RequestID: requestID}, nil
}

func (t *Transport) newRequest(ctx context.Context, call Call, requestID string) (*http.Request, error) {
	var body io.Reader
	if call.Body != nil {
		payload, err := json.Marshal(call.Body)
		if err != nil {
			return nil, t.newError(call, ErrorInternal, "failed to marshal request", 0, nil, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, call.Method, t.baseURL+call.Path, body)
	if err != nil {
		return nil, t.newError(call, ErrorInternal, "failed to create request", 0, nil, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.apiKey != "" {
		req.Header.Set(HeaderAPIKey, t.apiKey)
	}
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}
	req.Header.Set(HeaderRequestID, requestID)
	return req, nil
}

func (t *Transport) newError(call Call, category ErrorCategory, msg string, status int, body []byte, underlying error) *Error {
	e := NewError(category, call.Operation, msg, underlying)
	e.Method = call.Method
	e.Path = call.Path
	e.StatusCode = status
	e.Body = body
	return e
}

func (t *Transport) observe(ctx context.Context, call Call, requestID string, status int, elapsed time.Duration, err error) {
	if call.Span != nil {
		call.Span.SetAttributes(
			tracer.String(tracer.AttrHTTPMethod, call.Method),
			tracer.String(tracer.AttrHTTPPath, call.Path),
			tracer.String(tracer.AttrRequestID, requestID),
		)
		if status != 0 {
			call.Span.SetAttributes(tracer.Int(tracer.AttrHTTPStatus, status))
		}
	}

	if t.metrics != nil {
		t.metrics.ObserveRequest(call.Operation, elapsed.Seconds(), err)
		if status != 0 {
			t.metrics.ObserveStatus(call.Operation, strconv.Itoa(status))
		}
	}

	attrs := []any{
		"operation", call.Operation,
		"method", call.Method,
		"path", call.Path,
		"status", status,
		"duration_ms", elapsed.Milliseconds(),
		"request_id", requestID,
	}
	if err != nil {
		t.logger.WarnContext(ctx, "acta api call failed", append(attrs, "error", err)...)
		return
	}
	t.logger.DebugContext(ctx, "acta api call", attrs...)
}

// DecodeJSON decodes a successful response body into T. An empty body yields
// the zero value; malformed JSON is a contract mismatch.
func DecodeJSON[T any](call Call, resp *Response) (*T, error) {
	var out T
	if len(bytes.TrimSpace(resp.Body)) == 0 {
		return &out, nil
	}
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		e := NewError(ErrorContractMismatch, call.Operation, "failed to parse response", err)
		e.Method = call.Method
		e.Path = call.Path
		e.StatusCode = resp.StatusCode
		e.Body = resp.Body
		return nil, e
	}
	return &out, nil
}

// Post sends body to path and decodes the JSON answer into T.
func Post[T any](ctx context.Context, t *Transport, call Call) (*T, error) {
	call.Method = http.MethodPost
	resp, err := t.Do(ctx, call)
	if err != nil {
		return nil, err
	}
	return DecodeJSON[T](call, resp)
}

// Get fetches path and decodes the JSON answer into T.
func Get[T any](ctx context.Context, t *Transport, call Call) (*T, error) {
	call.Method = http.MethodGet
	call.Body = nil
	resp, err := t.Do(ctx, call)
	if err != nil {
		return nil, err
	}
	return DecodeJSON[T](call, resp)
}
