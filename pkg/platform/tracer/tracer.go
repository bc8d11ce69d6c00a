// Package tracer provides a lightweight tracing abstraction for the ACTA client.
//
// The client emits one span per API operation through the Tracer interface
// so callers can plug in OpenTelemetry without the SDK leaking otel types
// into its public option surface.
//
// Implementations:
//   - NoopTracer: default, zero overhead
//   - OTelTracer: OpenTelemetry adapter
package tracer

import (
	"context"
	"time"
)

// Span represents an active trace span.
type Span interface {
	// End completes the span, recording any error that occurred.
	// End must be called exactly once, typically via defer.
	End(err error)

	// SetAttributes adds key-value pairs to the span.
	SetAttributes(attrs ...Attribute)

	// AddEvent records a timestamped event within the span.
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	// Start creates a new span with the given name and attributes.
	//
	// Example:
	//   ctx, span := tr.Start(ctx, tracer.SpanVaultStore,
	//       tracer.String(tracer.AttrVcID, string(sub.VcID)),
	//   )
	//   defer span.End(err)
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute represents a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

// String creates a string attribute.
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Bool creates a boolean attribute.
func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int64 creates an int64 attribute.
func Int64(key string, value int64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int creates an int attribute.
func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration creates a duration attribute in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// Span names used by the client, one per API operation.
const (
	SpanCreateCredential = "acta.credentials.create"
	SpanGetConfig        = "acta.config.get"
	SpanPrepareStoreTx   = "acta.tx.prepare_store"
	SpanPrepareIssueTx   = "acta.tx.prepare_issue"
	SpanVaultStore       = "acta.vault.store"
	SpanVaultVerify      = "acta.vault.verify"
	SpanVerifyStatus     = "acta.verify.status"
	SpanVaultListDirect  = "acta.vault.list_vc_ids_direct"
	SpanVaultGetDirect   = "acta.vault.get_vc_direct"
)

// Attribute keys used by the client.
const (
	AttrNetwork     = "acta.network"
	AttrVcID        = "acta.vc_id"
	AttrOwner       = "acta.owner"
	AttrVariant     = "acta.credential.variant"
	AttrHTTPMethod  = "http.method"
	AttrHTTPPath    = "http.path"
	AttrHTTPStatus  = "http.status_code"
	AttrRequestID   = "acta.request_id"
	AttrResultCount = "acta.result.count"
	AttrFallback    = "acta.response.fallback_field"
)

// Event names used by the client.
const (
	EventResponseNormalized = "response.normalized"
)
