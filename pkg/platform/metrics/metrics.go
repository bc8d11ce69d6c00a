// Package metrics provides Prometheus metrics for the ACTA client and the
// local mock backend.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for client requests.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// ClientMetrics contains the metrics recorded by the ACTA client.
type ClientMetrics struct {
	RequestsTotal          *prometheus.CounterVec   // API calls by operation and outcome
	RequestDurationSeconds *prometheus.HistogramVec // API call latency by operation
	ResponseStatusTotal    *prometheus.CounterVec   // HTTP status codes by operation
	NormalizedFallbacks    *prometheus.CounterVec   // direct reads answered under the legacy "result" key
}

// NewClient creates client metrics registered on reg. A nil reg registers on
// the default registry.
func NewClient(reg prometheus.Registerer) *ClientMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &ClientMetrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "acta_client_requests_total",
			Help: "Total number of ACTA API calls by operation and outcome",
		}, []string{"operation", "outcome"}),

		RequestDurationSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "acta_client_request_duration_seconds",
			Help:    "Duration of ACTA API calls by operation",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}, // on-chain submissions dominate the tail
		}, []string{"operation"}),

		ResponseStatusTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "acta_client_response_status_total",
			Help: "HTTP status codes returned by the ACTA API by operation",
		}, []string{"operation", "code"}),

		NormalizedFallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "acta_client_response_fallback_total",
			Help: "Direct vault reads whose payload was found under the fallback field",
		}, []string{"operation"}),
	}
}

// ObserveRequest records one finished API call.
func (m *ClientMetrics) ObserveRequest(operation string, durationSeconds float64, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	m.RequestsTotal.WithLabelValues(operation, outcome).Inc()
	m.RequestDurationSeconds.WithLabelValues(operation).Observe(durationSeconds)
}

// ObserveStatus records the HTTP status returned for an operation.
func (m *ClientMetrics) ObserveStatus(operation, code string) {
	m.ResponseStatusTotal.WithLabelValues(operation, code).Inc()
}

// IncrementFallback records a direct read normalized from the fallback field.
func (m *ClientMetrics) IncrementFallback(operation string) {
	m.NormalizedFallbacks.WithLabelValues(operation).Inc()
}

// BackendMetrics contains the metrics exposed by the mock ACTA backend.
type BackendMetrics struct {
	RequestsTotal     *prometheus.CounterVec
	CredentialsStored prometheus.Counter
	PreparedTxTotal   *prometheus.CounterVec
	StoredCredentials prometheus.Gauge
	AuthFailuresTotal prometheus.Counter
}

// NewBackend creates mock backend metrics registered on reg.
func NewBackend(reg prometheus.Registerer) *BackendMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &BackendMetrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "acta_mock_requests_total",
			Help: "Requests served by the mock ACTA backend by route and status",
		}, []string{"route", "code"}),
		CredentialsStored: factory.NewCounter(prometheus.CounterOpts{
			Name: "acta_mock_credentials_stored_total",
			Help: "Total number of credentials committed to the mock vault",
		}),
		PreparedTxTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "acta_mock_prepared_transactions_total",
			Help: "Unsigned transactions prepared by kind",
		}, []string{"kind"}),
		StoredCredentials: factory.NewGauge(prometheus.GaugeOpts{
			Name: "acta_mock_vault_entries",
			Help: "Current number of credentials held in the mock vault",
		}),
		AuthFailuresTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "acta_mock_auth_failures_total",
			Help: "Requests rejected for a missing or wrong API key",
		}),
	}
}
