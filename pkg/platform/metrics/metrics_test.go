package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestClientMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewClient(reg)

	m.ObserveRequest("vault_store", 0.2, nil)
	m.ObserveRequest("vault_store", 0.4, errors.New("boom"))
	m.ObserveRequest("get_config", 0.01, nil)
	m.ObserveStatus("vault_store", "500")
	m.IncrementFallback("vault_list_vc_ids_direct")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("vault_store", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("vault_store", OutcomeFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ResponseStatusTotal.WithLabelValues("vault_store", "500")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NormalizedFallbacks.WithLabelValues("vault_list_vc_ids_direct")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.RequestDurationSeconds))
}

func TestNewClient_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewClient(prometheus.NewRegistry())
		NewClient(prometheus.NewRegistry())
	})
}

func TestBackendMetrics(t *testing.T) {
	m := NewBackend(prometheus.NewRegistry())
	m.CredentialsStored.Inc()
	m.StoredCredentials.Set(3)
	m.PreparedTxTotal.WithLabelValues("store").Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CredentialsStored))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.StoredCredentials))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PreparedTxTotal.WithLabelValues("store")))
}
