package mockapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acta-build/acta-go/internal/platform/config"
)

func newTestBackend(t *testing.T, cfg config.MockServer) (*Backend, http.Handler) {
	t.Helper()
	b, err := New(cfg, WithRegisterer(prometheus.NewRegistry()))
	require.NoError(t, err)
	return b, b.Handler()
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHandleConfig(t *testing.T) {
	_, h := newTestBackend(t, config.MockServer{Network: "testnet", IssuanceContractID: "CISSUE"})

	w := serve(h, http.MethodGet, "/config", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "CISSUE", body["issuanceContractId"])
	assert.NotContains(t, body, "vaultContractId")
	assert.Equal(t, config.TestnetPassphrase, body["networkPassphrase"])
}

func TestHandleCreateCredentialValidation(t *testing.T) {
	_, h := newTestBackend(t, config.MockServer{})

	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", `{"vcId":`, http.StatusBadRequest},
		{"missing vc id", `{"signedXdr":"X"}`, http.StatusUnprocessableEntity},
		{"mixed variants", `{"signedXdr":"X","vcId":"v1","owner":"O"}`, http.StatusUnprocessableEntity},
		{"server issued without data", `{"owner":"O","vcId":"v1"}`, http.StatusUnprocessableEntity},
		{"unprepared signature", `{"signedXdr":"bm9wZQ==","vcId":"v1"}`, http.StatusBadRequest},
		{"server issued", `{"owner":"O","vcId":"v1","vcData":"{}","vaultContractId":""}`, http.StatusCreated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(h, http.MethodPost, "/credentials", tt.body)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestHandleDirectReadKeys(t *testing.T) {
	for _, legacy := range []bool{false, true} {
		b, h := newTestBackend(t, config.MockServer{LegacyResultKey: legacy})
		_, err := b.Store().Issue("O", "v1", json.RawMessage(`{"a":1}`), "")
		require.NoError(t, err)

		listKey, getKey := "vc_ids", "vc"
		if legacy {
			listKey, getKey = "result", "result"
		}

		w := serve(h, http.MethodPost, "/vault/list_vc_ids_direct", `{"owner":"O"}`)
		assert.JSONEq(t, `{"`+listKey+`":["v1"]}`, w.Body.String())

		w = serve(h, http.MethodPost, "/vault/get_vc_direct", `{"owner":"O","vcId":"v1"}`)
		assert.JSONEq(t, `{"`+getKey+`":{"a":1}}`, w.Body.String())
	}
}

func TestHandleVerifyStatusDecodesPath(t *testing.T) {
	b, h := newTestBackend(t, config.MockServer{})
	_, err := b.Store().Issue("O", "a b", json.RawMessage(`{}`), "")
	require.NoError(t, err)

	w := serve(h, http.MethodGet, "/verify/a%20b", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"vc_id":"a b"`)

	_, err = b.Store().Issue("O", "a/b", json.RawMessage(`{}`), "")
	require.NoError(t, err)
	w = serve(h, http.MethodGet, "/verify/a%2Fb", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"vc_id":"a/b"`)

	w = serve(h, http.MethodGet, "/verify/unknown", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleRevoke(t *testing.T) {
	b, h := newTestBackend(t, config.MockServer{})
	_, err := b.Store().Issue("O", "v1", json.RawMessage(`{}`), "")
	require.NoError(t, err)

	w := serve(h, http.MethodPost, "/mock/revoke/v1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = serve(h, http.MethodPost, "/mock/revoke/v2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBackendMetrics(t *testing.T) {
	b, h := newTestBackend(t, config.MockServer{})

	w := serve(h, http.MethodPost, "/tx/prepare/issue", `{"owner":"O","vcId":"v1","vcData":"{}"}`)
	require.Equal(t, http.StatusOK, w.Code)
	serve(h, http.MethodPost, "/credentials", `{"owner":"O","vcId":"v2","vcData":"{}"}`)

	assert.Equal(t, 1.0, testutil.ToFloat64(b.metrics.PreparedTxTotal.WithLabelValues("issue")))
	assert.Equal(t, 1.0, testutil.ToFloat64(b.metrics.CredentialsStored))
	assert.Equal(t, 1.0, testutil.ToFloat64(b.metrics.StoredCredentials))
	assert.Equal(t, 1.0, testutil.ToFloat64(b.metrics.RequestsTotal.WithLabelValues("/credentials", "201")))
}
