package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acta-build/acta-go/pkg/acta"
	dErrors "github.com/acta-build/acta-go/pkg/domain-errors"
)

func TestMockServerFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := MockServerFromEnv()

		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, "testnet", cfg.Network)
		assert.Equal(t, TestnetPassphrase, cfg.NetworkPassphrase)
		assert.NotEmpty(t, cfg.RPCURL)
		assert.Empty(t, cfg.IssuanceContractID)
		assert.False(t, cfg.LegacyResultKey)
		assert.Equal(t, "/api/testnet", cfg.PathPrefix())
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("ACTA_MOCK_ADDR", ":9999")
		t.Setenv("ACTA_MOCK_NETWORK", "MAINNET")
		t.Setenv("ACTA_MOCK_API_KEY", "secret")
		t.Setenv("ACTA_MOCK_VAULT_CONTRACT_ID", "CVAULT")
		t.Setenv("ACTA_MOCK_LEGACY_RESULT_KEY", "true")
		t.Setenv("ACTA_MOCK_OMIT_VERIFICATION", "1")

		cfg := MockServerFromEnv()

		assert.Equal(t, ":9999", cfg.Addr)
		assert.Equal(t, "mainnet", cfg.Network)
		assert.Equal(t, "secret", cfg.APIKey)
		assert.Equal(t, MainnetPassphrase, cfg.NetworkPassphrase)
		assert.Equal(t, "CVAULT", cfg.VaultContractID)
		assert.True(t, cfg.LegacyResultKey)
		assert.True(t, cfg.OmitVerification)
		assert.Equal(t, "/api/mainnet", cfg.PathPrefix())
	})

	t.Run("unparsable booleans are false", func(t *testing.T) {
		t.Setenv("ACTA_MOCK_LEGACY_RESULT_KEY", "yes please")
		assert.False(t, MockServerFromEnv().LegacyResultKey)
	})
}

func TestLoadClient(t *testing.T) {
	writeConfig := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "actactl.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadClient(ClientFlagSet())
		require.NoError(t, err)

		assert.Equal(t, acta.TestNetURL, cfg.BaseURL)
		assert.Equal(t, defaultClientTimeout, cfg.Timeout)
		assert.Equal(t, "warn", cfg.Verbosity)
		assert.Empty(t, cfg.APIKey)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeConfig(t, "base-url: https://acta.build/api/mainnet\napi-key: from-file\ntimeout: 5s\n")
		flags := ClientFlagSet()
		require.NoError(t, flags.Parse([]string{"--config", path}))

		cfg, err := LoadClient(flags)
		require.NoError(t, err)

		assert.Equal(t, acta.MainNetURL, cfg.BaseURL)
		assert.Equal(t, "from-file", cfg.APIKey)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := writeConfig(t, "api-key: from-file\n")
		t.Setenv("ACTA_CONFIG", path)
		t.Setenv("ACTA_API_KEY", "from-env")

		cfg, err := LoadClient(ClientFlagSet())
		require.NoError(t, err)

		assert.Equal(t, "from-env", cfg.APIKey)
	})

	t.Run("flags override environment", func(t *testing.T) {
		t.Setenv("ACTA_API_KEY", "from-env")
		t.Setenv("ACTA_BASE_URL", "http://localhost:8080/api/testnet")
		flags := ClientFlagSet()
		require.NoError(t, flags.Parse([]string{"--api-key", "from-flag", "--timeout", "2s"}))

		cfg, err := LoadClient(flags)
		require.NoError(t, err)

		assert.Equal(t, "from-flag", cfg.APIKey)
		assert.Equal(t, "http://localhost:8080/api/testnet", cfg.BaseURL)
		assert.Equal(t, 2*time.Second, cfg.Timeout)
	})

	t.Run("missing config file", func(t *testing.T) {
		flags := ClientFlagSet()
		require.NoError(t, flags.Parse([]string{"--config", filepath.Join(t.TempDir(), "absent.yaml")}))

		_, err := LoadClient(flags)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeConfiguration))
	})

	t.Run("non-positive timeout", func(t *testing.T) {
		flags := ClientFlagSet()
		require.NoError(t, flags.Parse([]string{"--timeout", "0s"}))

		_, err := LoadClient(flags)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeConfiguration))
	})
}
