// Package config loads settings for the actactl CLI and the mock ACTA
// backend.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Stellar network passphrases served by the mock backend.
const (
	TestnetPassphrase = "Test SDF Network ; September 2015"
	MainnetPassphrase = "Public Global Stellar Network ; September 2015"
)

// MockServer captures the mock backend's HTTP and ledger settings.
type MockServer struct {
	Addr     string
	Network  string
	APIKey   string
	LogLevel string

	RPCURL             string
	NetworkPassphrase  string
	IssuanceContractID string
	VaultContractID    string

	// LegacyResultKey answers direct vault reads under "result" instead of
	// "vc_ids"/"vc".
	LegacyResultKey bool
	// OmitVerification drops the verification snapshot from store results.
	OmitVerification bool
}

// MockServerFromEnv builds a MockServer config from ACTA_MOCK_* variables so
// main stays lean. Contract IDs are left empty unless set, which lets clients
// exercise their compiled-in defaults.
func MockServerFromEnv() MockServer {
	cfg := MockServer{
		Addr:               envOr("ACTA_MOCK_ADDR", ":8080"),
		Network:            strings.ToLower(envOr("ACTA_MOCK_NETWORK", "testnet")),
		APIKey:             os.Getenv("ACTA_MOCK_API_KEY"),
		LogLevel:           envOr("ACTA_MOCK_LOG_LEVEL", "info"),
		RPCURL:             os.Getenv("ACTA_MOCK_RPC_URL"),
		NetworkPassphrase:  os.Getenv("ACTA_MOCK_NETWORK_PASSPHRASE"),
		IssuanceContractID: os.Getenv("ACTA_MOCK_ISSUANCE_CONTRACT_ID"),
		VaultContractID:    os.Getenv("ACTA_MOCK_VAULT_CONTRACT_ID"),
		LegacyResultKey:    envBool("ACTA_MOCK_LEGACY_RESULT_KEY"),
		OmitVerification:   envBool("ACTA_MOCK_OMIT_VERIFICATION"),
	}
	cfg.ApplyNetworkDefaults()
	return cfg
}

// ApplyNetworkDefaults fills the RPC URL and passphrase for the configured
// network when they are unset.
func (c *MockServer) ApplyNetworkDefaults() {
	if c.Network == "" {
		c.Network = "testnet"
	}
	if c.Network == "mainnet" {
		if c.RPCURL == "" {
			c.RPCURL = "https://mainnet.sorobanrpc.com"
		}
		if c.NetworkPassphrase == "" {
			c.NetworkPassphrase = MainnetPassphrase
		}
		return
	}
	if c.RPCURL == "" {
		c.RPCURL = "https://soroban-testnet.stellar.org"
	}
	if c.NetworkPassphrase == "" {
		c.NetworkPassphrase = TestnetPassphrase
	}
}

// PathPrefix is where the API is mounted, matching the public endpoints.
func (c MockServer) PathPrefix() string {
	return "/api/" + c.Network
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
