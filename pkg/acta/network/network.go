// Package network resolves the operating network of an ACTA API endpoint and
// merges server-supplied contract identifiers with compiled-in defaults.
package network

import (
	"strings"

	"github.com/acta-build/acta-go/pkg/acta/models"
)

// Network is the blockchain network an ACTA endpoint operates on.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)

func (n Network) String() string { return string(n) }

// Resolve classifies a base URL: Mainnet if and only if it contains
// "mainnet", Testnet otherwise.
func Resolve(baseURL string) Network {
	if strings.Contains(baseURL, string(Mainnet)) {
		return Mainnet
	}
	return Testnet
}

// ContractDefaults holds the contract identifiers substituted when the
// backend's /config response omits them.
type ContractDefaults struct {
	IssuanceContractID string
	VaultContractID    string
}

var defaultIssuanceContractIDs = map[Network]string{
	Mainnet: "CBKBQ4F3YQWCUR5FNTPM7MOSFBV7BXQHFJ7BMGGX3NUCLLAPTHWPXR4V",
	Testnet: "CDAQHL4OBJVDMG3LGQBMSB5HDVVNB6MGWJYPGTYVSIPK4YVXQ5LLI7MQ",
}

var defaultVaultContractIDs = map[Network]string{
	Mainnet: "CAXDJ2Y3IQRB7PGWZJ4XRWS3NZ2SRKCMVEXD3EPNUJ4L4R3ZCNWBLMKU",
	Testnet: "CCOLZ6FEOF7B5OZB7KPAJNV4ODKJ5Z4NW36LGPBVWMUFOSIQ5NQ3QNFH",
}

// Defaults returns the compiled-in contract identifiers for n. Unknown
// networks get the Testnet table, matching Resolve's fallback.
func Defaults(n Network) ContractDefaults {
	if n != Mainnet {
		n = Testnet
	}
	return ContractDefaults{
		IssuanceContractID: defaultIssuanceContractIDs[n],
		VaultContractID:    defaultVaultContractIDs[n],
	}
}

// Merge builds the effective configuration for n. Each contract ID is taken
// from the server when non-empty and from Defaults(n) otherwise, independently
// of the other.
func Merge(n Network, server models.ServerConfig) models.NetworkConfig {
	defaults := Defaults(n)
	cfg := models.NetworkConfig{
		RPCURL:             server.RPCURL,
		NetworkPassphrase:  server.NetworkPassphrase,
		IssuanceContractID: server.IssuanceContractID,
		VaultContractID:    server.VaultContractID,
	}
	if cfg.IssuanceContractID == "" {
		cfg.IssuanceContractID = defaults.IssuanceContractID
	}
	if cfg.VaultContractID == "" {
		cfg.VaultContractID = defaults.VaultContractID
	}
	return cfg
}
