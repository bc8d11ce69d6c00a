package models

// NetworkConfig is the effective network configuration after resolution.
// IssuanceContractID and VaultContractID are always populated.
type NetworkConfig struct {
	RPCURL             string `json:"rpcUrl"`
	NetworkPassphrase  string `json:"networkPassphrase"`
	IssuanceContractID string `json:"issuanceContractId"`
	VaultContractID    string `json:"vaultContractId"`
}

// ServerConfig is the raw body of GET /config. Contract IDs may be omitted.
type ServerConfig struct {
	RPCURL             string `json:"rpcUrl"`
	NetworkPassphrase  string `json:"networkPassphrase"`
	IssuanceContractID string `json:"issuanceContractId,omitempty"`
	VaultContractID    string `json:"vaultContractId,omitempty"`
}
