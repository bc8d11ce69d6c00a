package models

// PrepareStoreRequest asks the backend for an unsigned Vault store transaction.
type PrepareStoreRequest struct {
	Owner           string         `json:"owner"`
	VcID            VcID           `json:"vcId"`
	DIDURI          string         `json:"didUri"`
	Fields          map[string]any `json:"fields"`
	VaultContractID string         `json:"vaultContractId,omitempty"`
	Issuer          string         `json:"issuer,omitempty"`
}

// PrepareIssueRequest asks the backend for an unsigned Issuance transaction.
// VcData is the serialized credential.
type PrepareIssueRequest struct {
	Owner           string `json:"owner"`
	VcID            VcID   `json:"vcId"`
	VcData          string `json:"vcData"`
	VaultContractID string `json:"vaultContractId,omitempty"`
	Issuer          string `json:"issuer,omitempty"`
	IssuerDID       string `json:"issuerDid,omitempty"`
}

// UnsignedTransaction is an XDR envelope built by the backend. The client
// never inspects it; it is handed to an external signer as-is.
type UnsignedTransaction struct {
	UnsignedXDR string `json:"unsignedXdr"`
}
