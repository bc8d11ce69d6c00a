package models

// CredentialVariant tags the shape of a credential creation request.
type CredentialVariant string

const (
	// VariantPresigned commits a credential from an already signed transaction.
	VariantPresigned CredentialVariant = "presigned"
	// VariantServerIssued asks the backend to issue and store the credential.
	VariantServerIssued CredentialVariant = "server_issued"
)

// CreateCredentialRequest is the body of POST /credentials. It is a closed
// sum type: only PresignedCredential and ServerIssuedCredential implement it,
// so the two payload shapes can never be mixed in one request.
type CreateCredentialRequest interface {
	Variant() CredentialVariant
	isCreateCredentialRequest()
}

// PresignedCredential submits a transaction the caller already signed.
type PresignedCredential struct {
	SignedXDR string `json:"signedXdr"`
	VcID      VcID   `json:"vcId"`
}

// ServerIssuedCredential lets the backend build, sign and submit the issuance.
type ServerIssuedCredential struct {
	Owner           string `json:"owner"`
	VcID            VcID   `json:"vcId"`
	VcData          string `json:"vcData"`
	VaultContractID string `json:"vaultContractId"`
	DIDURI          string `json:"didUri,omitempty"`
}

func (PresignedCredential) Variant() CredentialVariant    { return VariantPresigned }
func (ServerIssuedCredential) Variant() CredentialVariant { return VariantServerIssued }

func (PresignedCredential) isCreateCredentialRequest()    {}
func (ServerIssuedCredential) isCreateCredentialRequest() {}

// CredentialID returns the VcID carried by either variant.
func CredentialID(req CreateCredentialRequest) VcID {
	return MatchCredential(req,
		func(p PresignedCredential) VcID { return p.VcID },
		func(s ServerIssuedCredential) VcID { return s.VcID },
	)
}

// IsNilCredential reports whether req is nil or a nil pointer to a variant.
func IsNilCredential(req CreateCredentialRequest) bool {
	switch r := req.(type) {
	case nil:
		return true
	case *PresignedCredential:
		return r == nil
	case *ServerIssuedCredential:
		return r == nil
	}
	return false
}

// MatchCredential dispatches on the request variant. Both handlers are
// required, so every call site covers every variant. A nil request, including
// a nil variant pointer, yields the zero value of T.
func MatchCredential[T any](
	req CreateCredentialRequest,
	onPresigned func(PresignedCredential) T,
	onServerIssued func(ServerIssuedCredential) T,
) T {
	switch r := req.(type) {
	case PresignedCredential:
		return onPresigned(r)
	case *PresignedCredential:
		if r == nil {
			break
		}
		return onPresigned(*r)
	case ServerIssuedCredential:
		return onServerIssued(r)
	case *ServerIssuedCredential:
		if r == nil {
			break
		}
		return onServerIssued(*r)
	}
	var zero T
	return zero
}

// CreateCredentialResult is the response of POST /credentials.
type CreateCredentialResult struct {
	VcID VcID   `json:"vc_id"`
	TxID string `json:"tx_id"`
}
