package mockapi

import (
	"encoding/json"
	"strings"

	"github.com/acta-build/acta-go/pkg/acta/models"
	dErrors "github.com/acta-build/acta-go/pkg/domain-errors"
)

// Request bodies accepted by the mock backend. Each embeds or mirrors the
// client model and adds the validation a real backend performs.

type createCredentialRequest struct {
	SignedXDR       string `json:"signedXdr"`
	VcID            string `json:"vcId"`
	Owner           string `json:"owner"`
	VcData          string `json:"vcData"`
	VaultContractID string `json:"vaultContractId"`
	DIDURI          string `json:"didUri"`
}

func (r *createCredentialRequest) Normalize() {
	r.VcID = strings.TrimSpace(r.VcID)
	r.Owner = strings.TrimSpace(r.Owner)
}

func (r *createCredentialRequest) Validate() error {
	if r.VcID == "" {
		return dErrors.New(dErrors.CodeValidation, "vcId is required")
	}
	if r.SignedXDR != "" {
		if r.Owner != "" || r.VcData != "" {
			return dErrors.New(dErrors.CodeValidation, "signedXdr cannot be combined with server issued fields")
		}
		return nil
	}
	if r.Owner == "" {
		return dErrors.New(dErrors.CodeValidation, "owner is required")
	}
	if r.VcData == "" {
		return dErrors.New(dErrors.CodeValidation, "vcData is required")
	}
	return nil
}

// Credential converts the wire body into the client's sum type.
func (r *createCredentialRequest) Credential() models.CreateCredentialRequest {
	if r.SignedXDR != "" {
		return models.PresignedCredential{SignedXDR: r.SignedXDR, VcID: models.VcID(r.VcID)}
	}
	return models.ServerIssuedCredential{
		Owner:           r.Owner,
		VcID:            models.VcID(r.VcID),
		VcData:          r.VcData,
		VaultContractID: r.VaultContractID,
		DIDURI:          r.DIDURI,
	}
}

type prepareStoreRequest struct {
	models.PrepareStoreRequest
}

func (r *prepareStoreRequest) Normalize() {
	r.Owner = strings.TrimSpace(r.Owner)
}

func (r *prepareStoreRequest) Validate() error {
	if r.Owner == "" {
		return dErrors.New(dErrors.CodeValidation, "owner is required")
	}
	if r.VcID.IsNil() {
		return dErrors.New(dErrors.CodeValidation, "vcId is required")
	}
	return nil
}

// document is what the vault returns for credentials stored from fields.
func (r *prepareStoreRequest) document() json.RawMessage {
	raw, _ := json.Marshal(map[string]any{
		"id":     r.VcID,
		"didUri": r.DIDURI,
		"fields": r.Fields,
	})
	return raw
}

type prepareIssueRequest struct {
	models.PrepareIssueRequest
}

func (r *prepareIssueRequest) Normalize() {
	r.Owner = strings.TrimSpace(r.Owner)
}

func (r *prepareIssueRequest) Validate() error {
	if r.Owner == "" {
		return dErrors.New(dErrors.CodeValidation, "owner is required")
	}
	if r.VcID.IsNil() {
		return dErrors.New(dErrors.CodeValidation, "vcId is required")
	}
	if r.VcData == "" {
		return dErrors.New(dErrors.CodeValidation, "vcData is required")
	}
	return nil
}

type storeRequest struct {
	models.SignedSubmission
}

func (r *storeRequest) Validate() error {
	if r.SignedXDR == "" {
		return dErrors.New(dErrors.CodeValidation, "signedXdr is required")
	}
	if r.VcID.IsNil() {
		return dErrors.New(dErrors.CodeValidation, "vcId is required")
	}
	return nil
}

type vaultQueryRequest struct {
	models.VaultQuery
}

func (r *vaultQueryRequest) Validate() error {
	if r.Owner == "" {
		return dErrors.New(dErrors.CodeValidation, "owner is required")
	}
	if r.VcID.IsNil() {
		return dErrors.New(dErrors.CodeValidation, "vcId is required")
	}
	return nil
}

type ownerQueryRequest struct {
	models.VaultOwnerQuery
}

func (r *ownerQueryRequest) Validate() error {
	if r.Owner == "" {
		return dErrors.New(dErrors.CodeValidation, "owner is required")
	}
	return nil
}

// vcDocument keeps JSON credential data as-is and quotes anything else.
func vcDocument(vcData string) json.RawMessage {
	if json.Valid([]byte(vcData)) {
		return json.RawMessage(vcData)
	}
	quoted, _ := json.Marshal(vcData)
	return quoted
}
