package models

import "time"

// VerificationStatus is a server-defined status string. The client does not
// enumerate or interpret its values.
type VerificationStatus string

// SignedSubmission is the body of POST /vault/store.
type SignedSubmission struct {
	SignedXDR       string `json:"signedXdr"`
	VcID            VcID   `json:"vcId"`
	Owner           string `json:"owner,omitempty"`
	VaultContractID string `json:"vaultContractId,omitempty"`
}

// StoreResult is the response of POST /vault/store. Verification reflects the
// state known right after submission and may be absent; it is not kept fresh.
type StoreResult struct {
	VcID         VcID                  `json:"vc_id"`
	TxID         string                `json:"tx_id"`
	IssueTxID    string                `json:"issue_tx_id,omitempty"`
	Verification *VerificationSnapshot `json:"verification,omitempty"`
}

// VerificationSnapshot is the status of a credential at the time of a query.
type VerificationSnapshot struct {
	VcID   VcID               `json:"vc_id,omitempty"`
	Status VerificationStatus `json:"status"`
	Since  string             `json:"since,omitempty"`
}

// SinceTime parses Since as RFC 3339. It reports false when Since is empty or
// in another format.
func (v VerificationSnapshot) SinceTime() (time.Time, bool) {
	if v.Since == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, v.Since)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// VaultQuery addresses one credential in an owner's vault.
type VaultQuery struct {
	Owner           string `json:"owner"`
	VcID            VcID   `json:"vcId"`
	VaultContractID string `json:"vaultContractId,omitempty"`
}

// VaultOwnerQuery addresses an owner's vault.
type VaultOwnerQuery struct {
	Owner           string `json:"owner"`
	VaultContractID string `json:"vaultContractId,omitempty"`
}

// LifecycleStage names where a credential is in the prepare/sign/submit flow.
// Verification is polled, so a submitted credential that is not yet verified
// is indistinguishable from one that failed.
type LifecycleStage string

const (
	StageUnprepared       LifecycleStage = "unprepared"
	StagePreparedUnsigned LifecycleStage = "prepared_unsigned"
	StageSigned           LifecycleStage = "signed"
	StageSubmitted        LifecycleStage = "submitted"
	StageVerified         LifecycleStage = "verified"
	StageUnverified       LifecycleStage = "unverified"
)

// Stage is StageSubmitted for every successful store. An attached snapshot
// does not make the credential verified: its status is server-defined and a
// failed credential looks the same as one that is not yet verified.
func (r StoreResult) Stage() LifecycleStage {
	return StageSubmitted
}

// ReportedStatus returns the status of the attached snapshot as sent by the
// server, or "" when the store response carried none.
func (r StoreResult) ReportedStatus() VerificationStatus {
	if r.Verification == nil {
		return ""
	}
	return r.Verification.Status
}
