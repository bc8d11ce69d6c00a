package mockapi

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/acta-build/acta-go/pkg/acta/models"
	"github.com/acta-build/acta-go/pkg/platform/httputil"
)

// Register mounts the ACTA API routes on r.
func (b *Backend) Register(r chi.Router) {
	r.Get("/config", b.HandleConfig)
	r.Post("/credentials", b.HandleCreateCredential)
	r.Post("/tx/prepare/store", b.HandlePrepareStore)
	r.Post("/tx/prepare/issue", b.HandlePrepareIssue)
	r.Post("/vault/store", b.HandleVaultStore)
	r.Post("/vault/verify", b.HandleVaultVerify)
	r.Get("/verify/{vcId}", b.HandleVerifyStatus)
	r.Post("/vault/list_vc_ids_direct", b.HandleListVcIDs)
	r.Post("/vault/get_vc_direct", b.HandleGetVc)

	// Not part of the ACTA API.
	r.Post("/mock/revoke/{vcId}", b.HandleRevoke)
}

// HandleConfig handles GET /config. Contract IDs are omitted when not
// configured.
func (b *Backend) HandleConfig(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, models.ServerConfig{
		RPCURL:             b.cfg.RPCURL,
		NetworkPassphrase:  b.cfg.NetworkPassphrase,
		IssuanceContractID: b.cfg.IssuanceContractID,
		VaultContractID:    b.cfg.VaultContractID,
	})
}

type createOutcome struct {
	result *models.CreateCredentialResult
	err    error
}

// HandleCreateCredential handles POST /credentials for both payload variants.
func (b *Backend) HandleCreateCredential(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[createCredentialRequest](w, r, b.logger)
	if !ok {
		return
	}

	cred := req.Credential()
	out := models.MatchCredential(cred,
		func(p models.PresignedCredential) createOutcome {
			stored, err := b.store.Submit(p.SignedXDR, p.VcID, "")
			if err != nil {
				return createOutcome{err: err}
			}
			return createOutcome{result: &models.CreateCredentialResult{VcID: stored.VcID, TxID: stored.TxID}}
		},
		func(s models.ServerIssuedCredential) createOutcome {
			result, err := b.store.Issue(s.Owner, s.VcID, vcDocument(s.VcData), b.vaultContract(s.VaultContractID))
			return createOutcome{result: result, err: err}
		},
	)
	if out.err != nil {
		b.logger.WarnContext(ctx, "failed to create credential",
			"vc_id", models.CredentialID(cred),
			"variant", cred.Variant(),
			"error", out.err,
		)
		httputil.WriteError(w, out.err)
		return
	}

	b.credentialStored()
	httputil.WriteJSON(w, http.StatusCreated, out.result)
}

// HandlePrepareStore handles POST /tx/prepare/store.
func (b *Backend) HandlePrepareStore(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeAndPrepare[prepareStoreRequest](w, r, b.logger)
	if !ok {
		return
	}

	xdr := b.store.Prepare(txKindStore, req.Owner, req.VcID, req.document(), b.vaultContract(req.VaultContractID))
	b.metrics.PreparedTxTotal.WithLabelValues(string(txKindStore)).Inc()
	httputil.WriteJSON(w, http.StatusOK, models.UnsignedTransaction{UnsignedXDR: xdr})
}

// HandlePrepareIssue handles POST /tx/prepare/issue.
func (b *Backend) HandlePrepareIssue(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeAndPrepare[prepareIssueRequest](w, r, b.logger)
	if !ok {
		return
	}

	xdr := b.store.Prepare(txKindIssue, req.Owner, req.VcID, vcDocument(req.VcData), b.vaultContract(req.VaultContractID))
	b.metrics.PreparedTxTotal.WithLabelValues(string(txKindIssue)).Inc()
	httputil.WriteJSON(w, http.StatusOK, models.UnsignedTransaction{UnsignedXDR: xdr})
}

// HandleVaultStore handles POST /vault/store.
func (b *Backend) HandleVaultStore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[storeRequest](w, r, b.logger)
	if !ok {
		return
	}

	result, err := b.store.Submit(req.SignedXDR, req.VcID, req.Owner)
	if err != nil {
		b.logger.WarnContext(ctx, "failed to store credential",
			"vc_id", req.VcID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	if b.cfg.OmitVerification {
		result.Verification = nil
	}

	b.credentialStored()
	httputil.WriteJSON(w, http.StatusOK, result)
}

// HandleVaultVerify handles POST /vault/verify.
func (b *Backend) HandleVaultVerify(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeAndPrepare[vaultQueryRequest](w, r, b.logger)
	if !ok {
		return
	}

	snap, err := b.store.VaultStatus(req.Owner, req.VcID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, snap)
}

// HandleVerifyStatus handles GET /verify/{vcId}.
func (b *Backend) HandleVerifyStatus(w http.ResponseWriter, r *http.Request) {
	vcID, err := pathVcID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	snap, err := b.store.RegistryStatus(vcID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, snap)
}

// HandleListVcIDs handles POST /vault/list_vc_ids_direct.
func (b *Backend) HandleListVcIDs(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeAndPrepare[ownerQueryRequest](w, r, b.logger)
	if !ok {
		return
	}

	ids := b.store.ListByOwner(req.Owner)
	httputil.WriteJSON(w, http.StatusOK, map[string]any{b.directKey(models.FieldVcIDs): ids})
}

// HandleGetVc handles POST /vault/get_vc_direct.
func (b *Backend) HandleGetVc(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeAndPrepare[vaultQueryRequest](w, r, b.logger)
	if !ok {
		return
	}

	doc, err := b.store.Document(req.Owner, req.VcID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]json.RawMessage{b.directKey(models.FieldVC): doc})
}

// HandleRevoke handles POST /mock/revoke/{vcId}, flipping the registry status
// so the two verification paths can be seen to disagree.
func (b *Backend) HandleRevoke(w http.ResponseWriter, r *http.Request) {
	vcID, err := pathVcID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := b.store.Revoke(vcID); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// pathVcID reads {vcId}. chi leaves it escaped when the path carried an
// encoded slash.
func pathVcID(r *http.Request) (models.VcID, error) {
	raw := chi.URLParam(r, "vcId")
	if unescaped, err := url.PathUnescape(raw); err == nil {
		raw = unescaped
	}
	return models.ParseVcID(raw)
}

// directKey returns the field direct reads answer under.
func (b *Backend) directKey(current string) string {
	if b.cfg.LegacyResultKey {
		return models.FieldResult
	}
	return current
}

func (b *Backend) vaultContract(requested string) string {
	if requested != "" {
		return requested
	}
	return b.cfg.VaultContractID
}

func (b *Backend) credentialStored() {
	b.metrics.CredentialsStored.Inc()
	b.metrics.StoredCredentials.Set(float64(b.store.Len()))
}
