package mockapi

import (
	"encoding/base64"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/acta-build/acta-go/pkg/acta/models"
	dErrors "github.com/acta-build/acta-go/pkg/domain-errors"
)

var (
	// ErrNotFound is returned for unknown credentials.
	ErrNotFound = dErrors.New(dErrors.CodeNotFound, "credential not found")
	// ErrAlreadyStored is returned when a vc id is committed twice.
	ErrAlreadyStored = dErrors.New(dErrors.CodeConflict, "credential already stored")
	// ErrUnknownTransaction is returned for signed XDR that was never prepared
	// or was already submitted.
	ErrUnknownTransaction = dErrors.New(dErrors.CodeBadRequest, "transaction was not prepared by this backend")
)

type txKind string

const (
	txKindStore txKind = "store"
	txKindIssue txKind = "issue"
)

const statusValid models.VerificationStatus = "valid"

// envelope is what the mock encodes into an unsigned XDR string. Wallets
// sign it without changing the payload.
type envelope struct {
	Kind  txKind      `json:"kind"`
	Owner string      `json:"owner"`
	VcID  models.VcID `json:"vcId"`
	Nonce string      `json:"nonce"`
}

func (e envelope) encode() string {
	raw, _ := json.Marshal(e)
	return base64.StdEncoding.EncodeToString(raw)
}

func decodeEnvelope(xdr string) (envelope, error) {
	raw, err := base64.StdEncoding.DecodeString(xdr)
	if err != nil {
		return envelope{}, dErrors.Wrap(err, dErrors.CodeBadRequest, "signed xdr is not valid base64")
	}
	var e envelope
	if err := json.Unmarshal(raw, &e); err != nil || e.Nonce == "" {
		return envelope{}, ErrUnknownTransaction
	}
	return e, nil
}

type preparedTx struct {
	envelope        envelope
	document        json.RawMessage
	vaultContractID string
}

// vaultEntry is a credential held by the Vault contract.
type vaultEntry struct {
	owner           string
	vcID            models.VcID
	document        json.RawMessage
	vaultContractID string
	status          models.VerificationStatus
	since           time.Time
	txID            string
}

// registryEntry is an issuance recorded by the Issuance contract.
type registryEntry struct {
	status models.VerificationStatus
	since  time.Time
	txID   string
}

// Store is the in-memory ledger behind the mock backend. It is safe for
// concurrent access and does not persist across restarts.
type Store struct {
	mu       sync.RWMutex
	now      func() time.Time
	prepared map[string]preparedTx
	vault    map[models.VcID]vaultEntry
	registry map[models.VcID]registryEntry
}

// NewStore constructs an empty ledger using now as its clock.
func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		now:      now,
		prepared: make(map[string]preparedTx),
		vault:    make(map[models.VcID]vaultEntry),
		registry: make(map[models.VcID]registryEntry),
	}
}

// Prepare records a pending transaction and returns its unsigned XDR.
func (s *Store) Prepare(kind txKind, owner string, vcID models.VcID, document json.RawMessage, vaultContractID string) string {
	env := envelope{Kind: kind, Owner: owner, VcID: vcID, Nonce: uuid.NewString()}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.prepared[env.Nonce] = preparedTx{envelope: env, document: document, vaultContractID: vaultContractID}
	return env.encode()
}

// Submit commits a signed transaction prepared earlier. Store transactions
// land in the vault only; issue transactions land in both the registry and
// the vault. An empty owner skips the owner check.
func (s *Store) Submit(signedXDR string, vcID models.VcID, owner string) (*models.StoreResult, error) {
	env, err := decodeEnvelope(signedXDR)
	if err != nil {
		return nil, err
	}
	if env.VcID != vcID {
		return nil, dErrors.New(dErrors.CodeValidation, "vcId does not match the signed transaction")
	}
	if owner != "" && owner != env.Owner {
		return nil, dErrors.New(dErrors.CodeValidation, "owner does not match the signed transaction")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.prepared[env.Nonce]
	if !ok || tx.envelope != env {
		return nil, ErrUnknownTransaction
	}
	if _, exists := s.vault[vcID]; exists {
		return nil, ErrAlreadyStored
	}
	delete(s.prepared, env.Nonce)

	txID := uuid.NewString()
	now := s.now().UTC()
	result := &models.StoreResult{VcID: vcID, TxID: txID}
	if env.Kind == txKindIssue {
		s.registry[vcID] = registryEntry{status: statusValid, since: now, txID: txID}
	}
	if issued, ok := s.registry[vcID]; ok {
		result.IssueTxID = issued.txID
	}

	entry := vaultEntry{
		owner:           env.Owner,
		vcID:            vcID,
		document:        tx.document,
		vaultContractID: tx.vaultContractID,
		status:          statusValid,
		since:           now,
		txID:            txID,
	}
	s.vault[vcID] = entry
	result.Verification = entry.snapshot()
	return result, nil
}

// Issue records a credential issued by the backend itself, bypassing the
// prepare and sign steps.
func (s *Store) Issue(owner string, vcID models.VcID, document json.RawMessage, vaultContractID string) (*models.CreateCredentialResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.vault[vcID]; exists {
		return nil, ErrAlreadyStored
	}

	txID := uuid.NewString()
	now := s.now().UTC()
	s.registry[vcID] = registryEntry{status: statusValid, since: now, txID: txID}
	s.vault[vcID] = vaultEntry{
		owner:           owner,
		vcID:            vcID,
		document:        document,
		vaultContractID: vaultContractID,
		status:          statusValid,
		since:           now,
		txID:            txID,
	}
	return &models.CreateCredentialResult{VcID: vcID, TxID: txID}, nil
}

// Revoke marks a credential revoked in the registry. The vault copy is left
// untouched, so the two verification paths disagree afterwards.
func (s *Store) Revoke(vcID models.VcID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.registry[vcID]
	if !ok {
		return ErrNotFound
	}
	entry.status = "revoked"
	entry.since = s.now().UTC()
	s.registry[vcID] = entry
	return nil
}

// VaultStatus returns the vault's view of a credential owned by owner.
func (s *Store) VaultStatus(owner string, vcID models.VcID) (*models.VerificationSnapshot, error) {
	entry, err := s.find(owner, vcID)
	if err != nil {
		return nil, err
	}
	return entry.snapshot(), nil
}

// RegistryStatus returns the Issuance registry's view of a credential.
func (s *Store) RegistryStatus(vcID models.VcID) (*models.VerificationSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.registry[vcID]
	if !ok {
		return nil, ErrNotFound
	}
	return &models.VerificationSnapshot{
		VcID:   vcID,
		Status: entry.status,
		Since:  entry.since.Format(time.RFC3339),
	}, nil
}

// ListByOwner returns the owner's vc ids, oldest first.
func (s *Store) ListByOwner(owner string) []models.VcID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]vaultEntry, 0)
	for _, entry := range s.vault {
		if entry.owner == owner {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].since.Equal(entries[j].since) {
			return entries[i].vcID < entries[j].vcID
		}
		return entries[i].since.Before(entries[j].since)
	})

	ids := make([]models.VcID, len(entries))
	for i, entry := range entries {
		ids[i] = entry.vcID
	}
	return ids
}

// Document returns the stored credential content.
func (s *Store) Document(owner string, vcID models.VcID) (json.RawMessage, error) {
	entry, err := s.find(owner, vcID)
	if err != nil {
		return nil, err
	}
	return entry.document, nil
}

// Len returns the number of credentials in the vault.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vault)
}

func (s *Store) find(owner string, vcID models.VcID) (vaultEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.vault[vcID]
	if !ok || entry.owner != owner {
		return vaultEntry{}, ErrNotFound
	}
	return entry, nil
}

func (e vaultEntry) snapshot() *models.VerificationSnapshot {
	return &models.VerificationSnapshot{
		VcID:   e.vcID,
		Status: e.status,
		Since:  e.since.Format(time.RFC3339),
	}
}
