package mockapi

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/acta-build/acta-go/pkg/acta/models"
	dErrors "github.com/acta-build/acta-go/pkg/domain-errors"
)

type StoreSuite struct {
	suite.Suite
	store *Store
	clock time.Time
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.clock = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.store = NewStore(func() time.Time {
		s.clock = s.clock.Add(time.Second)
		return s.clock
	})
}

func (s *StoreSuite) TestPrepareAndSubmit() {
	doc := json.RawMessage(`{"fields":{"a":1}}`)

	s.Run("store transaction lands in the vault only", func() {
		xdr := s.store.Prepare(txKindStore, "GOWNER", "vc-store", doc, "CVAULT")

		res, err := s.store.Submit(xdr, "vc-store", "GOWNER")
		s.Require().NoError(err)
		s.Equal(models.VcID("vc-store"), res.VcID)
		s.NotEmpty(res.TxID)
		s.Empty(res.IssueTxID)
		s.Require().NotNil(res.Verification)
		s.Equal(statusValid, res.Verification.Status)

		_, err = s.store.RegistryStatus("vc-store")
		s.ErrorIs(err, ErrNotFound)
	})

	s.Run("issue transaction lands in registry and vault", func() {
		xdr := s.store.Prepare(txKindIssue, "GOWNER", "vc-issue", doc, "CVAULT")

		res, err := s.store.Submit(xdr, "vc-issue", "")
		s.Require().NoError(err)
		s.Equal(res.TxID, res.IssueTxID)

		snap, err := s.store.RegistryStatus("vc-issue")
		s.Require().NoError(err)
		s.Equal(statusValid, snap.Status)
	})

	s.Run("signed xdr cannot be replayed", func() {
		xdr := s.store.Prepare(txKindStore, "GOWNER", "vc-replay", doc, "")
		_, err := s.store.Submit(xdr, "vc-replay", "")
		s.Require().NoError(err)

		_, err = s.store.Submit(xdr, "vc-replay", "")
		s.ErrorIs(err, ErrUnknownTransaction)
	})

	s.Run("vc id must match the transaction", func() {
		xdr := s.store.Prepare(txKindStore, "GOWNER", "vc-a", doc, "")
		_, err := s.store.Submit(xdr, "vc-b", "")
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("owner must match the transaction", func() {
		xdr := s.store.Prepare(txKindStore, "GOWNER", "vc-owner", doc, "")
		_, err := s.store.Submit(xdr, "vc-owner", "GSOMEONE")
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("re-encoded envelope cannot reuse a prepared nonce", func() {
		xdr := s.store.Prepare(txKindStore, "GOWNER", "vc-forged", doc, "")
		env, err := decodeEnvelope(xdr)
		s.Require().NoError(err)

		forged := env
		forged.Kind = txKindIssue
		_, err = s.store.Submit(forged.encode(), "vc-forged", "")
		s.ErrorIs(err, ErrUnknownTransaction)

		forged = env
		forged.Owner = "GTHIEF"
		_, err = s.store.Submit(forged.encode(), "vc-forged", "GTHIEF")
		s.ErrorIs(err, ErrUnknownTransaction)

		_, err = s.store.RegistryStatus("vc-forged")
		s.ErrorIs(err, ErrNotFound)

		_, err = s.store.Submit(xdr, "vc-forged", "GOWNER")
		s.Require().NoError(err)
	})

	s.Run("garbage xdr", func() {
		_, err := s.store.Submit("not base64!", "vc-x", "")
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))

		_, err = s.store.Submit("bm90IGpzb24=", "vc-x", "")
		s.ErrorIs(err, ErrUnknownTransaction)
	})
}

func (s *StoreSuite) TestIssue() {
	res, err := s.store.Issue("GOWNER", "vc-1", json.RawMessage(`"blob"`), "CVAULT")
	s.Require().NoError(err)
	s.Equal(models.VcID("vc-1"), res.VcID)
	s.NotEmpty(res.TxID)

	_, err = s.store.Issue("GOWNER", "vc-1", json.RawMessage(`"blob"`), "CVAULT")
	s.ErrorIs(err, ErrAlreadyStored)

	doc, err := s.store.Document("GOWNER", "vc-1")
	s.Require().NoError(err)
	s.JSONEq(`"blob"`, string(doc))
}

func (s *StoreSuite) TestOwnerScoping() {
	_, err := s.store.Issue("GOWNER", "vc-1", json.RawMessage(`{}`), "")
	s.Require().NoError(err)

	_, err = s.store.VaultStatus("GOTHER", "vc-1")
	s.ErrorIs(err, ErrNotFound)
	_, err = s.store.Document("GOTHER", "vc-1")
	s.ErrorIs(err, ErrNotFound)
	s.Empty(s.store.ListByOwner("GOTHER"))
}

func (s *StoreSuite) TestListByOwnerIsOrderedByStorage() {
	for _, id := range []models.VcID{"vc-c", "vc-a", "vc-b"} {
		_, err := s.store.Issue("GOWNER", id, json.RawMessage(`{}`), "")
		s.Require().NoError(err)
	}

	s.Equal([]models.VcID{"vc-c", "vc-a", "vc-b"}, s.store.ListByOwner("GOWNER"))
	s.Equal(3, s.store.Len())
}

func (s *StoreSuite) TestRevokeOnlyTouchesRegistry() {
	_, err := s.store.Issue("GOWNER", "vc-1", json.RawMessage(`{}`), "")
	s.Require().NoError(err)

	s.Require().NoError(s.store.Revoke("vc-1"))

	registry, err := s.store.RegistryStatus("vc-1")
	s.Require().NoError(err)
	s.Equal(models.VerificationStatus("revoked"), registry.Status)

	vault, err := s.store.VaultStatus("GOWNER", "vc-1")
	s.Require().NoError(err)
	s.Equal(statusValid, vault.Status)

	s.ErrorIs(s.store.Revoke("vc-unknown"), ErrNotFound)
}
