package cli

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/acta-build/acta-go/internal/platform/config"
	"github.com/acta-build/acta-go/pkg/acta"
	"github.com/acta-build/acta-go/pkg/acta/models"
)

// Service is the part of *acta.Client the commands call.
type Service interface {
	GetConfig(ctx context.Context) (*models.NetworkConfig, error)
	CreateCredential(ctx context.Context, req models.CreateCredentialRequest) (*models.CreateCredentialResult, error)
	PrepareStoreTx(ctx context.Context, req models.PrepareStoreRequest) (*models.UnsignedTransaction, error)
	PrepareIssueTx(ctx context.Context, req models.PrepareIssueRequest) (*models.UnsignedTransaction, error)
	VaultStore(ctx context.Context, sub models.SignedSubmission) (*models.StoreResult, error)
	VaultVerify(ctx context.Context, q models.VaultQuery) (*models.VerificationSnapshot, error)
	VerifyStatus(ctx context.Context, vcID models.VcID) (*models.VerificationSnapshot, error)
	VaultListVcIDsDirect(ctx context.Context, q models.VaultOwnerQuery) ([]models.VcID, error)
	VaultGetVcDirect(ctx context.Context, q models.VaultQuery) (json.RawMessage, error)
}

// Factory builds the Service for resolved settings.
type Factory func(cfg config.Client, logger *slog.Logger) (Service, error)

// NewClient is the production Factory.
func NewClient(cfg config.Client, logger *slog.Logger) (Service, error) {
	client, err := acta.New(cfg.BaseURL,
		acta.WithAPIKey(cfg.APIKey),
		acta.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	return client, nil
}

var _ Service = (*acta.Client)(nil)
