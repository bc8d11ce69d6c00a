package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/acta-build/acta-go/pkg/acta/models"
)

func (a *app) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the network configuration, with contract IDs filled from network defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.callContext(cmd)
			defer cancel()

			cfg, err := a.service.GetConfig(ctx)
			if err != nil {
				return fmt.Errorf("unable to get config: %w", err)
			}
			return printJSON(cmd, cfg)
		},
	}
}

func (a *app) credentialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credential",
		Short: "Credential commands",
	}
	cmd.AddCommand(a.createCredentialCmd())
	return cmd
}

func (a *app) createCredentialCmd() *cobra.Command {
	var (
		presigned    models.PresignedCredential
		serverIssued models.ServerIssuedCredential
		vcID         string
		vcData       string
	)

	result := &cobra.Command{
		Use:   "create",
		Short: "Create a credential from a signed transaction (--signed-xdr) or let the backend issue it (--owner, --vc-data)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var req models.CreateCredentialRequest
			if presigned.SignedXDR != "" {
				if serverIssued.Owner != "" || vcData != "" {
					return fmt.Errorf("--signed-xdr cannot be combined with --owner or --vc-data")
				}
				presigned.VcID = models.VcID(vcID)
				req = presigned
			} else {
				if serverIssued.Owner == "" || vcData == "" {
					return fmt.Errorf("either --signed-xdr or both --owner and --vc-data are required")
				}
				data, err := readValue(vcData)
				if err != nil {
					return err
				}
				serverIssued.VcID = models.VcID(vcID)
				serverIssued.VcData = data
				req = serverIssued
			}

			ctx, cancel := a.callContext(cmd)
			defer cancel()

			res, err := a.service.CreateCredential(ctx, req)
			if err != nil {
				return fmt.Errorf("unable to create credential: %w", err)
			}
			return printJSON(cmd, res)
		},
	}

	result.Flags().StringVar(&vcID, "vc-id", "", "Credential ID.")
	result.Flags().StringVar(&presigned.SignedXDR, "signed-xdr", "", "Signed issuance transaction.")
	result.Flags().StringVar(&serverIssued.Owner, "owner", "", "Owner account of the credential.")
	result.Flags().StringVar(&vcData, "vc-data", "", "Credential data, or @path to read it from a file.")
	result.Flags().StringVar(&serverIssued.VaultContractID, "vault-contract-id", "", "Vault contract to store the credential in.")
	result.Flags().StringVar(&serverIssued.DIDURI, "did-uri", "", "DID URI of the owner.")
	_ = result.MarkFlagRequired("vc-id")
	return result
}

func (a *app) txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Prepare unsigned transactions",
	}
	cmd.AddCommand(a.prepareStoreCmd())
	cmd.AddCommand(a.prepareIssueCmd())
	return cmd
}

func (a *app) prepareStoreCmd() *cobra.Command {
	var (
		req    models.PrepareStoreRequest
		vcID   string
		fields []string
	)

	result := &cobra.Command{
		Use:   "prepare-store",
		Short: "Prepare an unsigned transaction storing a credential in the owner's vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := parseFields(fields)
			if err != nil {
				return err
			}
			req.VcID = models.VcID(vcID)
			req.Fields = parsed

			ctx, cancel := a.callContext(cmd)
			defer cancel()

			tx, err := a.service.PrepareStoreTx(ctx, req)
			if err != nil {
				return fmt.Errorf("unable to prepare store transaction: %w", err)
			}
			return printJSON(cmd, tx)
		},
	}

	result.Flags().StringVar(&req.Owner, "owner", "", "Owner account.")
	result.Flags().StringVar(&vcID, "vc-id", "", "Credential ID.")
	result.Flags().StringVar(&req.DIDURI, "did-uri", "", "DID URI of the owner.")
	result.Flags().StringArrayVar(&fields, "field", nil, "Credential field as key=value; JSON values are decoded. Repeatable.")
	result.Flags().StringVar(&req.VaultContractID, "vault-contract-id", "", "Vault contract override.")
	result.Flags().StringVar(&req.Issuer, "issuer", "", "Issuer account.")
	_ = result.MarkFlagRequired("owner")
	_ = result.MarkFlagRequired("vc-id")
	return result
}

func (a *app) prepareIssueCmd() *cobra.Command {
	var (
		req    models.PrepareIssueRequest
		vcID   string
		vcData string
	)

	result := &cobra.Command{
		Use:   "prepare-issue",
		Short: "Prepare an unsigned issuance transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := readValue(vcData)
			if err != nil {
				return err
			}
			req.VcID = models.VcID(vcID)
			req.VcData = data

			ctx, cancel := a.callContext(cmd)
			defer cancel()

			tx, err := a.service.PrepareIssueTx(ctx, req)
			if err != nil {
				return fmt.Errorf("unable to prepare issue transaction: %w", err)
			}
			return printJSON(cmd, tx)
		},
	}

	result.Flags().StringVar(&req.Owner, "owner", "", "Owner account.")
	result.Flags().StringVar(&vcID, "vc-id", "", "Credential ID.")
	result.Flags().StringVar(&vcData, "vc-data", "", "Credential data, or @path to read it from a file.")
	result.Flags().StringVar(&req.VaultContractID, "vault-contract-id", "", "Vault contract override.")
	result.Flags().StringVar(&req.Issuer, "issuer", "", "Issuer account.")
	result.Flags().StringVar(&req.IssuerDID, "issuer-did", "", "Issuer DID.")
	_ = result.MarkFlagRequired("owner")
	_ = result.MarkFlagRequired("vc-id")
	_ = result.MarkFlagRequired("vc-data")
	return result
}

func (a *app) vaultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Vault contract commands",
	}
	cmd.AddCommand(a.vaultStoreCmd())
	cmd.AddCommand(a.vaultVerifyCmd())
	cmd.AddCommand(a.vaultListCmd())
	cmd.AddCommand(a.vaultGetCmd())
	return cmd
}

// storeOutput adds the lifecycle stage and the server's raw status to a store
// result. The status is printed as sent, never interpreted.
type storeOutput struct {
	*models.StoreResult
	Stage          models.LifecycleStage     `json:"stage"`
	ReportedStatus models.VerificationStatus `json:"reported_status,omitempty"`
}

func (a *app) vaultStoreCmd() *cobra.Command {
	var (
		sub  models.SignedSubmission
		vcID string
	)

	result := &cobra.Command{
		Use:   "store",
		Short: "Submit a signed store transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sub.VcID = models.VcID(vcID)

			ctx, cancel := a.callContext(cmd)
			defer cancel()

			res, err := a.service.VaultStore(ctx, sub)
			if err != nil {
				return fmt.Errorf("unable to store credential: %w", err)
			}
			return printJSON(cmd, storeOutput{StoreResult: res, Stage: res.Stage(), ReportedStatus: res.ReportedStatus()})
		},
	}

	result.Flags().StringVar(&sub.SignedXDR, "signed-xdr", "", "Signed store transaction.")
	result.Flags().StringVar(&vcID, "vc-id", "", "Credential ID.")
	result.Flags().StringVar(&sub.Owner, "owner", "", "Owner account.")
	result.Flags().StringVar(&sub.VaultContractID, "vault-contract-id", "", "Vault contract override.")
	_ = result.MarkFlagRequired("signed-xdr")
	_ = result.MarkFlagRequired("vc-id")
	return result
}

func vaultQueryFlags(cmd *cobra.Command, q *models.VaultQuery, vcID *string) {
	cmd.Flags().StringVar(&q.Owner, "owner", "", "Owner account.")
	cmd.Flags().StringVar(vcID, "vc-id", "", "Credential ID.")
	cmd.Flags().StringVar(&q.VaultContractID, "vault-contract-id", "", "Vault contract override.")
	_ = cmd.MarkFlagRequired("owner")
	_ = cmd.MarkFlagRequired("vc-id")
}

func (a *app) vaultVerifyCmd() *cobra.Command {
	var (
		q    models.VaultQuery
		vcID string
	)

	result := &cobra.Command{
		Use:   "verify",
		Short: "Read a credential's status from the Vault contract",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q.VcID = models.VcID(vcID)

			ctx, cancel := a.callContext(cmd)
			defer cancel()

			snap, err := a.service.VaultVerify(ctx, q)
			if err != nil {
				return fmt.Errorf("unable to verify credential in vault: %w", err)
			}
			return printJSON(cmd, snap)
		},
	}
	vaultQueryFlags(result, &q, &vcID)
	return result
}

func (a *app) vaultListCmd() *cobra.Command {
	var q models.VaultOwnerQuery

	result := &cobra.Command{
		Use:   "list",
		Short: "List an owner's credential IDs directly from the Vault contract",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.callContext(cmd)
			defer cancel()

			ids, err := a.service.VaultListVcIDsDirect(ctx, q)
			if err != nil {
				return fmt.Errorf("unable to list credentials: %w", err)
			}
			return printJSON(cmd, ids)
		},
	}

	result.Flags().StringVar(&q.Owner, "owner", "", "Owner account.")
	result.Flags().StringVar(&q.VaultContractID, "vault-contract-id", "", "Vault contract override.")
	_ = result.MarkFlagRequired("owner")
	return result
}

func (a *app) vaultGetCmd() *cobra.Command {
	var (
		q    models.VaultQuery
		vcID string
	)

	result := &cobra.Command{
		Use:   "get",
		Short: "Read a credential directly from the Vault contract",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q.VcID = models.VcID(vcID)

			ctx, cancel := a.callContext(cmd)
			defer cancel()

			vc, err := a.service.VaultGetVcDirect(ctx, q)
			if err != nil {
				return fmt.Errorf("unable to get credential: %w", err)
			}
			if vc == nil {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "null")
				return err
			}
			return printJSON(cmd, vc)
		},
	}
	vaultQueryFlags(result, &q, &vcID)
	return result
}

func (a *app) verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Issuance registry verification",
	}
	cmd.AddCommand(a.verifyStatusCmd())
	return cmd
}

// comparison reports both verification sources side by side. They are
// independent and may disagree.
type comparison struct {
	Registry *models.VerificationSnapshot `json:"registry"`
	Vault    *models.VerificationSnapshot `json:"vault"`
	Agree    bool                         `json:"agree"`
}

func (a *app) verifyStatusCmd() *cobra.Command {
	var (
		both bool
		q    models.VaultQuery
	)

	result := &cobra.Command{
		Use:   "status [vc-id]",
		Short: "Read a credential's status from the Issuance registry",
		Long:  "With --both the Vault contract is queried concurrently and both answers are printed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vcID, err := models.ParseVcID(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := a.callContext(cmd)
			defer cancel()

			if !both {
				snap, err := a.service.VerifyStatus(ctx, vcID)
				if err != nil {
					return fmt.Errorf("unable to verify credential: %w", err)
				}
				return printJSON(cmd, snap)
			}

			if q.Owner == "" {
				return fmt.Errorf("--owner is required with --both")
			}
			q.VcID = vcID

			var out comparison
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				snap, err := a.service.VerifyStatus(gctx, vcID)
				if err != nil {
					return fmt.Errorf("registry: %w", err)
				}
				out.Registry = snap
				return nil
			})
			g.Go(func() error {
				snap, err := a.service.VaultVerify(gctx, q)
				if err != nil {
					return fmt.Errorf("vault: %w", err)
				}
				out.Vault = snap
				return nil
			})
			if err := g.Wait(); err != nil {
				return fmt.Errorf("unable to verify credential: %w", err)
			}

			out.Agree = out.Registry.Status == out.Vault.Status
			return printJSON(cmd, out)
		},
	}

	result.Flags().BoolVar(&both, "both", false, "Also query the Vault contract and compare.")
	result.Flags().StringVar(&q.Owner, "owner", "", "Owner account, required with --both.")
	result.Flags().StringVar(&q.VaultContractID, "vault-contract-id", "", "Vault contract override.")
	return result
}

// parseFields turns key=value pairs into a field map. Values that parse as
// JSON keep their type; anything else is a string.
func parseFields(pairs []string) (map[string]any, error) {
	fields := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --field %q, expected key=value", pair)
		}
		var decoded any
		if err := json.Unmarshal([]byte(value), &decoded); err == nil {
			fields[key] = decoded
		} else {
			fields[key] = value
		}
	}
	return fields, nil
}

// readValue returns v, or the contents of the file when v is @path.
func readValue(v string) (string, error) {
	path, ok := strings.CutPrefix(v, "@")
	if !ok {
		return v, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
