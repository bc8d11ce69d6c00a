// Package cli implements actactl, a command line client for the ACTA API.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/acta-build/acta-go/internal/platform/config"
	"github.com/acta-build/acta-go/internal/platform/logger"
)

// app carries state resolved once per invocation.
type app struct {
	factory Factory
	cfg     config.Client
	logger  *slog.Logger
	service Service
}

// NewRootCommand creates actactl with all subcommands. The factory is called
// after flags and configuration are resolved.
func NewRootCommand(factory Factory) *cobra.Command {
	a := &app{factory: factory}

	root := &cobra.Command{
		Use:   "actactl",
		Short: "Issue, store and verify ACTA credentials from the command line.",
		Long: "actactl calls the ACTA API. Transactions are prepared unsigned; sign the returned XDR " +
			"with your wallet and submit it with 'vault store' or 'credential create --signed-xdr'.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().AddFlagSet(config.ClientFlagSet())

	root.AddCommand(a.configCmd())
	root.AddCommand(a.credentialCmd())
	root.AddCommand(a.txCmd())
	root.AddCommand(a.vaultCmd())
	root.AddCommand(a.verifyCmd())
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadClient(cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger.NewWithWriter(cmd.ErrOrStderr(), cfg.Verbosity)

	service, err := a.factory(cfg, a.logger)
	if err != nil {
		return err
	}
	a.service = service
	return nil
}

// callContext bounds one command by the configured timeout.
func (a *app) callContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), a.cfg.Timeout)
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
