package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	renderoverview "github.com/fincoach/fincoach-cli/internal/adapters/render/overview"
	"github.com/fincoach/fincoach-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newTransactionsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List recorded transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := requireAuth(cmd, app); err != nil {
				return err
			}

			var txs []domain.Transaction
			err := runFetch(cmd, "Loading transactions...", asJSON, func(ctx context.Context) error {
				var err error
				txs, err = app.transactions.List(ctx)
				return err
			})
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(txs)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderoverview.List(txs))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print transactions as JSON")

	return cmd
}
