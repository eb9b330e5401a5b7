package cmd

import (
	"context"
	"fmt"

	renderoverview "github.com/fincoach/fincoach-cli/internal/adapters/render/overview"
	"github.com/fincoach/fincoach-cli/internal/application"
	"github.com/fincoach/fincoach-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newOverviewCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "overview",
		Aliases: []string{"dashboard"},
		Short:   "Show the financial overview dashboard",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := requireAuth(cmd, app)
			if err != nil {
				return err
			}

			var aggregate application.Aggregate
			err = runFetch(cmd, "Loading overview...", asJSON, func(ctx context.Context) error {
				aggregate = app.overview.Activate(ctx)
				return nil
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeAggregateJSON(cmd, aggregate)
			}

			if aggregate.Err != nil && len(aggregate.Fields) == 0 {
				return aggregate.Err
			}

			view := renderoverview.View{User: user}
			if summary, ok := aggregate.Fields[application.FieldSummary].(domain.TransactionSummary); ok {
				view.Summary = &summary
			}
			if txs, ok := aggregate.Fields[application.FieldTransactions].([]domain.Transaction); ok {
				view.Transactions = txs
			}
			if aggregate.Err != nil {
				view.Err = aggregate.Err.Error()
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderoverview.Render(view))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render the raw aggregate as JSON")

	return cmd
}
