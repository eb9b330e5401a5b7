package cmd

import (
	"context"
	"fmt"

	"github.com/fincoach/fincoach-cli/internal/adapters/render/payload"
	"github.com/fincoach/fincoach-cli/internal/application"
	"github.com/spf13/cobra"
)

func newPredictionsCmd(app *app) *cobra.Command {
	var asJSON bool
	var showHistory bool

	cmd := &cobra.Command{
		Use:   "predictions",
		Short: "Show forecasts, projections, health score, and anomalies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := requireAuth(cmd, app)
			if err != nil {
				return err
			}

			if showHistory {
				history, err := app.predictions.History(cmd.Context())
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), payload.Section("prediction_history", history))
				return err
			}

			var aggregate application.Aggregate
			err = runFetch(cmd, "Loading predictions...", asJSON, func(ctx context.Context) error {
				aggregate = app.predictions.Activate(ctx, user)
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

			return writeRawSections(cmd, aggregate, []string{
				application.FieldFinancialHealth,
				application.FieldSpendingForecast,
				application.FieldIncomeForecast,
				application.FieldSavingsProjection,
				application.FieldAnomalies,
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render the raw aggregate as JSON")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show stored prediction history instead")

	return cmd
}
