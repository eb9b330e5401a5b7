package cmd

import (
	"context"

	"github.com/fincoach/fincoach-cli/internal/application"
	"github.com/spf13/cobra"
)

func newAnalyticsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Show spending patterns, income trends, savings rate, and cash flow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := requireAuth(cmd, app)
			if err != nil {
				return err
			}

			var aggregate application.Aggregate
			err = runFetch(cmd, "Loading analytics...", asJSON, func(ctx context.Context) error {
				aggregate = app.analytics.Activate(ctx, user)
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
				application.FieldSpendingPatterns,
				application.FieldIncomeTrends,
				application.FieldSavingsRate,
				application.FieldCashFlow,
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render the raw aggregate as JSON")

	return cmd
}

func newReportCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the comprehensive analytics report and budget variance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := requireAuth(cmd, app)
			if err != nil {
				return err
			}

			var aggregate application.Aggregate
			err = runFetch(cmd, "Building report...", asJSON, func(ctx context.Context) error {
				aggregate = app.analytics.Report(ctx, user)
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
				application.FieldReport,
				application.FieldBudgetVariance,
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render the raw aggregate as JSON")

	return cmd
}
