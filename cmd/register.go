package cmd

import (
	"errors"
	"fmt"

	"github.com/fincoach/fincoach-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newRegisterCmd(app *app) *cobra.Command {
	var reg domain.Registration

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account; registration signs you in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireAnon(app); err != nil {
				return err
			}

			if err := app.session.Register(cmd.Context(), reg); err != nil {
				return errors.New(app.session.Snapshot().Error)
			}

			session := app.session.Snapshot()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s!\n", session.User.FullName)
			return nil
		},
	}

	cmd.Flags().StringVar(&reg.FullName, "name", "", "Full name")
	cmd.Flags().StringVar(&reg.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&reg.Password, "password", "", "Account password")
	cmd.Flags().Float64Var(&reg.MonthlyIncome, "monthly-income", 0, "Declared monthly income")
	cmd.Flags().Float64Var(&reg.MonthlyBudget, "monthly-budget", 0, "Monthly spending budget")
	cmd.Flags().Float64Var(&reg.Savings, "savings", 0, "Current savings")
	cmd.Flags().Float64Var(&reg.EmergencyFund, "emergency-fund", 0, "Emergency fund balance")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
