package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/fincoach/fincoach-cli/internal/adapters/render/currency"
	"github.com/spf13/cobra"
)

func newWhoamiCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := requireAuth(cmd, app)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(user)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s <%s>\n", user.FullName, user.Email)
			_, _ = fmt.Fprintf(out, "monthly income: %s\n", currency.INRFloat(user.MonthlyIncome))
			_, _ = fmt.Fprintf(out, "monthly budget: %s\n", currency.INRFloat(user.MonthlyBudget))
			_, _ = fmt.Fprintf(out, "savings:        %s\n", currency.INRFloat(user.Savings))
			_, _ = fmt.Fprintf(out, "emergency fund: %s\n", currency.INRFloat(user.EmergencyFund))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
