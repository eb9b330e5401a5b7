package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fincoach",
		Short:         "FinCoach CLI: your personal-finance coach in the terminal",
		Long:          "fincoach is a terminal client for the FinCoach coaching service: sign in once, then pull your overview, analytics, predictions, spending patterns, recommendations, and multi-agent coaching tasks.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(),
		newRegisterCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newOverviewCmd(app),
		newTransactionsCmd(app),
		newAnalyticsCmd(app),
		newReportCmd(app),
		newPredictionsCmd(app),
		newPatternsCmd(app),
		newRecommendCmd(app),
		newAgentCmd(app),
	)

	return rootCmd
}
