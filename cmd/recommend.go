package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fincoach/fincoach-cli/internal/adapters/render/payload"
	"github.com/fincoach/fincoach-cli/internal/adapters/render/recommend"
	"github.com/fincoach/fincoach-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newRecommendCmd(app *app) *cobra.Command {
	var category string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Show personalized recommendations, optionally per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := requireAuth(cmd, app); err != nil {
				return err
			}

			var raw json.RawMessage
			heading := "Personalized Recommendations"
			fetch := func(ctx context.Context) error {
				var err error
				if category == "" {
					raw, err = app.recommendations.Personalized(ctx)
				} else {
					heading = fmt.Sprintf("%s Recommendations", capitalize(category))
					raw, err = app.recommendations.Category(ctx, category)
				}
				return err
			}

			if err := runFetch(cmd, "Loading recommendations...", asJSON, fetch); err != nil {
				return err
			}

			if asJSON {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), payload.Pretty(raw))
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), recommend.Render(heading, raw))
			return err
		},
	}

	cmd.Flags().StringVar(&category, "category", "", fmt.Sprintf("Spending category (%s)", strings.Join(domain.RecommendationCategories, ", ")))
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw payload as JSON")

	return cmd
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
