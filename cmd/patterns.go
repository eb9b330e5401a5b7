package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fincoach/fincoach-cli/internal/adapters/render/payload"
	"github.com/fincoach/fincoach-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newPatternsCmd(app *app) *cobra.Command {
	var asJSON bool

	kinds := domain.PatternKinds()
	validArgs := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		validArgs = append(validArgs, string(kind))
	}

	cmd := &cobra.Command{
		Use:       "patterns [tab]...",
		Short:     "Show detected patterns; tabs are fetched once and cached",
		Long:      "patterns renders one or more pattern tabs (all, spending, temporal, behavioral, anomalies, correlations). A tab selected more than once is served from the cache without a second request.",
		ValidArgs: validArgs,
		Args:      cobra.OnlyValidArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireAuth(cmd, app); err != nil {
				return err
			}

			if len(args) == 0 {
				args = []string{string(domain.PatternAll)}
			}

			for _, tab := range args {
				kind, err := domain.ParsePatternKind(tab)
				if err != nil {
					return err
				}

				var raw json.RawMessage
				if cached, ok := app.patterns.Cached(kind); ok {
					raw = cached
				} else {
					err = runFetch(cmd, fmt.Sprintf("Loading %s patterns...", tab), asJSON, func(ctx context.Context) error {
						raw, err = app.patterns.Select(ctx, kind)
						return err
					})
					if err != nil {
						return err
					}
				}

				if asJSON {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), payload.Pretty(raw))
					continue
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), payload.Section(tab+"_patterns", raw))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print raw payloads as JSON")

	return cmd
}
