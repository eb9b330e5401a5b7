package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fincoach/fincoach-cli/internal/adapters/render/payload"
	"github.com/fincoach/fincoach-cli/internal/application"
	"github.com/spf13/cobra"
)

// runFetch wraps a view activation with the loading spinner, except for
// JSON output where the spinner would pollute the stream.
func runFetch(cmd *cobra.Command, label string, asJSON bool, fetch func(context.Context) error) error {
	if asJSON {
		return fetch(cmd.Context())
	}
	return runViewSpinner(cmd.Context(), cmd.ErrOrStderr(), label, fetch)
}

func writeAggregateJSON(cmd *cobra.Command, aggregate application.Aggregate) error {
	body := struct {
		Fields map[string]any `json:"fields"`
		Error  string         `json:"error,omitempty"`
	}{Fields: aggregate.Fields}
	if aggregate.Err != nil {
		body.Error = aggregate.Err.Error()
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(body)
}

// writeRawSections renders a raw-payload aggregate: error banner first when
// partial, then one section per expected field in a stable order.
func writeRawSections(cmd *cobra.Command, aggregate application.Aggregate, fields []string) error {
	out := cmd.OutOrStdout()

	if aggregate.Err != nil {
		_, _ = fmt.Fprintln(out, payload.ErrorBanner(aggregate.Err.Error()))
	}

	for _, field := range fields {
		raw, _ := aggregate.Fields[field].(json.RawMessage)
		_, _ = fmt.Fprintln(out, payload.Section(field, raw))
	}

	return nil
}
