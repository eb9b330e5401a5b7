package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	renderagent "github.com/fincoach/fincoach-cli/internal/adapters/render/agent"
	"github.com/fincoach/fincoach-cli/internal/application"
	"github.com/fincoach/fincoach-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newAgentCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agent",
		Short: "Multi-agent coaching: status, history, and task execution",
	}

	cmd.AddCommand(
		newAgentStatusCmd(app),
		newAgentHistoryCmd(app),
		newAgentRunCmd(app),
	)

	return cmd
}

func newAgentStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show system status and recent execution history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := requireAuth(cmd, app); err != nil {
				return err
			}

			var aggregate application.Aggregate
			err := runFetch(cmd, "Loading agent status...", asJSON, func(ctx context.Context) error {
				aggregate = app.agents.Refresh(ctx)
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

			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderAgentAggregate(aggregate))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render the raw aggregate as JSON")

	return cmd
}

func newAgentHistoryCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show recent task executions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := requireAuth(cmd, app); err != nil {
				return err
			}

			aggregate := app.agents.Refresh(cmd.Context())
			if aggregate.Err != nil && len(aggregate.Fields) == 0 {
				return aggregate.Err
			}

			var history *domain.AgentHistory
			if h, ok := aggregate.Fields[application.FieldAgentHistory].(domain.AgentHistory); ok {
				history = &h
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), renderagent.RenderHistory(history))
			return err
		},
	}
}

func newAgentRunCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "run <task-type>",
		Short: "Execute a coaching task and show the refreshed history",
		Long:  "run dispatches a task to the multi-agent backend. financial_planning, portfolio_optimization, and user_coaching have dedicated endpoints; any other task type goes through the generic execute-task endpoint.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireAuth(cmd, app)
			if err != nil {
				return err
			}

			taskType := domain.TaskType(args[0])

			var result json.RawMessage
			err = runFetch(cmd, fmt.Sprintf("Executing %s...", taskType), asJSON, func(ctx context.Context) error {
				result, err = app.agents.ExecuteTask(ctx, taskType, user)
				return err
			})
			if err != nil {
				return err
			}

			// The history refresh runs in the background; wait for it so the
			// rendered history already includes this execution.
			select {
			case <-app.agents.RefreshDone():
			case <-cmd.Context().Done():
				return cmd.Context().Err()
			}

			aggregate, _ := app.agents.Snapshot()

			if asJSON {
				body := struct {
					Result  json.RawMessage `json:"result"`
					History any             `json:"history,omitempty"`
				}{Result: result, History: aggregate.Fields[application.FieldAgentHistory]}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(body)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, renderagent.RenderResult(taskType, result))
			if finished := app.agents.LastFinished(); !finished.IsZero() {
				_, _ = fmt.Fprintf(out, "completed at %s\n", finished.Format("15:04:05"))
			}
			_, _ = fmt.Fprintln(out, renderAgentAggregate(aggregate))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the task result and history as JSON")

	return cmd
}

func renderAgentAggregate(aggregate application.Aggregate) string {
	var status *domain.SystemStatus
	if s, ok := aggregate.Fields[application.FieldSystemStatus].(domain.SystemStatus); ok {
		status = &s
	}
	var history *domain.AgentHistory
	if h, ok := aggregate.Fields[application.FieldAgentHistory].(domain.AgentHistory); ok {
		history = &h
	}

	message := ""
	if aggregate.Err != nil {
		message = aggregate.Err.Error()
	}

	return renderagent.RenderStatus(status, history, message)
}
