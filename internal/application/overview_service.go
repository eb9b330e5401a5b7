package application

import (
	"context"

	"github.com/fincoach/fincoach-cli/internal/ports"
)

// OverviewService backs the overview dashboard: the spending summary and
// the transaction list, fetched concurrently.
type OverviewService struct {
	transactions ports.TransactionsAPI
	state        *ViewState
}

func NewOverviewService(transactions ports.TransactionsAPI) *OverviewService {
	return &OverviewService{transactions: transactions, state: NewViewState()}
}

func (s *OverviewService) Activate(ctx context.Context) Aggregate {
	plan := []Step{
		{
			Name: FieldSummary,
			Run: func(ctx context.Context, _ StepResults) (any, error) {
				return s.transactions.TransactionSummary(ctx)
			},
		},
		{
			Name: FieldTransactions,
			Run: func(ctx context.Context, _ StepResults) (any, error) {
				return s.transactions.ListTransactions(ctx)
			},
		},
	}

	return s.state.Activate(ctx, plan)
}

func (s *OverviewService) Snapshot() (Aggregate, bool) {
	return s.state.Snapshot()
}
