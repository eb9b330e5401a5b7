package application

import (
	"context"

	"github.com/fincoach/fincoach-cli/internal/domain"
	"github.com/fincoach/fincoach-cli/internal/ports"
)

// Fixed per-view windows, matching what the backend's analytics endpoints
// are tuned for. Not user-editable.
const (
	analyticsPeriodDays   = 90
	savingsRatePeriodDays = 30
)

// AnalyticsService backs the analytics view. The transaction list is the
// foundational step; the derived analytics calls fan out from it. The
// savings-rate call needs only profile figures and runs independently.
type AnalyticsService struct {
	transactions ports.TransactionsAPI
	analytics    ports.AnalyticsAPI
	state        *ViewState
}

func NewAnalyticsService(transactions ports.TransactionsAPI, analytics ports.AnalyticsAPI) *AnalyticsService {
	return &AnalyticsService{transactions: transactions, analytics: analytics, state: NewViewState()}
}

func (s *AnalyticsService) Activate(ctx context.Context, user domain.UserProfile) Aggregate {
	plan := []Step{
		{
			Name: FieldTransactions,
			Run: func(ctx context.Context, _ StepResults) (any, error) {
				return s.transactions.ListTransactions(ctx)
			},
		},
		{
			Name:  FieldSpendingPatterns,
			Needs: []string{FieldTransactions},
			Run: func(ctx context.Context, prior StepResults) (any, error) {
				return s.analytics.SpendingPatterns(ctx, priorTransactions(prior), analyticsPeriodDays)
			},
		},
		{
			Name:  FieldIncomeTrends,
			Needs: []string{FieldTransactions},
			Run: func(ctx context.Context, prior StepResults) (any, error) {
				return s.analytics.IncomeTrends(ctx, priorTransactions(prior), analyticsPeriodDays)
			},
		},
		{
			Name:  FieldCashFlow,
			Needs: []string{FieldTransactions},
			Run: func(ctx context.Context, prior StepResults) (any, error) {
				return s.analytics.CashFlow(ctx, priorTransactions(prior), analyticsPeriodDays)
			},
		},
		{
			Name: FieldSavingsRate,
			Run: func(ctx context.Context, _ StepResults) (any, error) {
				return s.analytics.SavingsRate(ctx, user.MonthlyIncome, 0, 0, savingsRatePeriodDays)
			},
		},
	}

	return s.state.Activate(ctx, plan)
}

func (s *AnalyticsService) Snapshot() (Aggregate, bool) {
	return s.state.Snapshot()
}

// Report fetches the comprehensive analytics report together with the
// budget-variance breakdown derived from the transaction list.
func (s *AnalyticsService) Report(ctx context.Context, user domain.UserProfile) Aggregate {
	plan := []Step{
		{
			Name: FieldTransactions,
			Run: func(ctx context.Context, _ StepResults) (any, error) {
				return s.transactions.ListTransactions(ctx)
			},
		},
		{
			Name:  FieldBudgetVariance,
			Needs: []string{FieldTransactions},
			Run: func(ctx context.Context, prior StepResults) (any, error) {
				return s.analytics.BudgetVariance(ctx, priorTransactions(prior), user.MonthlyBudget)
			},
		},
		{
			Name: FieldReport,
			Run: func(ctx context.Context, _ StepResults) (any, error) {
				return s.analytics.ComprehensiveReport(ctx)
			},
		},
	}

	return RunPlan(ctx, plan)
}

func priorTransactions(prior StepResults) []domain.Transaction {
	txs, _ := prior[FieldTransactions].([]domain.Transaction)
	return txs
}
