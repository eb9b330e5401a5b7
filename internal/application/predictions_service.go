package application

import (
	"context"
	"encoding/json"

	"github.com/fincoach/fincoach-cli/internal/domain"
	"github.com/fincoach/fincoach-cli/internal/ports"
)

// Forecast horizons and confidence levels, fixed per view.
const (
	forecastDays        = 30
	forecastMonths      = 6
	forecastConfidence  = 0.95
	projectionMonths    = 12
	annualReturnRate    = 0.05
	monthlySavingsShare = 0.20
	anomalySensitivity  = 0.8
)

// PredictionsService backs the predictions view. Spending and income
// forecasts and anomaly detection derive from the transaction list; the
// savings projection and financial-health score come from profile figures
// alone and run independently.
type PredictionsService struct {
	transactions ports.TransactionsAPI
	predictions  ports.PredictionsAPI
	state        *ViewState
}

func NewPredictionsService(transactions ports.TransactionsAPI, predictions ports.PredictionsAPI) *PredictionsService {
	return &PredictionsService{transactions: transactions, predictions: predictions, state: NewViewState()}
}

func (s *PredictionsService) Activate(ctx context.Context, user domain.UserProfile) Aggregate {
	plan := []Step{
		{
			Name: FieldTransactions,
			Run: func(ctx context.Context, _ StepResults) (any, error) {
				return s.transactions.ListTransactions(ctx)
			},
		},
		{
			Name:  FieldSpendingForecast,
			Needs: []string{FieldTransactions},
			Run: func(ctx context.Context, prior StepResults) (any, error) {
				return s.predictions.SpendingForecast(ctx, priorTransactions(prior), forecastDays, forecastConfidence)
			},
		},
		{
			Name:  FieldIncomeForecast,
			Needs: []string{FieldTransactions},
			Run: func(ctx context.Context, prior StepResults) (any, error) {
				return s.predictions.IncomeForecast(ctx, priorTransactions(prior), forecastMonths, forecastConfidence)
			},
		},
		{
			Name:  FieldAnomalies,
			Needs: []string{FieldTransactions},
			Run: func(ctx context.Context, prior StepResults) (any, error) {
				return s.predictions.AnomalyDetection(ctx, priorTransactions(prior), anomalySensitivity)
			},
		},
		{
			Name: FieldSavingsProjection,
			Run: func(ctx context.Context, _ StepResults) (any, error) {
				monthlyRate := user.MonthlyBudget * monthlySavingsShare
				return s.predictions.SavingsProjection(ctx, user.Savings, monthlyRate, annualReturnRate, projectionMonths)
			},
		},
		{
			Name: FieldFinancialHealth,
			Run: func(ctx context.Context, _ StepResults) (any, error) {
				return s.predictions.FinancialHealth(ctx, user.MonthlyIncome, 0, user.Savings, 0, user.EmergencyFund)
			},
		},
	}

	return s.state.Activate(ctx, plan)
}

func (s *PredictionsService) Snapshot() (Aggregate, bool) {
	return s.state.Snapshot()
}

// History returns the backend's stored prediction history.
func (s *PredictionsService) History(ctx context.Context) (json.RawMessage, error) {
	return s.predictions.PredictionHistory(ctx)
}
