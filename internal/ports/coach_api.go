package ports

import (
	"context"
	"encoding/json"

	"github.com/fincoach/fincoach-cli/internal/domain"
)

// The backend is an opaque request/response contract. Analytics and
// prediction payloads are passed through raw; only the shapes the client
// itself inspects (auth, transactions, agent status/history) are typed.

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (domain.AuthGrant, error)
	Register(ctx context.Context, reg domain.Registration) (domain.AuthGrant, error)
	Me(ctx context.Context) (domain.UserProfile, error)
}

type TransactionsAPI interface {
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	TransactionSummary(ctx context.Context) (domain.TransactionSummary, error)
}

type AnalyticsAPI interface {
	SpendingPatterns(ctx context.Context, txs []domain.Transaction, periodDays int) (json.RawMessage, error)
	IncomeTrends(ctx context.Context, txs []domain.Transaction, periodDays int) (json.RawMessage, error)
	SavingsRate(ctx context.Context, income, expenses, savings float64, periodDays int) (json.RawMessage, error)
	BudgetVariance(ctx context.Context, txs []domain.Transaction, monthlyBudget float64) (json.RawMessage, error)
	CashFlow(ctx context.Context, txs []domain.Transaction, periodDays int) (json.RawMessage, error)
	ComprehensiveReport(ctx context.Context) (json.RawMessage, error)
}

type PredictionsAPI interface {
	SpendingForecast(ctx context.Context, txs []domain.Transaction, forecastDays int, confidence float64) (json.RawMessage, error)
	IncomeForecast(ctx context.Context, txs []domain.Transaction, forecastMonths int, confidence float64) (json.RawMessage, error)
	SavingsProjection(ctx context.Context, currentSavings, monthlyRate, annualReturn float64, months int) (json.RawMessage, error)
	FinancialHealth(ctx context.Context, income, expenses, savings, debt, emergencyFund float64) (json.RawMessage, error)
	AnomalyDetection(ctx context.Context, txs []domain.Transaction, sensitivity float64) (json.RawMessage, error)
	PredictionHistory(ctx context.Context) (json.RawMessage, error)
}

type PatternsAPI interface {
	Patterns(ctx context.Context, kind domain.PatternKind) (json.RawMessage, error)
}

type RecommendationsAPI interface {
	PersonalizedRecommendations(ctx context.Context) (json.RawMessage, error)
	CategoryRecommendations(ctx context.Context, category string) (json.RawMessage, error)
}

type AgentAPI interface {
	ExecuteTask(ctx context.Context, taskType domain.TaskType, user domain.UserProfile) (json.RawMessage, error)
	FinancialPlanning(ctx context.Context, user domain.UserProfile) (json.RawMessage, error)
	PortfolioOptimization(ctx context.Context, user domain.UserProfile) (json.RawMessage, error)
	UserCoaching(ctx context.Context, user domain.UserProfile) (json.RawMessage, error)
	SystemStatus(ctx context.Context) (domain.SystemStatus, error)
	AgentHistory(ctx context.Context, limit int) (domain.AgentHistory, error)
}
