package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fincoach/fincoach-cli/internal/domain"
	"github.com/fincoach/fincoach-cli/internal/ports"
)

var (
	_ ports.AuthAPI            = (*Client)(nil)
	_ ports.TransactionsAPI    = (*Client)(nil)
	_ ports.AnalyticsAPI       = (*Client)(nil)
	_ ports.PredictionsAPI     = (*Client)(nil)
	_ ports.PatternsAPI        = (*Client)(nil)
	_ ports.RecommendationsAPI = (*Client)(nil)
	_ ports.AgentAPI           = (*Client)(nil)
)

func (c *Client) Login(ctx context.Context, email, password string) (domain.AuthGrant, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var grant domain.AuthGrant
	if err := c.post(ctx, pathAuthLogin, body, &grant); err != nil {
		return domain.AuthGrant{}, err
	}
	return grant, nil
}

func (c *Client) Register(ctx context.Context, reg domain.Registration) (domain.AuthGrant, error) {
	var grant domain.AuthGrant
	if err := c.post(ctx, pathAuthRegister, reg, &grant); err != nil {
		return domain.AuthGrant{}, err
	}
	return grant, nil
}

func (c *Client) Me(ctx context.Context) (domain.UserProfile, error) {
	var user domain.UserProfile
	if err := c.get(ctx, pathUsersMe, &user); err != nil {
		return domain.UserProfile{}, err
	}
	return user, nil
}

func (c *Client) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	if err := c.get(ctx, pathTransactions, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (c *Client) TransactionSummary(ctx context.Context) (domain.TransactionSummary, error) {
	var summary domain.TransactionSummary
	if err := c.get(ctx, pathTransactionsSummary, &summary); err != nil {
		return domain.TransactionSummary{}, err
	}
	return summary, nil
}

type transactionWindowRequest struct {
	Transactions []domain.Transaction `json:"transactions"`
	PeriodDays   int                  `json:"period_days"`
}

func (c *Client) SpendingPatterns(ctx context.Context, txs []domain.Transaction, periodDays int) (json.RawMessage, error) {
	return c.rawPost(ctx, pathAnalyticsSpendingPatterns, transactionWindowRequest{Transactions: txs, PeriodDays: periodDays})
}

func (c *Client) IncomeTrends(ctx context.Context, txs []domain.Transaction, periodDays int) (json.RawMessage, error) {
	return c.rawPost(ctx, pathAnalyticsIncomeTrends, transactionWindowRequest{Transactions: txs, PeriodDays: periodDays})
}

func (c *Client) SavingsRate(ctx context.Context, income, expenses, savings float64, periodDays int) (json.RawMessage, error) {
	body := struct {
		Income     float64 `json:"income"`
		Expenses   float64 `json:"expenses"`
		Savings    float64 `json:"savings"`
		PeriodDays int     `json:"period_days"`
	}{Income: income, Expenses: expenses, Savings: savings, PeriodDays: periodDays}

	return c.rawPost(ctx, pathAnalyticsSavingsRate, body)
}

func (c *Client) BudgetVariance(ctx context.Context, txs []domain.Transaction, monthlyBudget float64) (json.RawMessage, error) {
	body := struct {
		Transactions  []domain.Transaction `json:"transactions"`
		MonthlyBudget float64              `json:"monthly_budget"`
	}{Transactions: txs, MonthlyBudget: monthlyBudget}

	return c.rawPost(ctx, pathAnalyticsBudgetVariance, body)
}

func (c *Client) CashFlow(ctx context.Context, txs []domain.Transaction, periodDays int) (json.RawMessage, error) {
	return c.rawPost(ctx, pathAnalyticsCashFlow, transactionWindowRequest{Transactions: txs, PeriodDays: periodDays})
}

func (c *Client) ComprehensiveReport(ctx context.Context) (json.RawMessage, error) {
	return c.rawGet(ctx, pathAnalyticsComprehensiveReport)
}

func (c *Client) SpendingForecast(ctx context.Context, txs []domain.Transaction, forecastDays int, confidence float64) (json.RawMessage, error) {
	body := struct {
		HistoricalSpending []domain.Transaction `json:"historical_spending"`
		ForecastDays       int                  `json:"forecast_days"`
		ConfidenceLevel    float64              `json:"confidence_level"`
	}{HistoricalSpending: txs, ForecastDays: forecastDays, ConfidenceLevel: confidence}

	return c.rawPost(ctx, pathPredictionsSpendingForecast, body)
}

func (c *Client) IncomeForecast(ctx context.Context, txs []domain.Transaction, forecastMonths int, confidence float64) (json.RawMessage, error) {
	body := struct {
		HistoricalIncome []domain.Transaction `json:"historical_income"`
		ForecastMonths   int                  `json:"forecast_months"`
		ConfidenceLevel  float64              `json:"confidence_level"`
	}{HistoricalIncome: txs, ForecastMonths: forecastMonths, ConfidenceLevel: confidence}

	return c.rawPost(ctx, pathPredictionsIncomeForecast, body)
}

func (c *Client) SavingsProjection(ctx context.Context, currentSavings, monthlyRate, annualReturn float64, months int) (json.RawMessage, error) {
	body := struct {
		CurrentSavings     float64 `json:"current_savings"`
		MonthlySavingsRate float64 `json:"monthly_savings_rate"`
		AnnualReturnRate   float64 `json:"annual_return_rate"`
		ProjectionMonths   int     `json:"projection_months"`
	}{CurrentSavings: currentSavings, MonthlySavingsRate: monthlyRate, AnnualReturnRate: annualReturn, ProjectionMonths: months}

	return c.rawPost(ctx, pathPredictionsSavingsProjection, body)
}

func (c *Client) FinancialHealth(ctx context.Context, income, expenses, savings, debt, emergencyFund float64) (json.RawMessage, error) {
	body := struct {
		Income        float64 `json:"income"`
		Expenses      float64 `json:"expenses"`
		Savings       float64 `json:"savings"`
		Debt          float64 `json:"debt"`
		EmergencyFund float64 `json:"emergency_fund"`
	}{Income: income, Expenses: expenses, Savings: savings, Debt: debt, EmergencyFund: emergencyFund}

	return c.rawPost(ctx, pathPredictionsFinancialHealth, body)
}

func (c *Client) AnomalyDetection(ctx context.Context, txs []domain.Transaction, sensitivity float64) (json.RawMessage, error) {
	body := struct {
		HistoricalData []domain.Transaction `json:"historical_data"`
		Sensitivity    float64              `json:"sensitivity"`
	}{HistoricalData: txs, Sensitivity: sensitivity}

	return c.rawPost(ctx, pathPredictionsAnomalyDetection, body)
}

func (c *Client) PredictionHistory(ctx context.Context) (json.RawMessage, error) {
	return c.rawGet(ctx, pathPredictionsHistory)
}

func (c *Client) Patterns(ctx context.Context, kind domain.PatternKind) (json.RawMessage, error) {
	return c.rawGet(ctx, patternPath(string(kind)))
}

func (c *Client) PersonalizedRecommendations(ctx context.Context) (json.RawMessage, error) {
	return c.rawGet(ctx, pathRecommendationsPersonalized)
}

func (c *Client) CategoryRecommendations(ctx context.Context, category string) (json.RawMessage, error) {
	return c.rawGet(ctx, recommendationCategoryPath(category))
}

type taskRequest struct {
	TaskType domain.TaskType    `json:"task_type"`
	UserData domain.UserProfile `json:"user_data"`
}

func (c *Client) ExecuteTask(ctx context.Context, taskType domain.TaskType, user domain.UserProfile) (json.RawMessage, error) {
	return c.rawPost(ctx, pathAgentExecuteTask, taskRequest{TaskType: taskType, UserData: user})
}

func (c *Client) FinancialPlanning(ctx context.Context, user domain.UserProfile) (json.RawMessage, error) {
	return c.rawPost(ctx, pathAgentFinancialPlanning, user)
}

func (c *Client) PortfolioOptimization(ctx context.Context, user domain.UserProfile) (json.RawMessage, error) {
	return c.rawPost(ctx, pathAgentPortfolioOptimization, user)
}

func (c *Client) UserCoaching(ctx context.Context, user domain.UserProfile) (json.RawMessage, error) {
	return c.rawPost(ctx, pathAgentUserCoaching, user)
}

func (c *Client) SystemStatus(ctx context.Context) (domain.SystemStatus, error) {
	var status domain.SystemStatus
	if err := c.get(ctx, pathAgentSystemStatus, &status); err != nil {
		return domain.SystemStatus{}, err
	}
	return status, nil
}

func (c *Client) AgentHistory(ctx context.Context, limit int) (domain.AgentHistory, error) {
	var history domain.AgentHistory
	path := fmt.Sprintf("%s?limit=%d", pathAgentHistory, limit)
	if err := c.get(ctx, path, &history); err != nil {
		return domain.AgentHistory{}, err
	}
	return history, nil
}

func (c *Client) rawGet(ctx context.Context, path string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.get(ctx, path, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) rawPost(ctx context.Context, path string, body any) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.post(ctx, path, body, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
