package api

import "fmt"

// Endpoint paths, relative to the configured base URL. This is the full
// boundary contract with the backend; not every path has a client-side
// consumer yet.
const (
	pathAuthRegister = "/auth/register"
	pathAuthLogin    = "/auth/login"
	pathAuthRefresh  = "/auth/refresh"

	pathUsersMe = "/users/me"

	pathTransactions        = "/transactions"
	pathTransactionsSummary = "/transactions/stats/summary"

	pathJars   = "/jars"
	pathGoals  = "/goals"
	pathAlerts = "/alerts"

	pathAlertsSummary = "/alerts/stats/summary"

	pathAnalyticsSpendingPatterns    = "/analytics/spending-patterns"
	pathAnalyticsIncomeTrends        = "/analytics/income-trends"
	pathAnalyticsSavingsRate         = "/analytics/savings-rate"
	pathAnalyticsBudgetVariance      = "/analytics/budget-variance"
	pathAnalyticsCashFlow            = "/analytics/cash-flow"
	pathAnalyticsComprehensiveReport = "/analytics/comprehensive-report"

	pathPredictionsSpendingForecast  = "/predictions/spending-forecast"
	pathPredictionsIncomeForecast    = "/predictions/income-forecast"
	pathPredictionsSavingsProjection = "/predictions/savings-projection"
	pathPredictionsGoalAchievement   = "/predictions/goal-achievement"
	pathPredictionsFinancialHealth   = "/predictions/financial-health"
	pathPredictionsAnomalyDetection  = "/predictions/anomaly-detection"
	pathPredictionsHistory           = "/predictions/prediction-history"

	pathAgentExecuteTask           = "/multi-agent/execute-task"
	pathAgentSystemStatus          = "/multi-agent/system-status"
	pathAgentHistory               = "/multi-agent/agent-history"
	pathAgentFinancialPlanning     = "/multi-agent/financial-planning"
	pathAgentPortfolioOptimization = "/multi-agent/portfolio-optimization"
	pathAgentUserCoaching          = "/multi-agent/user-coaching"

	pathPatterns = "/patterns"

	pathRecommendationsPersonalized = "/recommendations/personalized"
)

func patternPath(kind string) string {
	return fmt.Sprintf("%s/%s", pathPatterns, kind)
}

func recommendationCategoryPath(category string) string {
	return fmt.Sprintf("/recommendations/category/%s", category)
}
