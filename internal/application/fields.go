package application

// Stable field names the view aggregates are keyed by. The presentation
// layer must treat every field as optionally absent.
const (
	FieldSummary           = "summary"
	FieldTransactions      = "transactions"
	FieldSpendingPatterns  = "spending_patterns"
	FieldIncomeTrends      = "income_trends"
	FieldSavingsRate       = "savings_rate"
	FieldCashFlow          = "cash_flow"
	FieldBudgetVariance    = "budget_variance"
	FieldReport            = "report"
	FieldSpendingForecast  = "spending_forecast"
	FieldIncomeForecast    = "income_forecast"
	FieldSavingsProjection = "savings_projection"
	FieldFinancialHealth   = "financial_health"
	FieldAnomalies         = "anomalies"
	FieldSystemStatus      = "system_status"
	FieldAgentHistory      = "agent_history"
)
