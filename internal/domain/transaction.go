package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

type Transaction struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
}

type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// TransactionSummary mirrors the transactions stats/summary payload.
type TransactionSummary struct {
	TotalIncome       decimal.Decimal  `json:"total_income"`
	TotalExpenses     decimal.Decimal  `json:"total_expenses"`
	NetSavings        decimal.Decimal  `json:"net_savings"`
	CategoryBreakdown []CategoryAmount `json:"category_breakdown"`
}
