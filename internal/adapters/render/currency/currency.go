// Package currency formats amounts the way the coaching service displays
// them: Indian rupees.
package currency

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func INR(amount decimal.Decimal) string {
	return INRFloat(amount.InexactFloat64())
}

func INRFloat(amount float64) string {
	return money.NewFromFloat(amount, money.INR).Display()
}
