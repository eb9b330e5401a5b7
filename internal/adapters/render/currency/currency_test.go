package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestINRFloat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "₹80,000.00", INRFloat(80000))
	assert.Equal(t, "₹1,234.50", INRFloat(1234.5))
	assert.Equal(t, "₹0.00", INRFloat(0))
}

func TestINRFromDecimal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "₹4,200.00", INR(decimal.NewFromInt(4200)))
	assert.Equal(t, "-₹150.25", INR(decimal.NewFromFloat(-150.25)))
}
