//go:build unit
// +build unit

package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	d, err := Parse("149.50")
	require.NoError(t, err)
	assert.Equal(t, "149.50", String(d))

	_, err = Parse("not-a-number")
	assert.Error(t, err)
}

func TestPercentOf(t *testing.T) {
	subtotal := decimal.NewFromInt(1000)
	tax := PercentOf(subtotal, decimal.NewFromInt(13))
	assert.Equal(t, "130.00", String(tax))

	odd := PercentOf(decimal.NewFromFloat(333.33), decimal.NewFromInt(13))
	assert.Equal(t, "43.33", String(odd))
}

func TestClampNonNegative(t *testing.T) {
	assert.True(t, ClampNonNegative(decimal.NewFromInt(-5)).IsZero())
	assert.Equal(t, "5.00", String(ClampNonNegative(decimal.NewFromInt(5))))
}
