//go:build unit
// +build unit

package menu

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProductVariantFinalPrice(t *testing.T) {
	tests := []struct {
		name         string
		price        string
		discountType string
		discount     string
		expected     string
	}{
		{"no discount", "200", "", "0", "200"},
		{"flat discount", "200", DiscountFlat, "50", "150"},
		{"flat discount exceeding price clamps at zero", "200", DiscountFlat, "250", "0"},
		{"percentage discount", "200", DiscountPercentage, "25", "150"},
		{"full percentage discount", "200", DiscountPercentage, "100", "0"},
		{"unknown discount type keeps price", "200", "bogus", "50", "200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &ProductVariant{
				Price:        decimal.RequireFromString(tt.price),
				DiscountType: tt.discountType,
				Discount:     decimal.RequireFromString(tt.discount),
			}
			assert.True(t, v.FinalPrice().Equal(decimal.RequireFromString(tt.expected)),
				"got %s", v.FinalPrice())
		})
	}
}
