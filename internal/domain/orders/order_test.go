//go:build unit
// +build unit

package orders

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from    string
		to      string
		allowed bool
	}{
		{StatusPending, StatusAccepted, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusReady, false},
		{StatusAccepted, StatusRunning, true},
		{StatusAccepted, StatusRejected, true},
		{StatusRunning, StatusReady, true},
		{StatusRunning, StatusRejected, false},
		{StatusReady, StatusServed, true},
		{StatusReady, StatusPending, false},
		{StatusServed, StatusReady, false},
		{StatusRejected, StatusAccepted, false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"_to_"+tt.to, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestKitchenNeverServes(t *testing.T) {
	for from, nexts := range KitchenAllowedNext {
		for _, next := range nexts {
			assert.NotEqual(t, StatusServed, next, "kitchen must not serve from %s", from)
			assert.NotEqual(t, StatusRejected, next, "kitchen must not reject from %s", from)
		}
	}
}

func TestOrderValidate(t *testing.T) {
	variantID := uint(3)
	order := &Order{
		RestaurantID:  1,
		OrderType:     TypeTable,
		Status:        StatusPending,
		PaymentStatus: PaymentPending,
		Items: []OrderItem{
			{
				ProductVariantID: &variantID,
				Name:             "Momo",
				Price:            decimal.NewFromInt(150),
				Quantity:         decimal.NewFromInt(2),
				Total:            decimal.NewFromInt(300),
			},
		},
	}
	require.NoError(t, order.Validate())

	assert.Equal(t, "300", order.Subtotal().String())

	order.Items[0].ProductVariantID = nil
	require.Error(t, order.Validate())

	order.Items = nil
	require.Error(t, order.Validate())

	order.Items = []OrderItem{{ProductVariantID: &variantID, Price: decimal.NewFromInt(10), Quantity: decimal.Zero}}
	require.Error(t, order.Validate())
}
