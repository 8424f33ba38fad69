//go:build unit
// +build unit

package pdf

import (
	"testing"

	"github.com/ravipangali7/My-Restro-Server/internal/domain/billing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInvoice() *billing.Invoice {
	return &billing.Invoice{
		RestaurantName:    "Momo House",
		RestaurantAddress: "Demo Street\nKathmandu",
		RestaurantPhone:   "9800000000",
		InvoiceNumber:     "INV-000014",
		Date:              "2026-08-28 12:30",
		CustomerName:      "Sita Rai",
		TableName:         "Table 1",
		PaymentMethod:     "cash",
		PaymentStatus:     "paid",
		Items: []billing.InvoiceItem{
			{SN: 1, ItemName: "Steam Momo", Price: "250", Quantity: "2", Total: "500"},
		},
		Subtotal:      "500",
		Tax:           "65",
		Discount:      "0",
		ServiceCharge: "0",
		GrandTotal:    "565",
	}
}

func TestBillRenderer_Render(t *testing.T) {
	renderer := NewBillRenderer()

	data, err := renderer.Render(sampleInvoice())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestBillRenderer_RenderBareOrder(t *testing.T) {
	renderer := NewBillRenderer()

	// A walk-in order with no customer, table or waiter still renders.
	invoice := sampleInvoice()
	invoice.CustomerName = ""
	invoice.TableName = ""
	invoice.TableNumber = ""
	invoice.WaiterName = ""
	invoice.PaymentMethod = ""

	data, err := renderer.Render(invoice)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}
