package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/ravipangali7/My-Restro-Server/internal/domain/billing"
)

// BillRenderer draws printable A4 order bills: restaurant header, invoice
// metadata, the items table and a totals column. The same bill is served to
// waiters, managers, owners and customers.
type BillRenderer struct{}

// NewBillRenderer creates a new BillRenderer
func NewBillRenderer() *BillRenderer {
	return &BillRenderer{}
}

// Render produces the PDF bytes for an invoice payload.
func (r *BillRenderer) Render(invoice *billing.Invoice) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Order Bill", false)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(0, 8, invoice.RestaurantName, "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 9)
	for _, line := range addressLines(invoice.RestaurantAddress) {
		doc.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
	}
	if invoice.RestaurantEmail != "" {
		doc.CellFormat(0, 5, invoice.RestaurantEmail, "", 1, "L", false, 0, "")
	}
	if invoice.RestaurantPhone != "" {
		doc.CellFormat(0, 5, invoice.RestaurantPhone, "", 1, "L", false, 0, "")
	}
	doc.Ln(3)

	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(0, 6, "Invoice: "+invoice.InvoiceNumber, "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 9)
	doc.CellFormat(0, 5, "Date: "+invoice.Date, "", 1, "L", false, 0, "")
	if invoice.CustomerName != "" {
		doc.CellFormat(0, 5, "Customer: "+invoice.CustomerName, "", 1, "L", false, 0, "")
	}
	doc.CellFormat(0, 5, "Table: "+orDash(firstOf(invoice.TableName, invoice.TableNumber)), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 5, "Waiter: "+orDash(invoice.WaiterName), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 5, fmt.Sprintf("Payment: %s  |  Status: %s", orDash(invoice.PaymentMethod), invoice.PaymentStatus), "", 1, "L", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Helvetica", "B", 9)
	doc.CellFormat(12, 6, "SN", "B", 0, "L", false, 0, "")
	doc.CellFormat(88, 6, "Item Name", "B", 0, "L", false, 0, "")
	doc.CellFormat(30, 6, "Price", "B", 0, "R", false, 0, "")
	doc.CellFormat(25, 6, "Qty", "B", 0, "R", false, 0, "")
	doc.CellFormat(35, 6, "Total", "B", 1, "R", false, 0, "")

	doc.SetFont("Helvetica", "", 9)
	for _, item := range invoice.Items {
		doc.CellFormat(12, 6, fmt.Sprintf("%d", item.SN), "", 0, "L", false, 0, "")
		doc.CellFormat(88, 6, clip(item.ItemName, 35), "", 0, "L", false, 0, "")
		doc.CellFormat(30, 6, "Rs."+item.Price, "", 0, "R", false, 0, "")
		doc.CellFormat(25, 6, item.Quantity, "", 0, "R", false, 0, "")
		doc.CellFormat(35, 6, "Rs."+item.Total, "", 1, "R", false, 0, "")
	}
	doc.Ln(4)

	doc.CellFormat(0, 5, "Subtotal: Rs."+invoice.Subtotal, "", 1, "R", false, 0, "")
	if nonZero(invoice.Tax) {
		doc.CellFormat(0, 5, "Tax: Rs."+invoice.Tax, "", 1, "R", false, 0, "")
	}
	if nonZero(invoice.ServiceCharge) {
		doc.CellFormat(0, 5, "Service charge: Rs."+invoice.ServiceCharge, "", 1, "R", false, 0, "")
	}
	if nonZero(invoice.Discount) {
		doc.CellFormat(0, 5, "Discount: Rs.-"+invoice.Discount, "", 1, "R", false, 0, "")
	}
	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(0, 6, "Grand Total: Rs."+invoice.GrandTotal, "", 1, "R", false, 0, "")
	doc.SetFont("Helvetica", "", 9)
	doc.CellFormat(0, 5, "Status: "+invoice.PaymentStatus, "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render bill pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// addressLines keeps at most three lines of the restaurant address.
func addressLines(address string) []string {
	if address == "" {
		return nil
	}
	lines := strings.Split(address, "\n")
	if len(lines) > 3 {
		lines = lines[:3]
	}
	for i, line := range lines {
		lines[i] = clip(strings.TrimSpace(line), 80)
	}
	return lines
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// nonZero reports whether a stringified decimal amount is present and not
// zero, so empty bill lines are skipped.
func nonZero(amount string) bool {
	d, err := decimal.NewFromString(amount)
	return err == nil && !d.IsZero()
}
