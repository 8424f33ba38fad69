package billing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRepository defines persistence operations for ledger entries.
type TransactionRepository interface {
	Create(ctx context.Context, tx *Transaction) error
	List(ctx context.Context, query *TransactionQuery) ([]*Transaction, error)
}

// BillingService builds invoices and keeps the credit ledger.
type BillingService interface {
	// InvoiceForOrder assembles the printable invoice payload for an order.
	InvoiceForOrder(ctx context.Context, orderID uint) (*Invoice, error)
	// RecordDuePayment settles credit between a customer and a restaurant.
	// direction is TxIn when the customer pays their dues, TxOut when the
	// restaurant returns an overpayment.
	RecordDuePayment(ctx context.Context, customerID, restaurantID uint, amount decimal.Decimal, direction string, remarks string) (*Transaction, error)
	// PaySubscriptionDue pays down a restaurant's platform dues. The due
	// balance never goes below zero; the payment is logged as a system entry.
	PaySubscriptionDue(ctx context.Context, restaurantID uint, amount decimal.Decimal, remarks string) (*Transaction, error)
	ListTransactions(ctx context.Context, query *TransactionQuery) ([]*Transaction, error)
}

// TransactionQuery filters ledger listings.
type TransactionQuery struct {
	RestaurantID uint // 0 means any
	Category     string
	Type         string
	SystemOnly   bool
	From         time.Time
	To           time.Time
	Limit        int
	Offset       int
}
