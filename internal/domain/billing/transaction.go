package billing

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Transaction direction values.
const (
	TxIn  = "in"
	TxOut = "out"
)

// Transaction category values.
const (
	CategoryTransactionFee  = "transaction_fee"
	CategorySubscriptionFee = "subscription_fee"
	CategoryDuePaid         = "due_paid"
	CategoryPaidRecord      = "paid_record"
	CategoryReceivedRecord  = "received_record"
)

// Transaction is one ledger entry. System entries (IsSystem) carry no
// restaurant and feed the platform revenue dashboard.
type Transaction struct {
	ID            uint
	RestaurantID  *uint
	Amount        decimal.Decimal `validate:"required"`
	Type          string          `validate:"required,oneof=in out"`
	Category      string          `validate:"required"`
	PaymentStatus string          `validate:"omitempty,oneof=pending success paid"`
	IsSystem      bool
	Remarks       string
	CreatedAt     time.Time
}

// Validate checks the entity against its business rules.
func (t *Transaction) Validate() error {
	validate := validator.New()
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("validation failed for Transaction: %w", err)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("validation failed: transaction amount must be positive")
	}
	return nil
}
