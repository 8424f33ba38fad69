package orders

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Order type values.
const (
	TypeTable    = "table"
	TypePacking  = "packing"
	TypeDelivery = "delivery"
)

// Order status values. Lifecycle: pending → accepted → running → ready →
// served, with rejected reachable from pending or accepted.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRunning  = "running"
	StatusReady    = "ready"
	StatusServed   = "served"
	StatusRejected = "rejected"
)

// Payment status values.
const (
	PaymentPending = "pending"
	PaymentSuccess = "success"
	PaymentPaid    = "paid"
)

// Payment method values.
const (
	MethodCash    = "cash"
	MethodEWallet = "e_wallet"
	MethodBank    = "bank"
)

// allowedNext is the full status machine.
var allowedNext = map[string][]string{
	StatusPending:  {StatusAccepted, StatusRejected},
	StatusAccepted: {StatusRunning, StatusRejected},
	StatusRunning:  {StatusReady},
	StatusReady:    {StatusServed},
	StatusServed:   {},
	StatusRejected: {},
}

// KitchenAllowedNext restricts the kitchen surface: it can advance an order
// up to ready but never serve or reject.
var KitchenAllowedNext = map[string][]string{
	StatusPending:  {StatusAccepted},
	StatusAccepted: {StatusRunning},
	StatusRunning:  {StatusReady},
	StatusReady:    {},
}

// OpenStatuses are the states the kitchen dashboard shows.
var OpenStatuses = []string{StatusPending, StatusAccepted, StatusRunning, StatusReady}

// CanTransition reports whether status `to` is reachable from `from`.
func CanTransition(from, to string) bool {
	for _, next := range allowedNext[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AllowedNext returns the states reachable from `from`, for error messages.
func AllowedNext(from string) []string {
	return allowedNext[from]
}

// Order is one customer order, dine-in, packing or delivery.
type Order struct {
	ID            uint
	RestaurantID  uint `validate:"required"`
	CustomerID    *uint
	TableID       *uint
	WaiterID      *uint  // staff id of the serving waiter
	OrderType     string `validate:"required,oneof=table packing delivery"`
	Address       string
	Status        string `validate:"required,oneof=pending accepted running ready served rejected"`
	PaymentStatus string `validate:"required,oneof=pending success paid"`
	PaymentMethod string `validate:"omitempty,oneof=cash e_wallet bank"`
	PeopleFor     int
	// Total is the grand total: subtotal + tax + service charge - discount.
	Total         decimal.Decimal
	ServiceCharge *decimal.Decimal
	Discount      *decimal.Decimal
	RejectReason  string
	// TableNumber is free text captured from QR orders when no Table row matches.
	TableNumber string
	Items       []OrderItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderItem is one line of an order. Either a product variant or a combo
// set; the unit price is captured at order time so menu edits never change
// past bills.
type OrderItem struct {
	ID               uint
	OrderID          uint
	ProductID        *uint
	ProductVariantID *uint
	ComboSetID       *uint
	// Name is the display name captured at order time (combo name wins).
	Name      string
	Price     decimal.Decimal `validate:"required"`
	Quantity  decimal.Decimal `validate:"required"`
	Total     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Subtotal sums the item line totals.
func (o *Order) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range o.Items {
		subtotal = subtotal.Add(item.Total)
	}
	return subtotal
}

// Validate checks the entity against its business rules.
func (o *Order) Validate() error {
	validate := validator.New()
	if err := validate.Struct(o); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}
	if len(o.Items) == 0 {
		return fmt.Errorf("validation failed: order has no items")
	}
	for i := range o.Items {
		item := &o.Items[i]
		if item.ProductVariantID == nil && item.ComboSetID == nil {
			return fmt.Errorf("validation failed: item %d has neither product variant nor combo", i)
		}
		if !item.Quantity.IsPositive() {
			return fmt.Errorf("validation failed: item %d quantity must be positive", i)
		}
	}
	return nil
}
