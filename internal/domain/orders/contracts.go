package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderRepository defines persistence operations for orders and their items.
type OrderRepository interface {
	// Create persists an order with its items in one transaction.
	Create(ctx context.Context, order *Order) error
	// GetByID loads an order with its items.
	GetByID(ctx context.Context, id uint) (*Order, error)
	List(ctx context.Context, query *OrderQuery) ([]*Order, error)
	// UpdateByID persists mutable header fields (status, payment, waiter,
	// discount, service charge, totals). Items are immutable after create.
	UpdateByID(ctx context.Context, order *Order) error
	DeleteByID(ctx context.Context, id uint) error
	// SalesTotals aggregates served-order grand totals per restaurant in a
	// time window, for dashboards.
	SalesTotals(ctx context.Context, restaurantIDs []uint, from, to time.Time) (decimal.Decimal, int64, error)
}

// Actor identifies who is driving a status change, so kitchen and waiter
// restrictions can be enforced.
type Actor struct {
	Role    string
	StaffID uint
}

// PlacedItem is one requested line of a new order.
type PlacedItem struct {
	ProductVariantID *uint
	ComboSetID       *uint
	Quantity         decimal.Decimal
}

// PlaceOrderInput carries everything needed to place an order. Prices are
// never taken from the client; they are resolved from the menu.
type PlaceOrderInput struct {
	RestaurantID uint
	CustomerID   *uint
	TableID      *uint
	TableNumber  string
	OrderType    string
	Address      string
	PeopleFor    int
	Items        []PlacedItem
}

// PublicOrderInput carries an unauthenticated QR order. The diner is
// found or created by phone.
type PublicOrderInput struct {
	Slug         string
	CustomerName string
	CountryCode  string
	Phone        string
	TableID      *uint
	TableNumber  string
	OrderType    string
	Address      string
	PeopleFor    int
	Items        []PlacedItem
}

// OrderService places orders and drives the status machine.
type OrderService interface {
	// Place resolves item prices from the menu, captures names, and
	// persists the order as pending.
	Place(ctx context.Context, input *PlaceOrderInput) (*Order, error)
	// PlaceBySlug places a QR order against a restaurant slug, creating a
	// walk-in customer row for the phone when none exists.
	PlaceBySlug(ctx context.Context, input *PublicOrderInput) (*Order, error)
	GetByID(ctx context.Context, id uint) (*Order, error)
	List(ctx context.Context, query *OrderQuery) ([]*Order, error)
	// UpdateStatus transitions an order. Kitchen actors can never serve or
	// reject; rejection requires a reason; reaching ready deducts stock.
	UpdateStatus(ctx context.Context, orderID uint, to, reason string, actor Actor) (*Order, error)
	// Settle records payment on a served or rejected-free order and applies
	// discount and service charge to the grand total.
	Settle(ctx context.Context, orderID uint, method string, discount, serviceCharge *decimal.Decimal) (*Order, error)
	// AssignWaiter pins a waiter to a running order.
	AssignWaiter(ctx context.Context, orderID, staffID uint) error
}

// OrderQuery filters order listings.
type OrderQuery struct {
	RestaurantIDs []uint
	CustomerID    uint // 0 means any
	TableID       uint // 0 means any
	WaiterID      uint // 0 means any
	Statuses      []string
	OrderType     string
	CreatedAfter  time.Time
	Limit         int
	Offset        int
	SortBy        string
	SortOrder     string
}

// NewOrderQuery returns a query with the defaults the dashboards use.
func NewOrderQuery() *OrderQuery {
	return &OrderQuery{
		Limit:     200,
		SortBy:    "created_at",
		SortOrder: "desc",
	}
}

// Validate rejects sort fields that are not whitelisted, since the sort
// column is interpolated into SQL.
func (q *OrderQuery) Validate() error {
	switch q.SortBy {
	case "", "id", "created_at", "total", "status":
	default:
		return fmt.Errorf("invalid sort field: %s", q.SortBy)
	}
	switch q.SortOrder {
	case "", "asc", "desc":
	default:
		return fmt.Errorf("invalid sort order: %s", q.SortOrder)
	}
	return nil
}
