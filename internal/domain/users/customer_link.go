package users

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CustomerLink ties a customer to a restaurant with the running credit
// balances between them. Unique per (CustomerID, RestaurantID).
type CustomerLink struct {
	ID           uint
	CustomerID   uint
	RestaurantID uint
	ToPay        decimal.Decimal
	ToReceive    decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CustomerLinkRepository defines persistence operations for customer links.
type CustomerLinkRepository interface {
	// GetOrCreate returns the link for (customer, restaurant), creating it
	// with zero balances when missing.
	GetOrCreate(ctx context.Context, customerID, restaurantID uint) (*CustomerLink, error)
	ListByRestaurant(ctx context.Context, restaurantID uint, limit, offset int) ([]*CustomerLink, error)
	UpdateByID(ctx context.Context, link *CustomerLink) error
}
