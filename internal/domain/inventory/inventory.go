package inventory

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Stock log direction values.
const (
	StockIn  = "in"
	StockOut = "out"
)

// RawMaterial is a purchasable ingredient with a running stock level.
type RawMaterial struct {
	ID           uint
	RestaurantID uint   `validate:"required"`
	Name         string `validate:"required,max=255"`
	UnitID       *uint
	Vendor       string `validate:"max=255"`
	Stock        decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProductRawMaterial declares how much of a raw material one unit of a
// product variant consumes. Combo items consume via each member product's
// links.
type ProductRawMaterial struct {
	ID               uint
	ProductID        uint `validate:"required"`
	ProductVariantID *uint
	RawMaterialID    uint            `validate:"required"`
	Quantity         decimal.Decimal `validate:"required"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// StockLog records one stock movement with its provenance. The presence of
// logs for an order is what makes deduction idempotent.
type StockLog struct {
	ID            uint
	RestaurantID  uint            `validate:"required"`
	RawMaterialID uint            `validate:"required"`
	Type          string          `validate:"required,oneof=in out"`
	Quantity      decimal.Decimal `validate:"required"`
	OrderID       *uint
	OrderItemID   *uint
	CreatedAt     time.Time
}

// Validate checks the entity against its business rules.
func (m *RawMaterial) Validate() error {
	validate := validator.New()
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("validation failed for RawMaterial: %w", err)
	}
	return nil
}

// Validate checks the entity against its business rules.
func (l *ProductRawMaterial) Validate() error {
	validate := validator.New()
	if err := validate.Struct(l); err != nil {
		return fmt.Errorf("validation failed for ProductRawMaterial: %w", err)
	}
	if !l.Quantity.IsPositive() {
		return fmt.Errorf("validation failed: consumption quantity must be positive")
	}
	return nil
}

// Validate checks the entity against its business rules.
func (s *StockLog) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for StockLog: %w", err)
	}
	return nil
}
