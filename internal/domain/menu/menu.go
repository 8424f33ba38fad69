package menu

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Discount type values for product variants.
const (
	DiscountFlat       = "flat"
	DiscountPercentage = "percentage"
)

// Dish type values.
const (
	DishVeg    = "veg"
	DishNonVeg = "non_veg"
)

// Unit is a measurement unit a restaurant sells portions in (plate, half, kg).
type Unit struct {
	ID           uint
	RestaurantID uint   `validate:"required"`
	Name         string `validate:"required,max=50"`
	Symbol       string `validate:"max=20"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Category groups products on the menu.
type Category struct {
	ID           uint
	RestaurantID uint   `validate:"required"`
	Name         string `validate:"required,max=255"`
	ImageKey     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Product is a dish. Prices live on its variants.
type Product struct {
	ID           uint
	RestaurantID uint   `validate:"required"`
	CategoryID   uint   `validate:"required"`
	Name         string `validate:"required,max=255"`
	ImageKey     string
	IsActive     bool
	DishType     string `validate:"required,oneof=veg non_veg"`
	Variants     []ProductVariant
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProductVariant is one sellable portion of a product with its own price
// and optional discount.
type ProductVariant struct {
	ID           uint
	ProductID    uint
	UnitID       uint            `validate:"required"`
	Price        decimal.Decimal `validate:"required"`
	DiscountType string          `validate:"omitempty,oneof=flat percentage"`
	Discount     decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FinalPrice computes the price after discount. Flat discounts clamp at
// zero; percentage discounts scale the price down.
func (v *ProductVariant) FinalPrice() decimal.Decimal {
	if v.Discount.IsZero() {
		return v.Price
	}
	switch v.DiscountType {
	case DiscountFlat:
		final := v.Price.Sub(v.Discount)
		if final.IsNegative() {
			return decimal.Zero
		}
		return final
	case DiscountPercentage:
		hundred := decimal.NewFromInt(100)
		return v.Price.Mul(hundred.Sub(v.Discount)).Div(hundred)
	}
	return v.Price
}

// ComboSet bundles products at a fixed price.
type ComboSet struct {
	ID           uint
	RestaurantID uint   `validate:"required"`
	Name         string `validate:"required,max=255"`
	Description  string
	ImageKey     string
	ProductIDs   []uint
	Price        decimal.Decimal `validate:"required"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func validateStruct(v interface{}) error {
	validate := validator.New()
	if err := validate.Struct(v); err != nil {
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
	return nil
}

// Validate checks the entity against its business rules.
func (u *Unit) Validate() error { return validateStruct(u) }

// Validate checks the entity against its business rules.
func (c *Category) Validate() error { return validateStruct(c) }

// Validate checks the entity against its business rules.
func (p *Product) Validate() error { return validateStruct(p) }

// Validate checks the entity against its business rules.
func (v *ProductVariant) Validate() error { return validateStruct(v) }

// Validate checks the entity against its business rules.
func (c *ComboSet) Validate() error { return validateStruct(c) }
