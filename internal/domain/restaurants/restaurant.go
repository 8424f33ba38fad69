package restaurants

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Restaurant is the central tenant entity. The slug is the public handle
// used in QR menu URLs.
type Restaurant struct {
	ID          uint
	OwnerID     uint   `validate:"required"`
	Slug        string `validate:"required,max=100"`
	Name        string `validate:"required,max=255"`
	CountryCode string `validate:"max=10"`
	Phone       string `validate:"max=20"`
	Email       string `validate:"omitempty,email"`
	LogoKey     string
	Address     string
	// TaxPercent applies on the invoice subtotal (e.g. 13 for 13%). Nil means no tax line.
	TaxPercent        *decimal.Decimal
	Balance           decimal.Decimal
	DueBalance        decimal.Decimal
	SubscriptionStart *time.Time
	SubscriptionEnd   *time.Time
	// IsOpen is the owner-facing open/closed toggle; a closed restaurant
	// still appears publicly but serves an empty menu.
	IsOpen bool
	// IsActive is the platform-level switch. Inactive restaurants are hidden
	// from the public list and cannot take orders.
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SubscriptionExpired reports whether the subscription ended before today.
func (r *Restaurant) SubscriptionExpired(today time.Time) bool {
	if r.SubscriptionEnd == nil {
		return false
	}
	y, m, d := today.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, today.Location())
	return r.SubscriptionEnd.Before(dayStart)
}

// Validate checks the entity against its business rules.
func (r *Restaurant) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
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
