package restaurants

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Table is a physical table guests can be seated at or order from via QR.
type Table struct {
	ID           uint
	RestaurantID uint   `validate:"required"`
	Name         string `validate:"required,max=100"`
	Capacity     int    `validate:"min=0"`
	Floor        string `validate:"max=50"`
	NearBy       string `validate:"max=255"`
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks the entity against its business rules.
func (t *Table) Validate() error {
	validate := validator.New()
	if err := validate.Struct(t); err != nil {
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
