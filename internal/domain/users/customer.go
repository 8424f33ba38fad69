package users

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// UnusablePassword marks customer rows created from walk-in orders that
// have never set a password and therefore cannot log in.
const UnusablePassword = "!"

// Customer is a diner account, kept separate from staff Users.
// Identity is (CountryCode, Phone), unique together.
type Customer struct {
	ID           uint
	Name         string `validate:"required,max=255"`
	CountryCode  string `validate:"max=10"`
	Phone        string `validate:"required,max=20"`
	Address      string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanLogin reports whether the customer has a usable password.
func (c *Customer) CanLogin() bool {
	return c.PasswordHash != "" && c.PasswordHash != UnusablePassword
}

// Validate checks the entity against its business rules.
func (c *Customer) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
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
