package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// AuthSettings holds token signing configuration for the unified login.
type AuthSettings struct {
	JWTSecret     string   `mapstructure:"jwt_secret" validate:"required,min=16"`
	TokenTTLHours int      `mapstructure:"token_ttl_hours" validate:"required,min=1,max=720"`
	BcryptCost    int      `mapstructure:"bcrypt_cost"`
	CountryCodes  []string `mapstructure:"country_codes"`
}

// TokenTTL returns the configured token lifetime.
func (s *AuthSettings) TokenTTL() time.Duration {
	return time.Duration(s.TokenTTLHours) * time.Hour
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}
	if s.BcryptCost != 0 && (s.BcryptCost < 4 || s.BcryptCost > 31) {
		return fmt.Errorf("bcrypt cost must be between 4 and 31")
	}
	return nil
}
