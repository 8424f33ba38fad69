package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DatabaseSettings holds connection settings for the relational database.
type DatabaseSettings struct {
	Type   string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`
	DSN    string `mapstructure:"dsn" validate:"required"`
	DBName string `mapstructure:"db_name" validate:"required"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}
	return nil
}
