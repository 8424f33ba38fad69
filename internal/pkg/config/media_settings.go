package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// MediaSettings holds object storage settings for uploaded images.
// The store is optional: when Enabled is false image upload endpoints
// return 503 and entities keep whatever image key they already have.
type MediaSettings struct {
	Enabled   bool   `mapstructure:"enabled"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
	PublicURL string `mapstructure:"public_url"`
}

// Validate checks that all fields in MediaSettings are valid
func (s *MediaSettings) Validate() error {
	if !s.Enabled {
		return nil
	}
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for MediaSettings: %w", err)
	}
	if s.Endpoint == "" || s.Bucket == "" {
		return fmt.Errorf("endpoint and bucket are required when media storage is enabled")
	}
	return nil
}
