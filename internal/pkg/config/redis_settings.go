package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// RedisSettings holds connection settings for the token revocation store.
// Redis is optional: when Enabled is false tokens are stateless JWTs and
// logout is a client-side concern.
type RedisSettings struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the host:port address for the redis client.
func (s *RedisSettings) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Validate checks that all fields in RedisSettings are valid
func (s *RedisSettings) Validate() error {
	if !s.Enabled {
		return nil
	}
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RedisSettings: %w", err)
	}
	if s.Host == "" {
		return fmt.Errorf("host is required when redis is enabled")
	}
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}
