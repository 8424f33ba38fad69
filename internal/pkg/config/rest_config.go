package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// DefaultPort mirrors the development server default the frontend expects.
const DefaultPort = "8000"

// RestConfig aggregates every settings block the REST server needs.
type RestConfig struct {
	Port            string           `mapstructure:"port"`
	FrontendBaseURL string           `mapstructure:"frontend_base_url"`
	Logger          LoggerSettings   `mapstructure:"logger"`
	Database        DatabaseSettings `mapstructure:"database"`
	Auth            AuthSettings     `mapstructure:"auth"`
	Redis           RedisSettings    `mapstructure:"redis"`
	Media           MediaSettings    `mapstructure:"media"`
}

// Validate checks every settings block.
func (c *RestConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	if err := c.Redis.Validate(); err != nil {
		return err
	}
	if err := c.Media.Validate(); err != nil {
		return err
	}
	return nil
}

// InitializeRestConfig loads the yaml config at configPath, applies
// RESTRO_-prefixed environment overrides (e.g. RESTRO_DATABASE_DSN) and
// validates the result.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(configPath)

	v.SetDefault("port", DefaultPort)
	v.SetDefault("frontend_base_url", "http://localhost:5173")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "restro.db")
	v.SetDefault("database.db_name", "restro")
	// Empty defaults keep viper aware of env-only keys so AutomaticEnv
	// overrides reach Unmarshal.
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl_hours", 72)
	v.SetDefault("redis.enabled", false)
	v.SetDefault("media.enabled", false)

	v.SetEnvPrefix("RESTRO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; defaults plus env cover local development.
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
