//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDatabaseSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *DatabaseSettings
		expectedError bool
	}{
		{
			name: "valid sqlite settings",
			settings: &DatabaseSettings{
				Type:   "sqlite",
				DSN:    ":memory:",
				DBName: "restro",
			},
			expectedError: false,
		},
		{
			name: "valid postgres settings",
			settings: &DatabaseSettings{
				Type:   "postgres",
				DSN:    "host=localhost user=restro password=restro",
				DBName: "restro",
			},
			expectedError: false,
		},
		{
			name: "missing type",
			settings: &DatabaseSettings{
				DSN:    ":memory:",
				DBName: "restro",
			},
			expectedError: true,
		},
		{
			name: "unsupported type",
			settings: &DatabaseSettings{
				Type:   "mysql",
				DSN:    "user:password@tcp(localhost:3306)/restro",
				DBName: "restro",
			},
			expectedError: true,
		},
		{
			name: "missing DSN",
			settings: &DatabaseSettings{
				Type:   "sqlite",
				DBName: "restro",
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLoggerSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *LoggerSettings
		expectedError bool
	}{
		{
			name:          "valid console settings",
			settings:      &LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeConsole},
			expectedError: false,
		},
		{
			name: "valid file settings",
			settings: &LoggerSettings{
				LogLevel:   LogLevelDebug,
				LogType:    LogTypeFile,
				FilePath:   "restro.log",
				MaxSize:    10,
				MaxBackups: 3,
				MaxAge:     30,
			},
			expectedError: false,
		},
		{
			name:          "unknown level",
			settings:      &LoggerSettings{LogLevel: "verbose", LogType: LogTypeConsole},
			expectedError: true,
		},
		{
			name:          "file logger without path",
			settings:      &LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeFile},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestAuthSettingsValidation(t *testing.T) {
	valid := &AuthSettings{JWTSecret: "0123456789abcdef0123", TokenTTLHours: 72}
	require.NoError(t, valid.Validate())

	shortSecret := &AuthSettings{JWTSecret: "short", TokenTTLHours: 72}
	require.Error(t, shortSecret.Validate())

	badCost := &AuthSettings{JWTSecret: "0123456789abcdef0123", TokenTTLHours: 72, BcryptCost: 2}
	require.Error(t, badCost.Validate())
}

func TestRedisSettingsDisabledSkipsValidation(t *testing.T) {
	s := &RedisSettings{Enabled: false}
	require.NoError(t, s.Validate())

	enabled := &RedisSettings{Enabled: true, Host: "", Port: 6379}
	require.Error(t, enabled.Validate())
}

func TestInitializeRestConfigDefaults(t *testing.T) {
	cfg, err := InitializeRestConfig("testdata/does-not-exist.yaml")
	require.Error(t, err) // defaults lack a jwt secret

	t.Setenv("RESTRO_AUTH_JWT_SECRET", "0123456789abcdef0123")
	cfg, err = InitializeRestConfig("testdata/does-not-exist.yaml")
	require.NoError(t, err)
	require.Equal(t, DefaultPort, cfg.Port)
	require.Equal(t, SqliteDbType, cfg.Database.Type)
}
