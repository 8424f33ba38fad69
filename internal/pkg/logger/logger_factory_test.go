//go:build unit
// +build unit

package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/ravipangali7/My-Restro-Server/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLoggerSingleton() {
	loggerInstance = nil
	loggerErr = nil
	loggerOnce = sync.Once{}
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name      string
		settings  *config.LoggerSettings
		wantErr   bool
		setupTest func(*testing.T) string
	}{
		{
			name: "console logger",
			settings: &config.LoggerSettings{
				LogLevel: config.LogLevelInfo,
				LogType:  config.LogTypeConsole,
			},
			wantErr: false,
		},
		{
			name: "file logger with rotation",
			settings: &config.LoggerSettings{
				LogLevel:   config.LogLevelInfo,
				LogType:    config.LogTypeFile,
				FilePath:   "",
				MaxSize:    10,
				MaxBackups: 3,
				MaxAge:     28,
			},
			wantErr: false,
			setupTest: func(t *testing.T) string {
				tmpDir := t.TempDir()
				return filepath.Join(tmpDir, "restro.log")
			},
		},
		{
			name: "invalid log level",
			settings: &config.LoggerSettings{
				LogLevel: "invalid",
				LogType:  config.LogTypeConsole,
			},
			wantErr: true,
		},
		{
			name: "unsupported log type",
			settings: &config.LoggerSettings{
				LogLevel: config.LogLevelInfo,
				LogType:  "unknown",
			},
			wantErr: true,
		},
		{
			name: "file logger missing rotation settings",
			settings: &config.LoggerSettings{
				LogLevel: config.LogLevelInfo,
				LogType:  config.LogTypeFile,
				FilePath: "/tmp/restro.log",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(resetLoggerSingleton)

			if tt.setupTest != nil {
				tt.settings.FilePath = tt.setupTest(t)
			}

			err := InitLogger(tt.settings)

			if tt.wantErr {
				assert.Error(t, err, "expected error for test: %s", tt.name)

				log, getErr := GetLogger()
				assert.Error(t, getErr)
				assert.Nil(t, log)
			} else {
				require.NoError(t, err, "unexpected error for test: %s", tt.name)

				log, err := GetLogger()
				require.NoError(t, err)
				require.NotNil(t, log)

				if tt.settings.LogType == config.LogTypeFile {
					log.Info("test message")
					_, err := os.Stat(tt.settings.FilePath)
					assert.NoError(t, err)
				}
			}
		})
	}
}

func TestGetLogger_BeforeInit(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	log, err := GetLogger()
	assert.Error(t, err)
	assert.Nil(t, log)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel(config.LogLevelDebug))
	assert.Equal(t, slog.LevelWarn, parseLevel(config.LogLevelWarning))
	assert.Equal(t, slog.LevelError, parseLevel(config.LogLevelCritical))
	assert.Equal(t, slog.LevelInfo, parseLevel("anything else"))
}
