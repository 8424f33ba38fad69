package config

// Log levels accepted by LoggerSettings.
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Log output types accepted by LoggerSettings.
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)
