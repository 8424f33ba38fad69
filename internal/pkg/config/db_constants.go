package config

// Supported database backends
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)
