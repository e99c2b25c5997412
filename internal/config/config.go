package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
// Pool sizing bounds concurrent store access; the core itself carries
// no retry or queueing logic on top of it.
type DatabaseConfig struct {
	URL                    string `mapstructure:"url"                       validate:"required"`
	MaxOpenConns           int    `mapstructure:"max_open_conns"            validate:"gte=1"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns"            validate:"gte=0"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes" validate:"gte=1"`
	ConnectTimeoutSeconds  int    `mapstructure:"connect_timeout_seconds"   validate:"gte=1"`
}

// AuthConfig contains all authentication settings.
// APIKeys maps opaque key strings to the identity they authenticate;
// it stands in for a user directory.
type AuthConfig struct {
	JWTSecret          string               `mapstructure:"jwt_secret"           validate:"required,min=32"`
	TokenLifetimeHours int                  `mapstructure:"token_lifetime_hours" validate:"required,gte=1"`
	APIKeys            map[string]APIKeyRef `mapstructure:"api_keys"             validate:"required,min=1"`
}

// APIKeyRef names the identity an API key resolves to.
type APIKeyRef struct {
	UserID int64  `mapstructure:"user_id" validate:"required,gt=0"`
	Name   string `mapstructure:"name"    validate:"required"`
}

// CORSConfig contains the allowed origins for the browser client.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}
