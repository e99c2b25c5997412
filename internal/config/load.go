package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and optionally a
// config file (config.yaml in the working directory). Environment
// variables take precedence over values from config files, using the
// TRACKER_ prefix with underscores for nesting, e.g. TRACKER_SERVER_PORT
// or TRACKER_AUTH_JWT_SECRET.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Config file is optional; environment-only deployments are fine.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("TRACKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only surfaces keys viper already knows about during
	// Unmarshal, so bind the secrets that have no default explicitly.
	for _, key := range []string{"database.url", "auth.jwt_secret"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers the defaults applied when neither a config file
// nor the environment provides a value. The demo API keys mirror the
// ones the browser client ships with.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.log_level", "info")

	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime_minutes", 5)
	v.SetDefault("database.connect_timeout_seconds", 10)

	v.SetDefault("auth.token_lifetime_hours", 24)
	v.SetDefault("auth.api_keys", map[string]map[string]any{
		"demo-key-123":  {"user_id": int64(1), "name": "Demo User"},
		"admin-key-456": {"user_id": int64(2), "name": "Admin User"},
	})

	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})
}
