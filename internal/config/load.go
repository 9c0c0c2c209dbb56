package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Default values applied before reading config files or the environment.
const (
	defaultPort                 = 8080
	defaultLogLevel             = "info"
	defaultMaxOpenConns         = 10
	defaultTokenLifetimeMinutes = 24 * 60
	defaultBcryptCost           = 10
)

// Load reads configuration from an optional config.yaml in the working
// directory and from environment variables with the MICROBLOG_ prefix
// (e.g. MICROBLOG_AUTH_JWT_SECRET). Environment variables take precedence
// over file values. The populated Config is validated before being
// returned; an invalid or incomplete configuration is an error so the
// server fails fast instead of serving requests half-configured.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", defaultPort)
	v.SetDefault("server.log_level", defaultLogLevel)
	v.SetDefault("database.max_open_conns", defaultMaxOpenConns)
	v.SetDefault("auth.token_lifetime_minutes", defaultTokenLifetimeMinutes)
	v.SetDefault("auth.bcrypt_cost", defaultBcryptCost)

	// Keys without defaults must be registered or Unmarshal will not see
	// their environment values. Validation rejects the empty values below
	// when nothing overrides them.
	v.SetDefault("database.url", "")
	v.SetDefault("auth.jwt_secret", "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("MICROBLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; the environment can carry
		// everything. Any other read failure is fatal.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
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
