package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. HABIT_DATABASE_DSN.
const EnvPrefix = "HABIT"

// RestConfig holds the settings of the REST API server
type RestConfig struct {
	Port      string               `mapstructure:"port" validate:"required"`
	Database  DatabaseSettings     `mapstructure:"database"`
	Logger    LoggerSettings       `mapstructure:"logger"`
	Auth      AuthSettings         `mapstructure:"auth"`
	Sessions  SessionStoreSettings `mapstructure:"sessions"`
	RateLimit RateLimitSettings    `mapstructure:"rate_limit"`
	Admin     AdminSettings        `mapstructure:"admin"`
}

// Validate checks every settings group of RestConfig
func (c *RestConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	if err := c.Sessions.Validate(); err != nil {
		return err
	}
	if err := c.RateLimit.Validate(); err != nil {
		return err
	}
	return c.Admin.Validate()
}

// CliConfig holds the settings of the command line client
type CliConfig struct {
	Database DatabaseSettings `mapstructure:"database"`
	Logger   LoggerSettings   `mapstructure:"logger"`
}

// Validate checks every settings group of CliConfig
func (c *CliConfig) Validate() error {
	if err := c.Database.Validate(); err != nil {
		return err
	}
	return c.Logger.Validate()
}

// InitializeRestConfig loads, merges and validates the REST API configuration
func InitializeRestConfig(path string) (*RestConfig, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Logger.Normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// InitializeCliConfig loads, merges and validates the CLI configuration.
// The CLI reads the same file as the REST API and ignores the server sections.
func InitializeCliConfig(path string) (*CliConfig, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}

	var cfg CliConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Logger.Normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func newViper(path string) (*viper.Viper, error) {
	// .env is optional; real environment variables take precedence over it
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	return v, nil
}

// setDefaults registers every key so AutomaticEnv can override it even
// when the file does not mention it.
func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")

	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "habit-tracker.db")
	v.SetDefault("database.db_name", "")

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", 24*time.Hour)
	v.SetDefault("auth.issuer", "habit-tracker")

	v.SetDefault("sessions.type", SessionStoreMemory)
	v.SetDefault("sessions.redis_addr", "")
	v.SetDefault("sessions.redis_password", "")
	v.SetDefault("sessions.redis_db", 0)

	v.SetDefault("rate_limit.login_rps", 1.0)
	v.SetDefault("rate_limit.login_burst", 5)

	v.SetDefault("admin.name", "Administrator")
	v.SetDefault("admin.email", "")
	v.SetDefault("admin.password", "")
}
