package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Database type constants
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// DatabaseSettings holds the connection settings for the habit store.
// For postgres, DSN points at the server and DBName, when set, is created
// on first connect and used for all further queries. For sqlite, DSN is a
// file path or an in-memory URI and DBName is ignored.
type DatabaseSettings struct {
	Type   string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`
	DSN    string `mapstructure:"dsn"`
	DBName string `mapstructure:"db_name" validate:"omitempty,max=63"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	if s.Type == PostgresDbType && s.DSN == "" {
		return fmt.Errorf("dsn is required for postgres")
	}

	// DBName ends up in a CREATE DATABASE statement
	for _, r := range s.DBName {
		if !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') && r != '_' {
			return fmt.Errorf("db name may only contain lowercase letters, digits and underscores")
		}
	}

	return nil
}
