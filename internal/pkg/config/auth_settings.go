package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// AuthSettings configures session token signing.
type AuthSettings struct {
	JWTSecret string        `mapstructure:"jwt_secret" validate:"required,min=16"`
	TokenTTL  time.Duration `mapstructure:"token_ttl" validate:"required,min=1m"`
	Issuer    string        `mapstructure:"issuer" validate:"required"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}
	return nil
}

// SessionStoreSettings selects where revoked sessions are remembered.
type SessionStoreSettings struct {
	Type          string `mapstructure:"type" validate:"required,oneof=memory redis"`
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db" validate:"min=0,max=15"`
}

// Validate checks that all fields in SessionStoreSettings are valid
func (s *SessionStoreSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for SessionStoreSettings: %w", err)
	}

	if s.Type == SessionStoreRedis && s.RedisAddr == "" {
		return fmt.Errorf("redis address is required for redis session store")
	}
	return nil
}

// RateLimitSettings bounds login attempts per client IP.
type RateLimitSettings struct {
	LoginRPS   float64 `mapstructure:"login_rps" validate:"gt=0"`
	LoginBurst int     `mapstructure:"login_burst" validate:"min=1"`
}

// Validate checks that all fields in RateLimitSettings are valid
func (s *RateLimitSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RateLimitSettings: %w", err)
	}
	return nil
}

// AdminSettings describes the administrator account created on startup.
// Leaving Email empty disables the bootstrap.
type AdminSettings struct {
	Name     string `mapstructure:"name"`
	Email    string `mapstructure:"email" validate:"omitempty,email"`
	Password string `mapstructure:"password" validate:"omitempty,min=6"`
}

// Enabled reports whether an administrator should be bootstrapped.
func (s *AdminSettings) Enabled() bool {
	return s.Email != ""
}

// Validate checks that all fields in AdminSettings are valid
func (s *AdminSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AdminSettings: %w", err)
	}

	if s.Email != "" && s.Password == "" {
		return fmt.Errorf("admin password is required when admin email is set")
	}
	return nil
}
