package auth

import (
	"context"
	"time"

	"github.com/niyatanya/habit-tracker/internal/domain/users"
)

// TokenIssuer issues and verifies session tokens
type TokenIssuer interface {
	// Issue creates a signed token for the user
	Issue(user *users.User) (string, *Session, error)
	// Parse verifies a token and returns its session, or ErrInvalidToken
	Parse(token string) (*Session, error)
}

// SessionStore remembers signed-out sessions until their tokens expire
type SessionStore interface {
	// Revoke marks a token id as signed out for ttl
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	// IsRevoked reports whether the token id was signed out
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
