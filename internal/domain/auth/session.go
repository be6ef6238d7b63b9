package auth

import (
	"errors"
	"time"

	"github.com/niyatanya/habit-tracker/internal/domain/users"
)

// Session errors
var (
	ErrInvalidToken   = errors.New("invalid or expired token")
	ErrSessionRevoked = errors.New("session has been signed out")
)

// Session is what a token proves about its bearer
type Session struct {
	TokenID   string
	UserID    string
	Role      users.Role
	ExpiresAt time.Time
}

// IsAdmin reports whether the session was issued to an administrator
func (s *Session) IsAdmin() bool {
	return s.Role == users.RoleAdmin
}

// TTL is the remaining lifetime of the session at now, never negative
func (s *Session) TTL(now time.Time) time.Duration {
	if d := s.ExpiresAt.Sub(now); d > 0 {
		return d
	}
	return 0
}
