//go:build unit
// +build unit

package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/niyatanya/habit-tracker/internal/domain/users"
)

func TestSession_TTL(t *testing.T) {
	now := time.Now()
	s := &Session{ExpiresAt: now.Add(time.Hour)}

	assert.Equal(t, time.Hour, s.TTL(now))
	assert.Equal(t, time.Duration(0), s.TTL(now.Add(2*time.Hour)))
}

func TestSession_IsAdmin(t *testing.T) {
	assert.True(t, (&Session{Role: users.RoleAdmin}).IsAdmin())
	assert.False(t, (&Session{Role: users.RoleUser}).IsAdmin())
}
