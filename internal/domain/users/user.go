package users

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/niyatanya/habit-tracker/internal/pkg/validators"
)

// Role is the privilege level of an account
type Role string

// Supported roles
const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// MinPasswordLength is the shortest accepted plain-text password
const MinPasswordLength = 6

// ParseRole converts a stored or user-supplied role name
func ParseRole(value string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(value))) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role: %s", value)
	}
}

// User entity
type User struct {
	ID              string    `validate:"required,uuid4"`
	Name            string    `validate:"required,min=1,max=255"`
	Email           string    `validate:"required,email,max=255"`
	PasswordHash    string    `validate:"required"`
	Role            Role      `validate:"required,oneof=USER ADMIN"`
	Blocked         bool
	DateTimeCreated time.Time `validate:"required"`
}

// IsAdmin reports whether the user holds the ADMIN role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Validate for validating User struct
func (u *User) Validate() error {
	return validators.ValidateStruct(validator.New(), u)
}

// NormalizeEmail trims and lower-cases an address. Emails are compared in
// this form everywhere, so "Kate@Example.com" and "kate@example.com" are one account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UserQuery pages through the user list
type UserQuery struct {
	Limit  int `validate:"omitempty,gt=0"`
	Offset int `validate:"omitempty,gte=0"`
}

// NewUserQuery creates a UserQuery without paging
func NewUserQuery() *UserQuery {
	return &UserQuery{}
}

// Validate for validating UserQuery struct
func (q *UserQuery) Validate() error {
	return validators.ValidateStruct(validator.New(), q)
}
