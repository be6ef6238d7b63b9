package users

import (
	"context"

	"github.com/samber/mo"
)

// AccountService defines methods for creating accounts and signing in.
type AccountService interface {
	// Register creates a USER account.
	// It returns ErrEmailTaken when the email already belongs to an account.
	Register(ctx context.Context, name, email, password string) (*User, error)

	// Login checks the credentials of an account.
	// Blocked accounts get ErrUserBlocked, anything else that does not match gets ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*User, error)

	// EnsureAdmin creates an ADMIN account unless the email is already registered.
	EnsureAdmin(ctx context.Context, name, email, password string) (*User, error)
}

// ProfileService defines methods a signed-in user applies to their own account.
type ProfileService interface {
	// GetByID retrieves an account by ID.
	GetByID(ctx context.Context, userID string) (*User, error)

	// Edit replaces name, email and password. An empty password keeps the current one.
	// It returns ErrEmailTaken when the new email belongs to another account.
	Edit(ctx context.Context, userID, name, email, password string) (*User, error)

	// Delete removes the account along with its habits and records.
	// Administrators cannot be deleted.
	Delete(ctx context.Context, userID string) error
}

// AdministrationService defines methods available to administrators.
type AdministrationService interface {
	// List retrieves all accounts considering paging when set.
	List(ctx context.Context, query *UserQuery) ([]*User, error)

	// GetByEmail retrieves an account by email.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Block prevents the account from signing in.
	Block(ctx context.Context, email string) (*User, error)

	// Unblock lifts a block.
	Unblock(ctx context.Context, email string) (*User, error)

	// Delete removes the account along with its habits and records.
	Delete(ctx context.Context, email string) error
}

// UserRepository defines the interface for User-related operations
type UserRepository interface {
	// Create adds a new User to the database
	Create(ctx context.Context, user *User) error
	// List lists Users ordered by email
	List(ctx context.Context, query *UserQuery) ([]*User, error)
	// GetByID retrieves a User by ID
	GetByID(ctx context.Context, userID string) (mo.Option[*User], error)
	// GetByEmail retrieves a User by normalized email
	GetByEmail(ctx context.Context, email string) (mo.Option[*User], error)
	// UpdateByID updates a User by ID
	UpdateByID(ctx context.Context, user *User) error
	// DeleteByID deletes a User together with the habits and records it owns
	DeleteByID(ctx context.Context, userID string) error
}

// PasswordHasher hashes and verifies account passwords
type PasswordHasher interface {
	// Hash returns an encoded hash of password
	Hash(password string) (string, error)
	// Compare returns nil when password matches hash
	Compare(hash, password string) error
}
