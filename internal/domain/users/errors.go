package users

import "errors"

var (
	// ErrUserNotFound is returned when no account matches the lookup
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when registering or renaming onto an existing email
	ErrEmailTaken = errors.New("email is already registered")
	// ErrInvalidCredentials is returned for an unknown email or a wrong password
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserBlocked is returned when a blocked account tries to sign in
	ErrUserBlocked = errors.New("account is blocked")
	// ErrAdminProtected is returned when blocking or deleting an administrator
	ErrAdminProtected = errors.New("operation not permitted on an admin user")
	// ErrAlreadyBlocked is returned when blocking a blocked account
	ErrAlreadyBlocked = errors.New("user is already blocked")
	// ErrNotBlocked is returned when unblocking an account that is not blocked
	ErrNotBlocked = errors.New("user is already unblocked")
	// ErrWeakPassword is returned for passwords shorter than MinPasswordLength
	ErrWeakPassword = errors.New("password is too short")
)
