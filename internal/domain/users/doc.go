// Package users defines the account entity of the habit tracker, its
// roles, and the service and repository contracts for registration,
// authentication, profile management and administration.
package users
