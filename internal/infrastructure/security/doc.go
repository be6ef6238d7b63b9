// Package security implements password hashing, session tokens and the
// stores that keep track of signed-out sessions.
package security
