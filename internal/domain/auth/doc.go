// Package auth defines signed-in sessions: the token that identifies a
// session and the store that remembers which sessions were signed out.
package auth
