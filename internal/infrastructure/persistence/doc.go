// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to store accounts, habits and habit
// records in PostgreSQL or SQLite. Unique constraints in the schema back
// the uniqueness rules of the domain, and violations surface as the
// matching domain errors.
package persistence
