// Package models contains GORM database models for infrastructure layer.
// These models handle database persistence and are separated from domain entities
// so that storage concerns such as normalized lookup columns stay out of the domain.
package models
