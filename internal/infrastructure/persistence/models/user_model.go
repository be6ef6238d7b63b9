package models

import (
	"time"

	"github.com/niyatanya/habit-tracker/internal/domain/users"
)

// UserModel is the GORM database model for accounts
type UserModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	Name            string    `gorm:"not null;type:varchar(255)"`
	Email           string    `gorm:"not null;uniqueIndex:idx_users_email;type:varchar(255)"`
	PasswordHash    string    `gorm:"not null;type:varchar(255)"`
	Role            string    `gorm:"not null;type:varchar(10)"`
	Blocked         bool      `gorm:"not null;default:false"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:              m.ID,
		Name:            m.Name,
		Email:           m.Email,
		PasswordHash:    m.PasswordHash,
		Role:            users.Role(m.Role),
		Blocked:         m.Blocked,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Name = u.Name
	m.Email = users.NormalizeEmail(u.Email)
	m.PasswordHash = u.PasswordHash
	m.Role = string(u.Role)
	m.Blocked = u.Blocked
	m.DateTimeCreated = u.DateTimeCreated
}
