package models

import (
	"time"

	"github.com/niyatanya/habit-tracker/internal/domain/habits"
)

// HabitModel is the GORM database model for habits. TitleKey holds the
// lower-cased title and backs the per-user uniqueness of titles.
type HabitModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	UserID          string    `gorm:"not null;index;uniqueIndex:idx_habits_user_title;type:varchar(36)"`
	Title           string    `gorm:"not null;type:varchar(255)"`
	TitleKey        string    `gorm:"not null;uniqueIndex:idx_habits_user_title;type:varchar(255)"`
	Description     string    `gorm:"type:varchar(1000)"`
	Frequency       string    `gorm:"not null;type:varchar(10)"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (HabitModel) TableName() string {
	return "habits"
}

// ToDomain converts GORM model to domain entity
func (m *HabitModel) ToDomain() *habits.Habit {
	return &habits.Habit{
		ID:              m.ID,
		UserID:          m.UserID,
		Title:           m.Title,
		Description:     m.Description,
		Frequency:       habits.Frequency(m.Frequency),
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *HabitModel) FromDomain(h *habits.Habit) {
	m.ID = h.ID
	m.UserID = h.UserID
	m.Title = h.Title
	m.TitleKey = habits.TitleKey(h.Title)
	m.Description = h.Description
	m.Frequency = string(h.Frequency)
	m.DateTimeCreated = h.DateTimeCreated
}
