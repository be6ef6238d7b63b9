package models

import (
	"time"

	"github.com/niyatanya/habit-tracker/internal/domain/habits"
)

// HabitRecordModel is the GORM database model for daily habit records
type HabitRecordModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	HabitID   string    `gorm:"not null;uniqueIndex:idx_habit_records_habit_date;type:varchar(36)"`
	Date      time.Time `gorm:"not null;uniqueIndex:idx_habit_records_habit_date"`
	Completed bool      `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (HabitRecordModel) TableName() string {
	return "habit_records"
}

// ToDomain converts GORM model to domain entity. Drivers may hand dates
// back in the server's zone, so they are pinned to UTC first.
func (m *HabitRecordModel) ToDomain() *habits.HabitRecord {
	return &habits.HabitRecord{
		ID:        m.ID,
		HabitID:   m.HabitID,
		Date:      habits.Day(m.Date.UTC()),
		Completed: m.Completed,
	}
}

// FromDomain converts domain entity to GORM model
func (m *HabitRecordModel) FromDomain(r *habits.HabitRecord) {
	m.ID = r.ID
	m.HabitID = r.HabitID
	m.Date = habits.Day(r.Date)
	m.Completed = r.Completed
}
