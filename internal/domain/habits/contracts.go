package habits

import (
	"context"
	"time"

	"github.com/samber/mo"
)

// HabitService defines methods for managing the habits of a user. Habits
// are addressed by title, which is unique per user regardless of case.
type HabitService interface {
	// Create adds a habit. It returns ErrHabitExists for a duplicate title.
	Create(ctx context.Context, userID, title, description string, frequency Frequency) (*Habit, error)

	// List retrieves all habits of a user ordered by title.
	List(ctx context.Context, userID string) ([]*Habit, error)

	// GetByTitle retrieves a habit. It returns ErrHabitNotFound when absent.
	GetByTitle(ctx context.Context, userID, title string) (*Habit, error)

	// Edit replaces title, description and frequency of the habit named oldTitle.
	Edit(ctx context.Context, userID, oldTitle, newTitle, newDescription string, newFrequency Frequency) (*Habit, error)

	// Delete removes the habit and all of its records.
	Delete(ctx context.Context, userID, title string) error
}

// HabitRecordService defines methods for tracking habit completion per day.
type HabitRecordService interface {
	// Track records whether the habit was done on date.
	// It returns ErrRecordExists when the day is already recorded.
	Track(ctx context.Context, habit *Habit, date time.Time, completed bool) (*HabitRecord, error)

	// Edit changes the completion flag of an existing record.
	Edit(ctx context.Context, habit *Habit, date time.Time, completed bool) (*HabitRecord, error)

	// Delete removes the record of date.
	Delete(ctx context.Context, habit *Habit, date time.Time) error

	// List retrieves all records of the habit keyed by date.
	List(ctx context.Context, habit *Habit) (map[time.Time]*HabitRecord, error)

	// GetByDate retrieves the record of date. It returns ErrRecordNotFound when absent.
	GetByDate(ctx context.Context, habit *Habit, date time.Time) (*HabitRecord, error)

	// Exists reports whether date is recorded for the habit.
	Exists(ctx context.Context, habit *Habit, date time.Time) (bool, error)
}

// HabitRepository defines the interface for Habit-related operations
type HabitRepository interface {
	// Create adds a new Habit to the database
	Create(ctx context.Context, habit *Habit) error
	// ListByUserID lists the Habits of a user ordered by title
	ListByUserID(ctx context.Context, userID string) ([]*Habit, error)
	// GetByTitle retrieves a Habit of a user by case-insensitive title
	GetByTitle(ctx context.Context, userID, title string) (mo.Option[*Habit], error)
	// UpdateByID updates a Habit by ID
	UpdateByID(ctx context.Context, habit *Habit) error
	// DeleteByID deletes a Habit and its records
	DeleteByID(ctx context.Context, habitID string) error
}

// HabitRecordRepository defines the interface for HabitRecord-related operations
type HabitRecordRepository interface {
	// Create adds a new HabitRecord to the database
	Create(ctx context.Context, record *HabitRecord) error
	// ListByHabitID lists the records of a habit ordered by date
	ListByHabitID(ctx context.Context, habitID string) ([]*HabitRecord, error)
	// ListByHabitIDBetween lists the records of a habit with from <= date <= to
	ListByHabitIDBetween(ctx context.Context, habitID string, from, to time.Time) ([]*HabitRecord, error)
	// GetByDate retrieves the record of a habit for a day
	GetByDate(ctx context.Context, habitID string, date time.Time) (mo.Option[*HabitRecord], error)
	// UpdateByID updates a HabitRecord by ID
	UpdateByID(ctx context.Context, record *HabitRecord) error
	// DeleteByID deletes a HabitRecord by ID
	DeleteByID(ctx context.Context, recordID string) error
}
