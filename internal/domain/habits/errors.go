package habits

import "errors"

var (
	// ErrHabitNotFound is returned when the user has no habit with the given title
	ErrHabitNotFound = errors.New("habit not found")
	// ErrHabitExists is returned when the user already has a habit with the given title
	ErrHabitExists = errors.New("habit with this title already exists")
	// ErrRecordNotFound is returned when the habit has no record for the given date
	ErrRecordNotFound = errors.New("habit record not found")
	// ErrRecordExists is returned when the habit already has a record for the given date
	ErrRecordExists = errors.New("habit record for this date already exists")
)
