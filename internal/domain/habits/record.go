package habits

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/niyatanya/habit-tracker/internal/pkg/validators"
)

// DateLayout is the wire and storage layout of record dates
const DateLayout = validators.DateLayout

// HabitRecord entity: whether a habit was done on a given day
type HabitRecord struct {
	ID        string    `validate:"required,uuid4"`
	HabitID   string    `validate:"required,uuid4"`
	Date      time.Time `validate:"required"`
	Completed bool
}

// Validate for validating HabitRecord struct
func (r *HabitRecord) Validate() error {
	if err := validators.ValidateStruct(validator.New(), r); err != nil {
		return err
	}
	if !r.Date.Equal(Day(r.Date)) {
		return fmt.Errorf("%w: record date %s is not a calendar day", validators.ErrValidation, r.Date)
	}
	return nil
}

// Day truncates t to midnight UTC of its calendar date in t's own location
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a yyyy-mm-dd date
func ParseDay(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected yyyy-mm-dd", value)
	}
	return t, nil
}

// FormatDay renders a record date as yyyy-mm-dd
func FormatDay(t time.Time) string {
	return t.Format(DateLayout)
}
