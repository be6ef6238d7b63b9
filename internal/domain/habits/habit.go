package habits

import (
	"fmt"
	"strings"
	"time"

	"github.com/niyatanya/habit-tracker/internal/pkg/validators"
)

// Frequency is how often a habit is meant to be done
type Frequency string

// Supported frequencies
const (
	FrequencyDaily  Frequency = "DAILY"
	FrequencyWeekly Frequency = "WEEKLY"
)

// ParseFrequency converts user input such as "daily" into a Frequency
func ParseFrequency(value string) (Frequency, error) {
	switch Frequency(strings.ToUpper(strings.TrimSpace(value))) {
	case FrequencyDaily:
		return FrequencyDaily, nil
	case FrequencyWeekly:
		return FrequencyWeekly, nil
	default:
		return "", fmt.Errorf("unknown frequency %q: expected DAILY or WEEKLY", value)
	}
}

// Habit entity
type Habit struct {
	ID              string    `validate:"required,uuid4"`
	UserID          string    `validate:"required,uuid4"`
	Title           string    `validate:"required,min=1,max=255,excludes=/"`
	Description     string    `validate:"max=1000"`
	Frequency       Frequency `validate:"required,frequency"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating Habit struct
func (h *Habit) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}
	return validators.ValidateStruct(validate, h)
}

// TitleKey is the case-insensitive form under which titles are unique per user
func TitleKey(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
