package validators

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"
)

// DateLayout is the yyyy-mm-dd layout of habit record dates
const DateLayout = "2006-01-02"

// ErrValidation is wrapped by every error ValidateStruct reports for invalid field values
var ErrValidation = errors.New("validation failed")

// FrequencyValidation accepts the habit frequencies DAILY and WEEKLY, case-insensitively.
func FrequencyValidation(fl validator.FieldLevel) bool {
	switch strings.ToUpper(fl.Field().String()) {
	case "DAILY", "WEEKLY":
		return true
	default:
		return false
	}
}

// CalendarDateValidation accepts existing calendar dates in DateLayout
func CalendarDateValidation(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil
}

// New returns a validator with the habit tracker's custom tags registered:
// "frequency", "calendardate" and "notblank".
func New() (*validator.Validate, error) {
	validate := validator.New()

	if err := validate.RegisterValidation("frequency", FrequencyValidation); err != nil {
		return nil, err
	}
	if err := validate.RegisterValidation("calendardate", CalendarDateValidation); err != nil {
		return nil, err
	}
	if err := validate.RegisterValidation("notblank", nonstandard.NotBlank); err != nil {
		return nil, err
	}
	return validate, nil
}

// ValidateStruct runs validate against s and flattens field errors into a
// single "validation failed: [Field: X, Tag: Y ...]" error wrapping ErrValidation.
func ValidateStruct(validate *validator.Validate, s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("%w: %v", ErrValidation, messages)
	}
	return fmt.Errorf("validation error: %w", err)
}
