//go:build unit
// +build unit

package v1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestRegisterRequest_Validate(t *testing.T) {
	valid := RegisterRequest{Name: "Kate", Email: "kate@example.com", Password: "secret1"}
	assert.NoError(t, valid.Validate())

	invalid := RegisterRequest{Name: "Kate", Email: "not-an-email", Password: "secret1"}
	err := invalid.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Field: Email, Tag: email")
}

func TestUpdateProfileRequest_Validate(t *testing.T) {
	assert.NoError(t, (&UpdateProfileRequest{Name: "Kate", Email: "kate@example.com"}).Validate())
	assert.Error(t, (&UpdateProfileRequest{Name: "Kate", Email: "kate@example.com", Password: "abc"}).Validate())
}

func TestHabitRequest_Validate(t *testing.T) {
	assert.NoError(t, (&HabitRequest{Title: "Running", Frequency: "weekly"}).Validate())

	err := (&HabitRequest{Title: "Running", Frequency: "hourly"}).Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Tag: frequency")
}

func TestTrackRecordRequest_Validate(t *testing.T) {
	assert.NoError(t, (&TrackRecordRequest{Date: "2024-03-04", Completed: boolPtr(false)}).Validate())

	err := (&TrackRecordRequest{Date: "2024/03/04", Completed: boolPtr(true)}).Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Tag: calendardate")

	assert.Error(t, (&TrackRecordRequest{Date: "2024-03-04"}).Validate())
}

func TestUpdateRecordRequest_Validate(t *testing.T) {
	assert.NoError(t, (&UpdateRecordRequest{Completed: boolPtr(false)}).Validate())
	assert.Error(t, (&UpdateRecordRequest{}).Validate())
}
