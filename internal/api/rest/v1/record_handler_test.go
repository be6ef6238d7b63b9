//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/niyatanya/habit-tracker/internal/domain/habits"
)

func newTestRecordHandler(habit *habits.Habit) (RecordHandler, *MockHabitService, *MockHabitRecordService) {
	mockHabitService := new(MockHabitService)
	mockRecordService := new(MockHabitRecordService)
	if habit != nil {
		mockHabitService.On("GetByTitle", mock.Anything, testUser().ID, habit.Title).Return(habit, nil)
	}
	return NewRecordHandler(mockHabitService, mockRecordService), mockHabitService, mockRecordService
}

func record(habit *habits.Habit, date string, completed bool) *habits.HabitRecord {
	return &habits.HabitRecord{ID: "rec-" + date, HabitID: habit.ID, Date: day(date), Completed: completed}
}

func TestRecordHandler_Track_Success(t *testing.T) {
	habit := testHabit(habits.FrequencyDaily)
	handler, _, mockRecordService := newTestRecordHandler(habit)
	mockRecordService.On("Track", mock.Anything, habit, day("2024-03-04"), false).Return(record(habit, "2024-03-04", false), nil)

	c, w := newTestContext("POST", "/habits/Running/records", `{"date":"2024-03-04","completed":false}`)
	c.Params = gin.Params{gin.Param{Key: "title", Value: "Running"}}
	signIn(c, testUser())
	handler.Track(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"date":"2024-03-04"`)
	mockRecordService.AssertExpectations(t)
}

func TestRecordHandler_Track_InvalidRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing completed", `{"date":"2024-03-04"}`},
		{"bad layout", `{"date":"04.03.2024","completed":true}`},
		{"impossible date", `{"date":"2024-02-31","completed":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockHabitService, mockRecordService := newTestRecordHandler(nil)

			c, w := newTestContext("POST", "/habits/Running/records", tt.body)
			c.Params = gin.Params{gin.Param{Key: "title", Value: "Running"}}
			signIn(c, testUser())
			handler.Track(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			mockHabitService.AssertNotCalled(t, "GetByTitle", mock.Anything, mock.Anything, mock.Anything)
			mockRecordService.AssertNotCalled(t, "Track", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestRecordHandler_Track_AlreadyRecorded(t *testing.T) {
	habit := testHabit(habits.FrequencyDaily)
	handler, _, mockRecordService := newTestRecordHandler(habit)
	mockRecordService.On("Track", mock.Anything, habit, mock.Anything, true).Return(nil, habits.ErrRecordExists)

	c, w := newTestContext("POST", "/habits/Running/records", `{"date":"2024-03-04","completed":true}`)
	c.Params = gin.Params{gin.Param{Key: "title", Value: "Running"}}
	signIn(c, testUser())
	handler.Track(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRecordHandler_List_SortedByDate(t *testing.T) {
	habit := testHabit(habits.FrequencyDaily)
	handler, _, mockRecordService := newTestRecordHandler(habit)

	byDate := map[time.Time]*habits.HabitRecord{}
	for _, date := range []string{"2024-03-06", "2024-03-04", "2024-03-05"} {
		byDate[day(date)] = record(habit, date, true)
	}
	mockRecordService.On("List", mock.Anything, habit).Return(byDate, nil)

	c, w := newTestContext("GET", "/habits/Running/records", "")
	c.Params = gin.Params{gin.Param{Key: "title", Value: "Running"}}
	signIn(c, testUser())
	handler.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	var response []RecordResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 3)
	assert.Equal(t, "2024-03-04", response[0].Date)
	assert.Equal(t, "2024-03-05", response[1].Date)
	assert.Equal(t, "2024-03-06", response[2].Date)
}

func TestRecordHandler_GetByDate_BadDate(t *testing.T) {
	handler, _, _ := newTestRecordHandler(nil)

	c, w := newTestContext("GET", "/habits/Running/records/yesterday", "")
	c.Params = gin.Params{
		gin.Param{Key: "title", Value: "Running"},
		gin.Param{Key: "date", Value: "yesterday"},
	}
	signIn(c, testUser())
	handler.GetByDate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecordHandler_Update_NotFound(t *testing.T) {
	habit := testHabit(habits.FrequencyDaily)
	handler, _, mockRecordService := newTestRecordHandler(habit)
	mockRecordService.On("Edit", mock.Anything, habit, day("2024-03-04"), true).Return(nil, habits.ErrRecordNotFound)

	c, w := newTestContext("PUT", "/habits/Running/records/2024-03-04", `{"completed":true}`)
	c.Params = gin.Params{
		gin.Param{Key: "title", Value: "Running"},
		gin.Param{Key: "date", Value: "2024-03-04"},
	}
	signIn(c, testUser())
	handler.Update(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockRecordService.AssertExpectations(t)
}

func TestRecordHandler_Delete_Success(t *testing.T) {
	habit := testHabit(habits.FrequencyDaily)
	handler, _, mockRecordService := newTestRecordHandler(habit)
	mockRecordService.On("Delete", mock.Anything, habit, day("2024-03-04")).Return(nil)

	c, w := newTestContext("DELETE", "/habits/Running/records/2024-03-04", "")
	c.Params = gin.Params{
		gin.Param{Key: "title", Value: "Running"},
		gin.Param{Key: "date", Value: "2024-03-04"},
	}
	signIn(c, testUser())
	handler.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "2024-03-04")
	mockRecordService.AssertExpectations(t)
}
