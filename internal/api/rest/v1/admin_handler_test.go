//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/niyatanya/habit-tracker/internal/domain/habits"
	"github.com/niyatanya/habit-tracker/internal/domain/users"
)

func TestAdminHandler_ListUsers_Paging(t *testing.T) {
	mockAdministrationService := new(MockAdministrationService)
	handler := NewAdminHandler(mockAdministrationService, new(MockHabitService))

	mockAdministrationService.
		On("List", mock.Anything, &users.UserQuery{Limit: 10, Offset: 20}).
		Return([]*users.User{testAdmin(), testUser()}, nil)

	c, w := newTestContext("GET", "/admin/users?limit=10&offset=20", "")
	signIn(c, testAdmin())
	handler.ListUsers(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@example.com")
	assert.Contains(t, w.Body.String(), "kate@example.com")
	mockAdministrationService.AssertExpectations(t)
}

func TestAdminHandler_ListUserHabits(t *testing.T) {
	mockAdministrationService := new(MockAdministrationService)
	mockHabitService := new(MockHabitService)
	handler := NewAdminHandler(mockAdministrationService, mockHabitService)
	user := testUser()

	mockAdministrationService.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)
	mockHabitService.On("List", mock.Anything, user.ID).Return([]*habits.Habit{testHabit(habits.FrequencyDaily)}, nil)

	c, w := newTestContext("GET", "/admin/users/kate@example.com/habits", "")
	c.Params = gin.Params{gin.Param{Key: "email", Value: user.Email}}
	signIn(c, testAdmin())
	handler.ListUserHabits(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Running")
	mockHabitService.AssertExpectations(t)
}

func TestAdminHandler_Block(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"success", nil, http.StatusOK},
		{"already blocked", users.ErrAlreadyBlocked, http.StatusConflict},
		{"administrator", users.ErrAdminProtected, http.StatusForbidden},
		{"unknown", users.ErrUserNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAdministrationService := new(MockAdministrationService)
			handler := NewAdminHandler(mockAdministrationService, new(MockHabitService))

			blocked := testUser()
			blocked.Blocked = true
			if tt.err != nil {
				mockAdministrationService.On("Block", mock.Anything, "kate@example.com").Return(nil, tt.err)
			} else {
				mockAdministrationService.On("Block", mock.Anything, "kate@example.com").Return(blocked, nil)
			}

			c, w := newTestContext("POST", "/admin/users/kate@example.com/block", "")
			c.Params = gin.Params{gin.Param{Key: "email", Value: "kate@example.com"}}
			signIn(c, testAdmin())
			handler.Block(c)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestAdminHandler_Unblock_NotBlocked(t *testing.T) {
	mockAdministrationService := new(MockAdministrationService)
	handler := NewAdminHandler(mockAdministrationService, new(MockHabitService))
	mockAdministrationService.On("Unblock", mock.Anything, "kate@example.com").Return(nil, users.ErrNotBlocked)

	c, w := newTestContext("POST", "/admin/users/kate@example.com/unblock", "")
	c.Params = gin.Params{gin.Param{Key: "email", Value: "kate@example.com"}}
	handler.Unblock(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAdminHandler_DeleteUser(t *testing.T) {
	mockAdministrationService := new(MockAdministrationService)
	handler := NewAdminHandler(mockAdministrationService, new(MockHabitService))
	mockAdministrationService.On("Delete", mock.Anything, "kate@example.com").Return(nil)

	c, w := newTestContext("DELETE", "/admin/users/kate@example.com", "")
	c.Params = gin.Params{gin.Param{Key: "email", Value: "kate@example.com"}}
	handler.DeleteUser(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "deleted user kate@example.com")
	mockAdministrationService.AssertExpectations(t)
}
