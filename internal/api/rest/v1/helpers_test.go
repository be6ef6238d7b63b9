//go:build unit
// +build unit

package v1

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/niyatanya/habit-tracker/internal/domain/auth"
	"github.com/niyatanya/habit-tracker/internal/domain/habits"
	"github.com/niyatanya/habit-tracker/internal/domain/users"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(method, url, body string) (*gin.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req, _ := http.NewRequest(method, url, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func signIn(c *gin.Context, user *users.User) {
	c.Set(userKey, user)
	c.Set(sessionKey, &auth.Session{
		TokenID:   "jti-1",
		UserID:    user.ID,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(time.Hour),
	})
}

func testUser() *users.User {
	return &users.User{
		ID:              "4f9d3c1e-7b2a-4e8f-9c6d-1a2b3c4d5e6f",
		Name:            "Kate",
		Email:           "kate@example.com",
		PasswordHash:    "hash",
		Role:            users.RoleUser,
		DateTimeCreated: time.Now(),
	}
}

func testAdmin() *users.User {
	admin := testUser()
	admin.ID = "0c8e2f4a-1d3b-4c5e-8f7a-9b0c1d2e3f4a"
	admin.Email = "admin@example.com"
	admin.Role = users.RoleAdmin
	return admin
}

func testHabit(frequency habits.Frequency) *habits.Habit {
	return &habits.Habit{
		ID:              "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d",
		UserID:          testUser().ID,
		Title:           "Running",
		Description:     "5 km",
		Frequency:       frequency,
		DateTimeCreated: time.Now(),
	}
}

func day(value string) time.Time {
	d, err := habits.ParseDay(value)
	if err != nil {
		panic(err)
	}
	return d
}
