package v1

import (
	"fmt"
	"time"

	"github.com/niyatanya/habit-tracker/internal/domain/habits"
	"github.com/niyatanya/habit-tracker/internal/domain/stats"
	"github.com/niyatanya/habit-tracker/internal/domain/users"
	"github.com/niyatanya/habit-tracker/internal/pkg/validators"
)

func validate(s interface{}) error {
	v, err := validators.New()
	if err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}
	return validators.ValidateStruct(v, s)
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse is the body of requests that return no resource
type InfoResponse struct {
	Message string `json:"message"`
}

// RegisterRequest creates an account
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,notblank,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6"`
}

// Validate for validating RegisterRequest struct
func (r *RegisterRequest) Validate() error {
	return validate(r)
}

// LoginRequest signs in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Validate for validating LoginRequest struct
func (r *LoginRequest) Validate() error {
	return validate(r)
}

// TokenResponse carries a bearer token
type TokenResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// UpdateProfileRequest replaces the profile of the signed-in user.
// An empty password keeps the current one.
type UpdateProfileRequest struct {
	Name     string `json:"name" validate:"required,notblank,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

// Validate for validating UpdateProfileRequest struct
func (r *UpdateProfileRequest) Validate() error {
	return validate(r)
}

// UserResponse describes an account without its password hash
type UserResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	Blocked         bool      `json:"blocked"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

func newUserResponse(u *users.User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		Role:            string(u.Role),
		Blocked:         u.Blocked,
		DateTimeCreated: u.DateTimeCreated,
	}
}

// HabitRequest creates or replaces a habit
type HabitRequest struct {
	Title       string `json:"title" validate:"required,notblank,max=255,excludes=/"`
	Description string `json:"description" validate:"max=1000"`
	Frequency   string `json:"frequency" validate:"required,frequency"`
}

// Validate for validating HabitRequest struct
func (r *HabitRequest) Validate() error {
	return validate(r)
}

// HabitResponse describes a habit
type HabitResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Frequency       string    `json:"frequency"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

func newHabitResponse(h *habits.Habit) HabitResponse {
	return HabitResponse{
		ID:              h.ID,
		Title:           h.Title,
		Description:     h.Description,
		Frequency:       string(h.Frequency),
		DateTimeCreated: h.DateTimeCreated,
	}
}

// TrackRecordRequest records a day of a habit
type TrackRecordRequest struct {
	Date      string `json:"date" validate:"required,calendardate"`
	Completed *bool  `json:"completed" validate:"required"`
}

// Validate for validating TrackRecordRequest struct
func (r *TrackRecordRequest) Validate() error {
	return validate(r)
}

// UpdateRecordRequest changes the completion flag of a recorded day
type UpdateRecordRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

// Validate for validating UpdateRecordRequest struct
func (r *UpdateRecordRequest) Validate() error {
	return validate(r)
}

// RecordResponse describes a recorded day
type RecordResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

func newRecordResponse(r *habits.HabitRecord) RecordResponse {
	return RecordResponse{
		ID:        r.ID,
		Date:      habits.FormatDay(r.Date),
		Completed: r.Completed,
	}
}

// StreakResponse is the current streak of a habit
type StreakResponse struct {
	HabitTitle    string `json:"habit_title"`
	Frequency     string `json:"frequency"`
	AsOf          string `json:"as_of"`
	CurrentStreak int    `json:"current_streak"`
}

// SuccessResponse is the success rate of a habit over a period
type SuccessResponse struct {
	HabitTitle  string  `json:"habit_title"`
	Start       string  `json:"start"`
	End         string  `json:"end"`
	SuccessRate float64 `json:"success_rate"`
}

// ReportResponse is the progress report of a habit over a period
type ReportResponse struct {
	HabitTitle          string  `json:"habit_title"`
	Frequency           string  `json:"frequency"`
	Start               string  `json:"start"`
	End                 string  `json:"end"`
	TotalIntervals      int     `json:"total_intervals"`
	SuccessfulIntervals int     `json:"successful_intervals"`
	SuccessRate         float64 `json:"success_rate"`
	CurrentStreak       int     `json:"current_streak"`
	Text                string  `json:"text"`
}

func newReportResponse(r *stats.Report) ReportResponse {
	return ReportResponse{
		HabitTitle:          r.HabitTitle,
		Frequency:           string(r.Frequency),
		Start:               habits.FormatDay(r.Start),
		End:                 habits.FormatDay(r.End),
		TotalIntervals:      r.TotalIntervals,
		SuccessfulIntervals: r.SuccessfulIntervals,
		SuccessRate:         r.SuccessRate,
		CurrentStreak:       r.CurrentStreak,
		Text:                r.String(),
	}
}
