package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niyatanya/habit-tracker/internal/domain/auth"
	"github.com/niyatanya/habit-tracker/internal/domain/habits"
	"github.com/niyatanya/habit-tracker/internal/domain/stats"
	"github.com/niyatanya/habit-tracker/internal/domain/users"
	"github.com/niyatanya/habit-tracker/internal/pkg/validators"
)

// statusOf maps domain errors to HTTP status codes
func statusOf(err error) int {
	switch {
	case errors.Is(err, users.ErrUserNotFound),
		errors.Is(err, habits.ErrHabitNotFound),
		errors.Is(err, habits.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, users.ErrEmailTaken),
		errors.Is(err, habits.ErrHabitExists),
		errors.Is(err, habits.ErrRecordExists),
		errors.Is(err, users.ErrAlreadyBlocked),
		errors.Is(err, users.ErrNotBlocked):
		return http.StatusConflict
	case errors.Is(err, users.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrSessionRevoked):
		return http.StatusUnauthorized
	case errors.Is(err, users.ErrUserBlocked),
		errors.Is(err, users.ErrAdminProtected):
		return http.StatusForbidden
	case errors.Is(err, users.ErrWeakPassword),
		errors.Is(err, stats.ErrInvalidPeriod),
		errors.Is(err, validators.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(ctx *gin.Context, err error) {
	status := statusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		_ = ctx.Error(err)
		message = "internal server error"
	}
	ctx.AbortWithStatusJSON(status, ErrorResponse{Message: message})
}

func abortWithMessage(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, ErrorResponse{Message: message})
}
