package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niyatanya/habit-tracker/internal/domain/habits"
	"github.com/niyatanya/habit-tracker/internal/domain/users"
	"github.com/niyatanya/habit-tracker/internal/pkg/utils"
)

// AdminHandler defines the interface for administrator operations on accounts
type AdminHandler interface {
	ListUsers(ctx *gin.Context)
	ListUserHabits(ctx *gin.Context)
	Block(ctx *gin.Context)
	Unblock(ctx *gin.Context)
	DeleteUser(ctx *gin.Context)
}

type adminHandler struct {
	administrationService users.AdministrationService
	habitService          habits.HabitService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(administrationService users.AdministrationService, habitService habits.HabitService) AdminHandler {
	return &adminHandler{
		administrationService: administrationService,
		habitService:          habitService,
	}
}

// ListUsers handles the GET request to list all accounts
// @Summary List accounts ordered by email
// @Tags Admin
// @Produce json
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Success 200 {array} UserResponse
// @Failure 403 {object} ErrorResponse
// @Router /admin/users [get]
func (handler *adminHandler) ListUsers(ctx *gin.Context) {
	query := users.NewUserQuery()

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = utils.ConvertToInt(limit)
	}
	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = utils.ConvertToInt(offset)
	}

	list, err := handler.administrationService.List(ctx, query)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	listResponse := []UserResponse{}
	for _, user := range list {
		listResponse = append(listResponse, newUserResponse(user))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// ListUserHabits handles the GET request to list the habits of any account
// @Summary List habits of an account
// @Tags Admin
// @Produce json
// @Param email path string true "Account email"
// @Success 200 {array} HabitResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/users/{email}/habits [get]
func (handler *adminHandler) ListUserHabits(ctx *gin.Context) {
	user, err := handler.administrationService.GetByEmail(ctx, ctx.Param("email"))
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	list, err := handler.habitService.List(ctx, user.ID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	listResponse := []HabitResponse{}
	for _, habit := range list {
		listResponse = append(listResponse, newHabitResponse(habit))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// Block handles the POST request to block an account
// @Summary Block an account
// @Tags Admin
// @Produce json
// @Param email path string true "Account email"
// @Success 200 {object} UserResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /admin/users/{email}/block [post]
func (handler *adminHandler) Block(ctx *gin.Context) {
	user, err := handler.administrationService.Block(ctx, ctx.Param("email"))
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newUserResponse(user))
}

// Unblock handles the POST request to unblock an account
// @Summary Unblock an account
// @Tags Admin
// @Produce json
// @Param email path string true "Account email"
// @Success 200 {object} UserResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /admin/users/{email}/unblock [post]
func (handler *adminHandler) Unblock(ctx *gin.Context) {
	user, err := handler.administrationService.Unblock(ctx, ctx.Param("email"))
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newUserResponse(user))
}

// DeleteUser handles the DELETE request to remove an account with its habits and records
// @Summary Delete an account
// @Tags Admin
// @Produce json
// @Param email path string true "Account email"
// @Success 200 {object} InfoResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/users/{email} [delete]
func (handler *adminHandler) DeleteUser(ctx *gin.Context) {
	email := ctx.Param("email")
	if err := handler.administrationService.Delete(ctx, email); err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: fmt.Sprintf("deleted user %s", email)})
}
