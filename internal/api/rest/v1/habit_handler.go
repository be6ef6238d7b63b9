package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niyatanya/habit-tracker/internal/domain/habits"
)

// HabitHandler defines the interface for handling habit operations of the signed-in user
type HabitHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByTitle(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type habitHandler struct {
	habitService habits.HabitService
}

// NewHabitHandler creates a new HabitHandler
func NewHabitHandler(habitService habits.HabitService) HabitHandler {
	return &habitHandler{
		habitService: habitService,
	}
}

func bindHabitRequest(ctx *gin.Context) (*HabitRequest, habits.Frequency, bool) {
	var request HabitRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, fmt.Sprintf("invalid habit data: %v", err))
		return nil, "", false
	}
	if err := request.Validate(); err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, err.Error())
		return nil, "", false
	}
	frequency, err := habits.ParseFrequency(request.Frequency)
	if err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, err.Error())
		return nil, "", false
	}
	return &request, frequency, true
}

// Create handles the POST request to add a habit
// @Summary Create a habit
// @Tags Habits
// @Accept json
// @Produce json
// @Param requestBody body HabitRequest true "Habit data"
// @Success 201 {object} HabitResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /habits [post]
func (handler *habitHandler) Create(ctx *gin.Context) {
	request, frequency, ok := bindHabitRequest(ctx)
	if !ok {
		return
	}

	habit, err := handler.habitService.Create(ctx, currentUser(ctx).ID, request.Title, request.Description, frequency)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newHabitResponse(habit))
}

// List handles the GET request to list the habits of the signed-in user
// @Summary List habits ordered by title
// @Tags Habits
// @Produce json
// @Success 200 {array} HabitResponse
// @Router /habits [get]
func (handler *habitHandler) List(ctx *gin.Context) {
	list, err := handler.habitService.List(ctx, currentUser(ctx).ID)
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

// GetByTitle handles the GET request for a single habit
// @Summary Get a habit by title
// @Tags Habits
// @Produce json
// @Param title path string true "Habit title"
// @Success 200 {object} HabitResponse
// @Failure 404 {object} ErrorResponse
// @Router /habits/{title} [get]
func (handler *habitHandler) GetByTitle(ctx *gin.Context) {
	habit, err := handler.habitService.GetByTitle(ctx, currentUser(ctx).ID, ctx.Param("title"))
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newHabitResponse(habit))
}

// Update handles the PUT request to replace title, description and frequency
// @Summary Update a habit
// @Tags Habits
// @Accept json
// @Produce json
// @Param title path string true "Habit title"
// @Param requestBody body HabitRequest true "Habit data"
// @Success 200 {object} HabitResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /habits/{title} [put]
func (handler *habitHandler) Update(ctx *gin.Context) {
	request, frequency, ok := bindHabitRequest(ctx)
	if !ok {
		return
	}

	habit, err := handler.habitService.Edit(ctx, currentUser(ctx).ID, ctx.Param("title"), request.Title, request.Description, frequency)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newHabitResponse(habit))
}

// Delete handles the DELETE request to remove a habit with its records
// @Summary Delete a habit
// @Tags Habits
// @Produce json
// @Param title path string true "Habit title"
// @Success 200 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /habits/{title} [delete]
func (handler *habitHandler) Delete(ctx *gin.Context) {
	title := ctx.Param("title")
	if err := handler.habitService.Delete(ctx, currentUser(ctx).ID, title); err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: fmt.Sprintf("deleted habit %s", title)})
}
