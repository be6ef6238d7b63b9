package v1

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/niyatanya/habit-tracker/internal/domain/habits"
)

// RecordHandler defines the interface for handling the daily records of a habit
type RecordHandler interface {
	Track(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByDate(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type recordHandler struct {
	habitService  habits.HabitService
	recordService habits.HabitRecordService
}

// NewRecordHandler creates a new RecordHandler
func NewRecordHandler(habitService habits.HabitService, recordService habits.HabitRecordService) RecordHandler {
	return &recordHandler{
		habitService:  habitService,
		recordService: recordService,
	}
}

func (handler *recordHandler) habit(ctx *gin.Context) (*habits.Habit, bool) {
	habit, err := handler.habitService.GetByTitle(ctx, currentUser(ctx).ID, ctx.Param("title"))
	if err != nil {
		abortWithError(ctx, err)
		return nil, false
	}
	return habit, true
}

func pathDate(ctx *gin.Context) (time.Time, bool) {
	date, err := habits.ParseDay(ctx.Param("date"))
	if err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, err.Error())
		return time.Time{}, false
	}
	return date, true
}

// Track handles the POST request to record a day
// @Summary Record whether a habit was done on a day
// @Tags Records
// @Accept json
// @Produce json
// @Param title path string true "Habit title"
// @Param requestBody body TrackRecordRequest true "Record data"
// @Success 201 {object} RecordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /habits/{title}/records [post]
func (handler *recordHandler) Track(ctx *gin.Context) {
	var request TrackRecordRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, fmt.Sprintf("invalid record data: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, err.Error())
		return
	}
	date, err := habits.ParseDay(request.Date)
	if err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, err.Error())
		return
	}

	habit, ok := handler.habit(ctx)
	if !ok {
		return
	}

	record, err := handler.recordService.Track(ctx, habit, date, *request.Completed)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newRecordResponse(record))
}

// List handles the GET request to list all records of a habit
// @Summary List records ordered by date
// @Tags Records
// @Produce json
// @Param title path string true "Habit title"
// @Success 200 {array} RecordResponse
// @Failure 404 {object} ErrorResponse
// @Router /habits/{title}/records [get]
func (handler *recordHandler) List(ctx *gin.Context) {
	habit, ok := handler.habit(ctx)
	if !ok {
		return
	}

	byDate, err := handler.recordService.List(ctx, habit)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	listResponse := make([]RecordResponse, 0, len(byDate))
	for _, record := range byDate {
		listResponse = append(listResponse, newRecordResponse(record))
	}
	sort.Slice(listResponse, func(i, j int) bool {
		return listResponse[i].Date < listResponse[j].Date
	})
	ctx.JSON(http.StatusOK, listResponse)
}

// GetByDate handles the GET request for the record of a day
// @Summary Get the record of a day
// @Tags Records
// @Produce json
// @Param title path string true "Habit title"
// @Param date path string true "Day (yyyy-mm-dd)"
// @Success 200 {object} RecordResponse
// @Failure 404 {object} ErrorResponse
// @Router /habits/{title}/records/{date} [get]
func (handler *recordHandler) GetByDate(ctx *gin.Context) {
	date, ok := pathDate(ctx)
	if !ok {
		return
	}
	habit, ok := handler.habit(ctx)
	if !ok {
		return
	}

	record, err := handler.recordService.GetByDate(ctx, habit, date)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newRecordResponse(record))
}

// Update handles the PUT request to change the completion flag of a day
// @Summary Update the record of a day
// @Tags Records
// @Accept json
// @Produce json
// @Param title path string true "Habit title"
// @Param date path string true "Day (yyyy-mm-dd)"
// @Param requestBody body UpdateRecordRequest true "Record data"
// @Success 200 {object} RecordResponse
// @Failure 404 {object} ErrorResponse
// @Router /habits/{title}/records/{date} [put]
func (handler *recordHandler) Update(ctx *gin.Context) {
	date, ok := pathDate(ctx)
	if !ok {
		return
	}

	var request UpdateRecordRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, fmt.Sprintf("invalid record data: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, err.Error())
		return
	}

	habit, ok := handler.habit(ctx)
	if !ok {
		return
	}

	record, err := handler.recordService.Edit(ctx, habit, date, *request.Completed)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newRecordResponse(record))
}

// Delete handles the DELETE request to remove the record of a day
// @Summary Delete the record of a day
// @Tags Records
// @Produce json
// @Param title path string true "Habit title"
// @Param date path string true "Day (yyyy-mm-dd)"
// @Success 200 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /habits/{title}/records/{date} [delete]
func (handler *recordHandler) Delete(ctx *gin.Context) {
	date, ok := pathDate(ctx)
	if !ok {
		return
	}
	habit, ok := handler.habit(ctx)
	if !ok {
		return
	}

	if err := handler.recordService.Delete(ctx, habit, date); err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: fmt.Sprintf("deleted record of %s", habits.FormatDay(date))})
}
