package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/niyatanya/habit-tracker/internal/domain/habits"
	"github.com/niyatanya/habit-tracker/internal/domain/stats"
)

// StatisticsHandler defines the interface for habit statistics
type StatisticsHandler interface {
	Streak(ctx *gin.Context)
	Success(ctx *gin.Context)
	Report(ctx *gin.Context)
}

type statisticsHandler struct {
	habitService      habits.HabitService
	statisticsService stats.StatisticsService
	now               func() time.Time
}

// NewStatisticsHandler creates a new StatisticsHandler
func NewStatisticsHandler(habitService habits.HabitService, statisticsService stats.StatisticsService) StatisticsHandler {
	return &statisticsHandler{
		habitService:      habitService,
		statisticsService: statisticsService,
		now:               time.Now,
	}
}

func (handler *statisticsHandler) habit(ctx *gin.Context) (*habits.Habit, bool) {
	habit, err := handler.habitService.GetByTitle(ctx, currentUser(ctx).ID, ctx.Param("title"))
	if err != nil {
		abortWithError(ctx, err)
		return nil, false
	}
	return habit, true
}

// queryDay parses the yyyy-mm-dd query parameter name. Absent optional
// parameters fall back to today.
func (handler *statisticsHandler) queryDay(ctx *gin.Context, name string, required bool) (time.Time, bool) {
	value := ctx.Query(name)
	if value == "" {
		if required {
			abortWithMessage(ctx, http.StatusBadRequest, fmt.Sprintf("query parameter %s is required", name))
			return time.Time{}, false
		}
		return habits.Day(handler.now().UTC()), true
	}

	day, err := habits.ParseDay(value)
	if err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, err.Error())
		return time.Time{}, false
	}
	return day, true
}

func (handler *statisticsHandler) period(ctx *gin.Context) (time.Time, time.Time, bool) {
	start, ok := handler.queryDay(ctx, "start", true)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	end, ok := handler.queryDay(ctx, "end", true)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// Streak handles the GET request for the current streak of a habit
// @Summary Current streak of a habit
// @Tags Statistics
// @Produce json
// @Param title path string true "Habit title"
// @Param asOf query string false "Day the streak is computed for (yyyy-mm-dd), defaults to today"
// @Success 200 {object} StreakResponse
// @Failure 404 {object} ErrorResponse
// @Router /habits/{title}/statistics/streak [get]
func (handler *statisticsHandler) Streak(ctx *gin.Context) {
	asOf, ok := handler.queryDay(ctx, "asOf", false)
	if !ok {
		return
	}
	habit, ok := handler.habit(ctx)
	if !ok {
		return
	}

	streak, err := handler.statisticsService.CurrentStreak(ctx, habit, asOf)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, StreakResponse{
		HabitTitle:    habit.Title,
		Frequency:     string(habit.Frequency),
		AsOf:          habits.FormatDay(asOf),
		CurrentStreak: streak,
	})
}

// Success handles the GET request for the success rate of a habit over a period
// @Summary Success rate over a period
// @Tags Statistics
// @Produce json
// @Param title path string true "Habit title"
// @Param start query string true "First day (yyyy-mm-dd)"
// @Param end query string true "Last day (yyyy-mm-dd)"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /habits/{title}/statistics/success [get]
func (handler *statisticsHandler) Success(ctx *gin.Context) {
	start, end, ok := handler.period(ctx)
	if !ok {
		return
	}
	habit, ok := handler.habit(ctx)
	if !ok {
		return
	}

	rate, err := handler.statisticsService.SuccessPercentage(ctx, habit, start, end)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, SuccessResponse{
		HabitTitle:  habit.Title,
		Start:       habits.FormatDay(start),
		End:         habits.FormatDay(end),
		SuccessRate: rate,
	})
}

// Report handles the GET request for the progress report of a habit
// @Summary Progress report over a period
// @Tags Statistics
// @Produce json
// @Param title path string true "Habit title"
// @Param start query string true "First day (yyyy-mm-dd)"
// @Param end query string true "Last day (yyyy-mm-dd)"
// @Param asOf query string false "Day the streak is computed for (yyyy-mm-dd), defaults to today"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /habits/{title}/statistics/report [get]
func (handler *statisticsHandler) Report(ctx *gin.Context) {
	start, end, ok := handler.period(ctx)
	if !ok {
		return
	}
	asOf, ok := handler.queryDay(ctx, "asOf", false)
	if !ok {
		return
	}
	habit, ok := handler.habit(ctx)
	if !ok {
		return
	}

	report, err := handler.statisticsService.ProgressReport(ctx, habit, start, end, asOf)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newReportResponse(report))
}
