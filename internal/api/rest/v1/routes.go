package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niyatanya/habit-tracker/internal/domain/auth"
	"github.com/niyatanya/habit-tracker/internal/domain/habits"
	"github.com/niyatanya/habit-tracker/internal/domain/stats"
	"github.com/niyatanya/habit-tracker/internal/domain/users"
)

// Services bundles the application services the routes delegate to
type Services struct {
	Accounts       users.AccountService
	Profiles       users.ProfileService
	Administration users.AdministrationService
	Habits         habits.HabitService
	Records        habits.HabitRecordService
	Statistics     stats.StatisticsService
}

// Security bundles token handling and the login rate limiter
type Security struct {
	TokenIssuer  auth.TokenIssuer
	SessionStore auth.SessionStore
	LoginLimiter *IPRateLimiter
}

// SetupRoutes sets up all the API routes for version 1.
// metrics may be nil, in which case no /metrics endpoint is served.
func SetupRoutes(r *gin.Engine, services Services, security Security, metrics *Metrics) {
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, InfoResponse{Message: "ok"})
	})
	if metrics != nil {
		r.GET("/metrics", metrics.Handler())
	}

	v1 := r.Group(BasePath) // lookup in version file

	// Auth Routes
	userHandler := NewUserHandler(services.Accounts, services.Profiles, security.TokenIssuer, security.SessionStore, metrics)
	authenticated := AuthMiddleware(security.TokenIssuer, security.SessionStore, services.Profiles)

	v1.POST("/auth/register", userHandler.Register)
	if security.LoginLimiter != nil {
		v1.POST("/auth/login", security.LoginLimiter.Middleware(), userHandler.Login)
	} else {
		v1.POST("/auth/login", userHandler.Login)
	}

	private := v1.Group("", authenticated)
	private.POST("/auth/logout", userHandler.Logout)

	// Users Routes
	private.GET("/users/me", userHandler.GetProfile)
	private.PUT("/users/me", userHandler.UpdateProfile)
	private.DELETE("/users/me", userHandler.DeleteProfile)

	// Habits Routes
	habitHandler := NewHabitHandler(services.Habits)
	private.POST("/habits", habitHandler.Create)
	private.GET("/habits", habitHandler.List)
	private.GET("/habits/:title", habitHandler.GetByTitle)
	private.PUT("/habits/:title", habitHandler.Update)
	private.DELETE("/habits/:title", habitHandler.Delete)

	// Records Routes
	recordHandler := NewRecordHandler(services.Habits, services.Records)
	private.POST("/habits/:title/records", recordHandler.Track)
	private.GET("/habits/:title/records", recordHandler.List)
	private.GET("/habits/:title/records/:date", recordHandler.GetByDate)
	private.PUT("/habits/:title/records/:date", recordHandler.Update)
	private.DELETE("/habits/:title/records/:date", recordHandler.Delete)

	// Statistics Routes
	statisticsHandler := NewStatisticsHandler(services.Habits, services.Statistics)
	private.GET("/habits/:title/statistics/streak", statisticsHandler.Streak)
	private.GET("/habits/:title/statistics/success", statisticsHandler.Success)
	private.GET("/habits/:title/statistics/report", statisticsHandler.Report)

	// Admin Routes
	adminHandler := NewAdminHandler(services.Administration, services.Habits)
	admin := private.Group("/admin", RequireAdmin())
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/users/:email/habits", adminHandler.ListUserHabits)
	admin.POST("/users/:email/block", adminHandler.Block)
	admin.POST("/users/:email/unblock", adminHandler.Unblock)
	admin.DELETE("/users/:email", adminHandler.DeleteUser)
}
