// cmd/habit-tracker-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	v1 "github.com/niyatanya/habit-tracker/internal/api/rest/v1"
	"github.com/niyatanya/habit-tracker/internal/app"
	"github.com/niyatanya/habit-tracker/internal/domain/auth"
	"github.com/niyatanya/habit-tracker/internal/infrastructure/persistence"
	"github.com/niyatanya/habit-tracker/internal/infrastructure/security"
	"github.com/niyatanya/habit-tracker/internal/pkg/config"
	"github.com/niyatanya/habit-tracker/internal/pkg/logger"
)

// limiterIdleTimeout is how long a client IP may stay silent before its
// login rate limiter is forgotten
const limiterIdleTimeout = 30 * time.Minute

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer deps.close(log)

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db           *gorm.DB
	services     v1.Services
	tokenIssuer  auth.TokenIssuer
	sessionStore auth.SessionStore
	loginLimiter *v1.IPRateLimiter
}

func (d *appDependencies) close(log logger.Logger) {
	if closer, ok := d.sessionStore.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			log.Warn("Failed to close session store: ", err)
		}
	}
	if err := persistence.CloseDB(d.db); err != nil {
		log.Warn("Failed to close database: ", err)
	}
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	services, err := initializeApplicationServices(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	if cfg.Admin.Enabled() {
		admin, err := services.Accounts.EnsureAdmin(context.Background(), cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to bootstrap administrator: %w", err)
		}
		log.Info("Administrator account available: ", admin.Email)
	}

	tokenIssuer, err := security.NewJWTTokenIssuer(&cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create token issuer: %w", err)
	}

	sessionStore, err := security.NewSessionStore(context.Background(), &cfg.Sessions, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create session store: %w", err)
	}

	return &appDependencies{
		db:           db,
		services:     *services,
		tokenIssuer:  tokenIssuer,
		sessionStore: sessionStore,
		loginLimiter: v1.NewIPRateLimiter(cfg.RateLimit.LoginRPS, cfg.RateLimit.LoginBurst),
	}, nil
}

// initializeApplicationServices sets up repositories and all application services
func initializeApplicationServices(db *gorm.DB, log logger.Logger) (*v1.Services, error) {
	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	habitRepo, err := persistence.NewGormHabitRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create habit repository: %w", err)
	}

	recordRepo, err := persistence.NewGormHabitRecordRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create habit record repository: %w", err)
	}

	hasher, err := security.NewBcryptPasswordHasher(0)
	if err != nil {
		return nil, fmt.Errorf("failed to create password hasher: %w", err)
	}

	accountService, err := app.NewAccountService(userRepo, hasher, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create account service: %w", err)
	}

	profileService, err := app.NewProfileService(userRepo, hasher, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile service: %w", err)
	}

	administrationService, err := app.NewAdministrationService(userRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create administration service: %w", err)
	}

	habitService, err := app.NewHabitService(habitRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create habit service: %w", err)
	}

	recordService, err := app.NewHabitRecordService(recordRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create habit record service: %w", err)
	}

	statisticsService, err := app.NewStatisticsService(recordRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create statistics service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &v1.Services{
		Accounts:       accountService,
		Profiles:       profileService,
		Administration: administrationService,
		Habits:         habitService,
		Records:        recordService,
		Statistics:     statisticsService,
	}, nil
}

// startHousekeeping schedules periodic cleanup of in-memory session and rate limiter state
func startHousekeeping(deps *appDependencies, log logger.Logger) (*cron.Cron, error) {
	c := cron.New()

	if _, err := security.SchedulePurge(c, deps.sessionStore, log); err != nil {
		return nil, fmt.Errorf("failed to schedule session purge: %w", err)
	}

	if _, err := c.AddFunc("@every 5m", func() {
		if n := deps.loginLimiter.Purge(limiterIdleTimeout); n > 0 {
			log.Debug("Dropped idle rate limiters: ", n)
		}
	}); err != nil {
		return nil, fmt.Errorf("failed to schedule rate limiter purge: %w", err)
	}

	c.Start()
	return c, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	housekeeping, err := startHousekeeping(deps, log)
	if err != nil {
		return err
	}
	defer func() {
		<-housekeeping.Stop().Done()
	}()

	// Setup router
	r := gin.Default()
	metrics := v1.NewMetrics()
	r.Use(metrics.Middleware())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Type", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r, deps.services, v1.Security{
		TokenIssuer:  deps.tokenIssuer,
		SessionStore: deps.sessionStore,
		LoginLimiter: deps.loginLimiter,
	}, metrics)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
