package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/niyatanya/habit-tracker/internal/app"
	"github.com/niyatanya/habit-tracker/internal/domain/habits"
	"github.com/niyatanya/habit-tracker/internal/domain/stats"
	"github.com/niyatanya/habit-tracker/internal/domain/users"
	"github.com/niyatanya/habit-tracker/internal/infrastructure/persistence"
	"github.com/niyatanya/habit-tracker/internal/infrastructure/security"
	"github.com/niyatanya/habit-tracker/internal/pkg/config"
	"github.com/niyatanya/habit-tracker/internal/pkg/logger"
)

// ErrAdminRequired is returned by admin commands run with a USER account
var ErrAdminRequired = errors.New("administrator role required")

// Services bundles the application services the commands delegate to
type Services struct {
	Accounts       users.AccountService
	Profiles       users.ProfileService
	Administration users.AdministrationService
	Habits         habits.HabitService
	Records        habits.HabitRecordService
	Statistics     stats.StatisticsService
}

// CommandHandler opens the configured database on first use and runs
// every command against it.
type CommandHandler struct {
	services *Services
	logger   logger.Logger
	db       *gorm.DB
}

// NewCommandHandler creates a CommandHandler that connects lazily from --config
func NewCommandHandler() *CommandHandler {
	return &CommandHandler{}
}

// NewCommandHandlerWithServices creates a CommandHandler bound to existing services
func NewCommandHandlerWithServices(services *Services, logger logger.Logger) *CommandHandler {
	return &CommandHandler{services: services, logger: logger}
}

// Connect loads the configuration, opens and migrates the database and
// builds the services. It does nothing when services are already bound.
func (commandHandler *CommandHandler) Connect(cmd *cobra.Command, _ []string) error {
	if commandHandler.services != nil {
		return nil
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("invalid config flag: %w", err)
	}

	cliConfig, err := config.InitializeCliConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	loggerInstance, err := setupLogger(&cliConfig.Logger)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}

	db, err := persistence.NewDBConnection(cliConfig.Database)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	if err := persistence.Migrate(db); err != nil {
		_ = persistence.CloseDB(db)
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	services, err := newServices(db, loggerInstance)
	if err != nil {
		_ = persistence.CloseDB(db)
		return err
	}

	commandHandler.services = services
	commandHandler.logger = loggerInstance
	commandHandler.db = db
	return nil
}

// Close releases the database opened by Connect
func (commandHandler *CommandHandler) Close() error {
	if commandHandler.db == nil {
		return nil
	}
	return persistence.CloseDB(commandHandler.db)
}

// setupLogger writes console logs to stderr so results on stdout stay parseable
func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if !settings.WritesToFile() {
		return logger.NewConsoleLoggerTo(os.Stderr, settings.LogLevel), nil
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.GetLogger()
}

func newServices(db *gorm.DB, log logger.Logger) (*Services, error) {
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

	hasher, err := security.NewBcryptPasswordHasher(bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to create password hasher: %w", err)
	}

	services := &Services{}
	if services.Accounts, err = app.NewAccountService(userRepo, hasher, log); err != nil {
		return nil, fmt.Errorf("failed to create account service: %w", err)
	}
	if services.Profiles, err = app.NewProfileService(userRepo, hasher, log); err != nil {
		return nil, fmt.Errorf("failed to create profile service: %w", err)
	}
	if services.Administration, err = app.NewAdministrationService(userRepo, log); err != nil {
		return nil, fmt.Errorf("failed to create administration service: %w", err)
	}
	if services.Habits, err = app.NewHabitService(habitRepo, log); err != nil {
		return nil, fmt.Errorf("failed to create habit service: %w", err)
	}
	if services.Records, err = app.NewHabitRecordService(recordRepo, log); err != nil {
		return nil, fmt.Errorf("failed to create habit record service: %w", err)
	}
	if services.Statistics, err = app.NewStatisticsService(recordRepo, log); err != nil {
		return nil, fmt.Errorf("failed to create statistics service: %w", err)
	}
	return services, nil
}

func credentials(cmd *cobra.Command) (string, string, error) {
	email, err := cmd.Flags().GetString("email")
	if err != nil {
		return "", "", fmt.Errorf("invalid email flag: %w", err)
	}
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		return "", "", fmt.Errorf("invalid password flag: %w", err)
	}
	if email == "" || password == "" {
		return "", "", errors.New("--email and --password are required")
	}
	return email, password, nil
}

// authenticate signs in with --email and --password
func (commandHandler *CommandHandler) authenticate(cmd *cobra.Command) (*users.User, error) {
	email, password, err := credentials(cmd)
	if err != nil {
		return nil, err
	}
	return commandHandler.services.Accounts.Login(cmd.Context(), email, password)
}

func (commandHandler *CommandHandler) authenticateAdmin(cmd *cobra.Command) (*users.User, error) {
	user, err := commandHandler.authenticate(cmd)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, ErrAdminRequired
	}
	return user, nil
}

// habit resolves the habit named by title for the signed-in user
func (commandHandler *CommandHandler) habit(ctx context.Context, user *users.User, title string) (*habits.Habit, error) {
	return commandHandler.services.Habits.GetByTitle(ctx, user.ID, title)
}

// dayFlag reads a yyyy-mm-dd flag. An unset optional flag means today (UTC).
func dayFlag(cmd *cobra.Command, name string, required bool) (time.Time, error) {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s flag: %w", name, err)
	}
	if value == "" {
		if required {
			return time.Time{}, fmt.Errorf("--%s is required", name)
		}
		return habits.Day(time.Now().UTC()), nil
	}
	return habits.ParseDay(value)
}
