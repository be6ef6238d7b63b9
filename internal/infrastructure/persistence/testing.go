//go:build integration
// +build integration

package persistence

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/niyatanya/habit-tracker/internal/domain/habits"
	"github.com/niyatanya/habit-tracker/internal/domain/users"
	"github.com/niyatanya/habit-tracker/internal/pkg/config"
	"github.com/niyatanya/habit-tracker/internal/pkg/testutil"
)

// PostgresDSNEnv points the postgres variant of the integration tests at a server
const PostgresDSNEnv = "HABIT_TEST_POSTGRES_DSN"

// TestContext holds test database and repositories
type TestContext struct {
	DB         *gorm.DB
	UserRepo   users.UserRepository
	HabitRepo  habits.HabitRepository
	RecordRepo habits.HabitRecordRepository
}

// SetupTestDB initializes a migrated test database with automatic cleanup.
// Postgres tests are skipped unless PostgresDSNEnv is set.
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}

	case config.PostgresDbType:
		dsn := os.Getenv(PostgresDSNEnv)
		if dsn == "" {
			t.Skipf("%s not set", PostgresDSNEnv)
		}
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    dsn,
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			_ = DropDatabase(dsn+" dbname=postgres", uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	if dbType == config.SqliteDbType {
		// every sqlite connection to :memory: opens its own empty database
		sqlDB, err := db.DB()
		require.NoError(t, err)
		sqlDB.SetMaxOpenConns(1)
	}

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)

	userRepo, err := NewGormUserRepository(db, logger)
	require.NoError(t, err, "Failed to create user repository")

	habitRepo, err := NewGormHabitRepository(db, logger)
	require.NoError(t, err, "Failed to create habit repository")

	recordRepo, err := NewGormHabitRecordRepository(db, logger)
	require.NoError(t, err, "Failed to create habit record repository")

	return &TestContext{
		DB:         db,
		UserRepo:   userRepo,
		HabitRepo:  habitRepo,
		RecordRepo: recordRepo,
	}
}

// CreateTestUser creates a USER account entity with default values
func CreateTestUser(t *testing.T, email string) *users.User {
	t.Helper()

	return &users.User{
		ID:              uuid.NewString(),
		Name:            "Test User",
		Email:           email,
		PasswordHash:    "$2a$10$notarealhashbutlongenough",
		Role:            users.RoleUser,
		DateTimeCreated: time.Now().UTC(),
	}
}

// CreateTestHabit creates a habit entity for the user
func CreateTestHabit(t *testing.T, userID, title string, frequency habits.Frequency) *habits.Habit {
	t.Helper()

	return &habits.Habit{
		ID:              uuid.NewString(),
		UserID:          userID,
		Title:           title,
		Description:     "test habit",
		Frequency:       frequency,
		DateTimeCreated: time.Now().UTC(),
	}
}

// CreateTestRecord creates a record entity for the habit on the given yyyy-mm-dd day
func CreateTestRecord(t *testing.T, habitID, day string, completed bool) *habits.HabitRecord {
	t.Helper()

	date, err := habits.ParseDay(day)
	require.NoError(t, err)

	return &habits.HabitRecord{
		ID:        uuid.NewString(),
		HabitID:   habitID,
		Date:      date,
		Completed: completed,
	}
}
