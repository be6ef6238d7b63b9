//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/niyatanya/habit-tracker/internal/domain/habits"
	"github.com/niyatanya/habit-tracker/internal/domain/stats"
	"github.com/niyatanya/habit-tracker/internal/domain/users"
	"github.com/niyatanya/habit-tracker/internal/infrastructure/persistence"
	"github.com/niyatanya/habit-tracker/internal/infrastructure/security"
	"github.com/niyatanya/habit-tracker/internal/pkg/testutil"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	AccountService        users.AccountService
	ProfileService        users.ProfileService
	AdministrationService users.AdministrationService

	HabitService       habits.HabitService
	HabitRecordService habits.HabitRecordService
	StatisticsService  stats.StatisticsService

	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	hasher, err := security.NewBcryptPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err, "Failed to create password hasher")

	accountService, err := NewAccountService(dbContext.UserRepo, hasher, logger)
	require.NoError(t, err, "Failed to create AccountService")

	profileService, err := NewProfileService(dbContext.UserRepo, hasher, logger)
	require.NoError(t, err, "Failed to create ProfileService")

	administrationService, err := NewAdministrationService(dbContext.UserRepo, logger)
	require.NoError(t, err, "Failed to create AdministrationService")

	habitService, err := NewHabitService(dbContext.HabitRepo, logger)
	require.NoError(t, err, "Failed to create HabitService")

	recordService, err := NewHabitRecordService(dbContext.RecordRepo, logger)
	require.NoError(t, err, "Failed to create HabitRecordService")

	statisticsService, err := NewStatisticsService(dbContext.RecordRepo, logger)
	require.NoError(t, err, "Failed to create StatisticsService")

	return &TestServices{
		AccountService:        accountService,
		ProfileService:        profileService,
		AdministrationService: administrationService,
		HabitService:          habitService,
		HabitRecordService:    recordService,
		StatisticsService:     statisticsService,
		DBContext:             dbContext,
	}
}
