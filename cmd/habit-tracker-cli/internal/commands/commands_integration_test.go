//go:build integration
// +build integration

package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niyatanya/habit-tracker/internal/app"
	"github.com/niyatanya/habit-tracker/internal/domain/habits"
	"github.com/niyatanya/habit-tracker/internal/domain/users"
	"github.com/niyatanya/habit-tracker/internal/pkg/config"
	"github.com/niyatanya/habit-tracker/internal/pkg/testutil"
)

type cliFixture struct {
	handler  *CommandHandler
	services *app.TestServices
}

func newCLIFixture(t *testing.T) *cliFixture {
	t.Helper()

	svc := app.SetupTestServices(t, config.SqliteDbType)
	handler := NewCommandHandlerWithServices(&Services{
		Accounts:       svc.AccountService,
		Profiles:       svc.ProfileService,
		Administration: svc.AdministrationService,
		Habits:         svc.HabitService,
		Records:        svc.HabitRecordService,
		Statistics:     svc.StatisticsService,
	}, testutil.SetupTestLogger(t))

	return &cliFixture{handler: handler, services: svc}
}

func (f *cliFixture) run(args ...string) (string, error) {
	var out bytes.Buffer
	root := NewRootCommand(f.handler)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func kate(args ...string) []string {
	return append(args, "--email", "kate@example.com", "--password", "secret1")
}

func TestCLI_RegisterAndHabitLifecycle(t *testing.T) {
	f := newCLIFixture(t)

	out, err := f.run(kate("user", "register", "--name", "Kate")...)
	require.NoError(t, err)
	assert.Contains(t, out, "kate@example.com")

	_, err = f.run(kate("habit", "create", "Running", "-d", "5 km", "-f", "weekly")...)
	require.NoError(t, err)

	_, err = f.run(kate("habit", "create", "running")...)
	assert.ErrorIs(t, err, habits.ErrHabitExists)

	out, err = f.run(kate("habit", "list", "-o", "json")...)
	require.NoError(t, err)
	var listed []habitView
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "WEEKLY", listed[0].Frequency)

	_, err = f.run(kate("habit", "edit", "Running", "--title", "Jogging")...)
	require.NoError(t, err)

	out, err = f.run(kate("habit", "show", "jogging")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Jogging")
	assert.Contains(t, out, "5 km", "unset flags keep their value")

	out, err = f.run(kate("habit", "delete", "Jogging")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted habit Jogging")
}

func TestCLI_RecordsAndStatistics(t *testing.T) {
	f := newCLIFixture(t)
	_, err := f.run(kate("user", "register", "--name", "Kate")...)
	require.NoError(t, err)
	_, err = f.run(kate("habit", "create", "Reading")...)
	require.NoError(t, err)

	for _, date := range []string{"2024-03-01", "2024-03-02", "2024-03-04"} {
		_, err = f.run(kate("record", "track", "Reading", "--date", date)...)
		require.NoError(t, err)
	}
	_, err = f.run(kate("record", "track", "Reading", "--date", "2024-03-03", "--missed")...)
	require.NoError(t, err)

	_, err = f.run(kate("record", "track", "Reading", "--date", "2024-03-04")...)
	assert.ErrorIs(t, err, habits.ErrRecordExists)

	out, err := f.run(kate("record", "list", "Reading")...)
	require.NoError(t, err)
	assert.Contains(t, out, "2024-03-03  false")

	out, err = f.run(kate("stats", "streak", "Reading", "--as-of", "2024-03-04", "-o", "json")...)
	require.NoError(t, err)
	assert.JSONEq(t, `{"habit_title":"Reading","as_of":"2024-03-04","current_streak":1}`, out)

	_, err = f.run(kate("record", "edit", "Reading", "--date", "2024-03-03", "--completed=true")...)
	require.NoError(t, err)

	out, err = f.run(kate("stats", "success", "Reading", "--start", "2024-03-01", "--end", "2024-03-05")...)
	require.NoError(t, err)
	assert.Contains(t, out, "80.00%")

	out, err = f.run(kate("stats", "report", "Reading", "--start", "2024-03-01", "--end", "2024-03-04", "--as-of", "2024-03-04")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Progress Report for Habit: Reading")
	assert.Contains(t, out, "Success rate: 100.00%")
	assert.Contains(t, out, "Current streak: 4 intervals")

	_, err = f.run(kate("stats", "success", "Reading", "--start", "2024-03-05", "--end", "2024-03-01")...)
	assert.Error(t, err)

	_, err = f.run(kate("record", "delete", "Reading", "--date", "2024-03-01")...)
	require.NoError(t, err)
	_, err = f.run(kate("record", "delete", "Reading", "--date", "2024-03-01")...)
	assert.ErrorIs(t, err, habits.ErrRecordNotFound)
}

func TestCLI_Authentication(t *testing.T) {
	f := newCLIFixture(t)

	_, err := f.run("habit", "list")
	assert.Error(t, err)

	_, err = f.run(kate("habit", "list")...)
	assert.ErrorIs(t, err, users.ErrInvalidCredentials)
}

func TestCLI_Admin(t *testing.T) {
	f := newCLIFixture(t)
	ctx := context.Background()

	_, err := f.services.AccountService.EnsureAdmin(ctx, "Admin", "admin@example.com", "adminpass")
	require.NoError(t, err)
	admin := func(args ...string) []string {
		return append(args, "--email", "admin@example.com", "--password", "adminpass")
	}

	_, err = f.run(kate("user", "register", "--name", "Kate")...)
	require.NoError(t, err)
	_, err = f.run(kate("habit", "create", "Running")...)
	require.NoError(t, err)

	_, err = f.run(kate("admin", "users")...)
	assert.ErrorIs(t, err, ErrAdminRequired)

	out, err := f.run(admin("admin", "users")...)
	require.NoError(t, err)
	assert.Contains(t, out, "admin@example.com")
	assert.Contains(t, out, "kate@example.com")

	out, err = f.run(admin("admin", "habits", "kate@example.com")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Running")

	_, err = f.run(admin("admin", "block", "kate@example.com")...)
	require.NoError(t, err)
	_, err = f.run(kate("habit", "list")...)
	assert.ErrorIs(t, err, users.ErrUserBlocked)

	_, err = f.run(admin("admin", "block", "admin@example.com")...)
	assert.ErrorIs(t, err, users.ErrAdminProtected)

	_, err = f.run(admin("admin", "unblock", "kate@example.com")...)
	require.NoError(t, err)
	_, err = f.run(admin("admin", "unblock", "kate@example.com")...)
	assert.ErrorIs(t, err, users.ErrNotBlocked)

	_, err = f.run(admin("admin", "delete", "kate@example.com")...)
	require.NoError(t, err)
	_, err = f.run(admin("admin", "habits", "kate@example.com")...)
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestCLI_DeleteAccountNeedsConfirmation(t *testing.T) {
	f := newCLIFixture(t)
	_, err := f.run(kate("user", "register", "--name", "Kate")...)
	require.NoError(t, err)

	_, err = f.run(kate("user", "delete")...)
	assert.Error(t, err)

	out, err := f.run(kate("user", "delete", "--yes")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted user kate@example.com")
}
