//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/niyatanya/habit-tracker/internal/domain/habits"
	"github.com/niyatanya/habit-tracker/internal/domain/users"
	"github.com/niyatanya/habit-tracker/internal/infrastructure/persistence/models"
	"github.com/niyatanya/habit-tracker/internal/pkg/config"
)

// RepositoryTestSuite runs the repository contract against one database type
type RepositoryTestSuite struct {
	suite.Suite
	dbType string
	tc     *TestContext
	ctx    context.Context
}

func (s *RepositoryTestSuite) SetupTest() {
	s.tc = SetupTestDB(s.T(), s.dbType)
	s.ctx = context.Background()
}

func TestSqliteRepositories(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{dbType: config.SqliteDbType})
}

func TestPostgresRepositories(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{dbType: config.PostgresDbType})
}

func (s *RepositoryTestSuite) createUser(email string) *users.User {
	user := CreateTestUser(s.T(), email)
	s.Require().NoError(s.tc.UserRepo.Create(s.ctx, user))
	return user
}

func (s *RepositoryTestSuite) createHabit(userID, title string) *habits.Habit {
	habit := CreateTestHabit(s.T(), userID, title, habits.FrequencyDaily)
	s.Require().NoError(s.tc.HabitRepo.Create(s.ctx, habit))
	return habit
}

func (s *RepositoryTestSuite) TestUser_CreateAndGet() {
	user := s.createUser("Kate@Example.com")

	byEmail, err := s.tc.UserRepo.GetByEmail(s.ctx, "kate@example.COM")
	s.Require().NoError(err)
	s.Require().True(byEmail.IsPresent())
	s.Equal(user.ID, byEmail.MustGet().ID)
	s.Equal("kate@example.com", byEmail.MustGet().Email)

	byID, err := s.tc.UserRepo.GetByID(s.ctx, user.ID)
	s.Require().NoError(err)
	s.True(byID.IsPresent())

	missing, err := s.tc.UserRepo.GetByID(s.ctx, uuid.NewString())
	s.Require().NoError(err)
	s.True(missing.IsAbsent())
}

func (s *RepositoryTestSuite) TestUser_DuplicateEmail() {
	s.createUser("kate@example.com")

	err := s.tc.UserRepo.Create(s.ctx, CreateTestUser(s.T(), "KATE@example.com"))
	s.ErrorIs(err, users.ErrEmailTaken)
}

func (s *RepositoryTestSuite) TestUser_UpdateOntoTakenEmail() {
	s.createUser("kate@example.com")
	other := s.createUser("john@example.com")

	other.Email = "kate@example.com"
	s.ErrorIs(s.tc.UserRepo.UpdateByID(s.ctx, other), users.ErrEmailTaken)

	other.Email = "johnny@example.com"
	other.Blocked = true
	s.Require().NoError(s.tc.UserRepo.UpdateByID(s.ctx, other))

	fetched, err := s.tc.UserRepo.GetByID(s.ctx, other.ID)
	s.Require().NoError(err)
	s.Equal("johnny@example.com", fetched.MustGet().Email)
	s.True(fetched.MustGet().Blocked)
}

func (s *RepositoryTestSuite) TestUser_ListWithPaging() {
	s.createUser("c@example.com")
	s.createUser("a@example.com")
	s.createUser("b@example.com")

	all, err := s.tc.UserRepo.List(s.ctx, users.NewUserQuery())
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal("a@example.com", all[0].Email)

	page, err := s.tc.UserRepo.List(s.ctx, &users.UserQuery{Limit: 1, Offset: 1})
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Equal("b@example.com", page[0].Email)

	_, err = s.tc.UserRepo.List(s.ctx, &users.UserQuery{Offset: -1})
	s.Error(err)
}

func (s *RepositoryTestSuite) TestUser_DeleteCascades() {
	user := s.createUser("kate@example.com")
	other := s.createUser("john@example.com")
	habit := s.createHabit(user.ID, "Read")
	kept := s.createHabit(other.ID, "Read")
	s.Require().NoError(s.tc.RecordRepo.Create(s.ctx, CreateTestRecord(s.T(), habit.ID, "2024-10-19", true)))
	s.Require().NoError(s.tc.RecordRepo.Create(s.ctx, CreateTestRecord(s.T(), kept.ID, "2024-10-19", true)))

	s.Require().NoError(s.tc.UserRepo.DeleteByID(s.ctx, user.ID))

	var habitCount, recordCount int64
	s.Require().NoError(s.tc.DB.Model(&models.HabitModel{}).Count(&habitCount).Error)
	s.Require().NoError(s.tc.DB.Model(&models.HabitRecordModel{}).Count(&recordCount).Error)
	s.EqualValues(1, habitCount)
	s.EqualValues(1, recordCount)

	gone, err := s.tc.UserRepo.GetByID(s.ctx, user.ID)
	s.Require().NoError(err)
	s.True(gone.IsAbsent())
}

func (s *RepositoryTestSuite) TestHabit_TitleUniquePerUser() {
	user := s.createUser("kate@example.com")
	other := s.createUser("john@example.com")
	s.createHabit(user.ID, "Morning Run")

	err := s.tc.HabitRepo.Create(s.ctx, CreateTestHabit(s.T(), user.ID, "morning run", habits.FrequencyWeekly))
	s.ErrorIs(err, habits.ErrHabitExists)

	// another user may reuse the title
	s.createHabit(other.ID, "Morning Run")
}

func (s *RepositoryTestSuite) TestHabit_GetListUpdate() {
	user := s.createUser("kate@example.com")
	s.createHabit(user.ID, "Walk")
	read := s.createHabit(user.ID, "read")

	list, err := s.tc.HabitRepo.ListByUserID(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("read", list[0].Title)
	s.Equal("Walk", list[1].Title)

	found, err := s.tc.HabitRepo.GetByTitle(s.ctx, user.ID, " READ ")
	s.Require().NoError(err)
	s.Equal(read.ID, found.MustGet().ID)

	read.Title = "Walk"
	s.ErrorIs(s.tc.HabitRepo.UpdateByID(s.ctx, read), habits.ErrHabitExists)

	read.Title = "Read books"
	read.Frequency = habits.FrequencyWeekly
	s.Require().NoError(s.tc.HabitRepo.UpdateByID(s.ctx, read))

	renamed, err := s.tc.HabitRepo.GetByTitle(s.ctx, user.ID, "read books")
	s.Require().NoError(err)
	s.Equal(habits.FrequencyWeekly, renamed.MustGet().Frequency)

	old, err := s.tc.HabitRepo.GetByTitle(s.ctx, user.ID, "read")
	s.Require().NoError(err)
	s.True(old.IsAbsent())
}

func (s *RepositoryTestSuite) TestHabit_DeleteRemovesRecords() {
	user := s.createUser("kate@example.com")
	habit := s.createHabit(user.ID, "Read")
	s.Require().NoError(s.tc.RecordRepo.Create(s.ctx, CreateTestRecord(s.T(), habit.ID, "2024-10-19", true)))

	s.Require().NoError(s.tc.HabitRepo.DeleteByID(s.ctx, habit.ID))

	records, err := s.tc.RecordRepo.ListByHabitID(s.ctx, habit.ID)
	s.Require().NoError(err)
	s.Empty(records)
}

func (s *RepositoryTestSuite) TestRecord_OnePerDay() {
	user := s.createUser("kate@example.com")
	habit := s.createHabit(user.ID, "Read")
	s.Require().NoError(s.tc.RecordRepo.Create(s.ctx, CreateTestRecord(s.T(), habit.ID, "2024-10-19", true)))

	err := s.tc.RecordRepo.Create(s.ctx, CreateTestRecord(s.T(), habit.ID, "2024-10-19", false))
	s.ErrorIs(err, habits.ErrRecordExists)
}

func (s *RepositoryTestSuite) TestRecord_QueriesAndUpdate() {
	user := s.createUser("kate@example.com")
	habit := s.createHabit(user.ID, "Read")
	for _, day := range []string{"2024-10-21", "2024-10-19", "2024-10-20", "2024-10-25"} {
		s.Require().NoError(s.tc.RecordRepo.Create(s.ctx, CreateTestRecord(s.T(), habit.ID, day, true)))
	}

	all, err := s.tc.RecordRepo.ListByHabitID(s.ctx, habit.ID)
	s.Require().NoError(err)
	s.Require().Len(all, 4)
	s.Equal("2024-10-19", habits.FormatDay(all[0].Date))

	from, _ := habits.ParseDay("2024-10-20")
	to, _ := habits.ParseDay("2024-10-21")
	between, err := s.tc.RecordRepo.ListByHabitIDBetween(s.ctx, habit.ID, from, to)
	s.Require().NoError(err)
	s.Len(between, 2)

	got, err := s.tc.RecordRepo.GetByDate(s.ctx, habit.ID, from)
	s.Require().NoError(err)
	s.Require().True(got.IsPresent())
	record := got.MustGet()
	s.Equal(from, record.Date)

	record.Completed = false
	s.Require().NoError(s.tc.RecordRepo.UpdateByID(s.ctx, record))
	updated, err := s.tc.RecordRepo.GetByDate(s.ctx, habit.ID, from)
	s.Require().NoError(err)
	s.False(updated.MustGet().Completed)

	s.Require().NoError(s.tc.RecordRepo.DeleteByID(s.ctx, record.ID))
	deleted, err := s.tc.RecordRepo.GetByDate(s.ctx, habit.ID, from)
	s.Require().NoError(err)
	s.True(deleted.IsAbsent())
}

func (s *RepositoryTestSuite) TestCreate_ValidationError() {
	err := s.tc.HabitRepo.Create(s.ctx, &habits.Habit{})
	s.Error(err)
	s.Contains(err.Error(), "validation")
}
