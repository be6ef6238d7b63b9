//go:build unit
// +build unit

package v1

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/niyatanya/habit-tracker/internal/domain/auth"
	"github.com/niyatanya/habit-tracker/internal/domain/habits"
	"github.com/niyatanya/habit-tracker/internal/domain/stats"
	"github.com/niyatanya/habit-tracker/internal/domain/users"
)

// MockAccountService is a mock implementation of AccountService
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Register(ctx context.Context, name, email, password string) (*users.User, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAccountService) Login(ctx context.Context, email, password string) (*users.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAccountService) EnsureAdmin(ctx context.Context, name, email, password string) (*users.User, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

// MockProfileService is a mock implementation of ProfileService
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetByID(ctx context.Context, userID string) (*users.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockProfileService) Edit(ctx context.Context, userID, name, email, password string) (*users.User, error) {
	args := m.Called(ctx, userID, name, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockProfileService) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockAdministrationService is a mock implementation of AdministrationService
type MockAdministrationService struct {
	mock.Mock
}

func (m *MockAdministrationService) List(ctx context.Context, query *users.UserQuery) ([]*users.User, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*users.User), args.Error(1)
}

func (m *MockAdministrationService) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAdministrationService) Block(ctx context.Context, email string) (*users.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAdministrationService) Unblock(ctx context.Context, email string) (*users.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAdministrationService) Delete(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

// MockHabitService is a mock implementation of HabitService
type MockHabitService struct {
	mock.Mock
}

func (m *MockHabitService) Create(ctx context.Context, userID, title, description string, frequency habits.Frequency) (*habits.Habit, error) {
	args := m.Called(ctx, userID, title, description, frequency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*habits.Habit), args.Error(1)
}

func (m *MockHabitService) List(ctx context.Context, userID string) ([]*habits.Habit, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*habits.Habit), args.Error(1)
}

func (m *MockHabitService) GetByTitle(ctx context.Context, userID, title string) (*habits.Habit, error) {
	args := m.Called(ctx, userID, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*habits.Habit), args.Error(1)
}

func (m *MockHabitService) Edit(ctx context.Context, userID, oldTitle, newTitle, newDescription string, newFrequency habits.Frequency) (*habits.Habit, error) {
	args := m.Called(ctx, userID, oldTitle, newTitle, newDescription, newFrequency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*habits.Habit), args.Error(1)
}

func (m *MockHabitService) Delete(ctx context.Context, userID, title string) error {
	args := m.Called(ctx, userID, title)
	return args.Error(0)
}

// MockHabitRecordService is a mock implementation of HabitRecordService
type MockHabitRecordService struct {
	mock.Mock
}

func (m *MockHabitRecordService) Track(ctx context.Context, habit *habits.Habit, date time.Time, completed bool) (*habits.HabitRecord, error) {
	args := m.Called(ctx, habit, date, completed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*habits.HabitRecord), args.Error(1)
}

func (m *MockHabitRecordService) Edit(ctx context.Context, habit *habits.Habit, date time.Time, completed bool) (*habits.HabitRecord, error) {
	args := m.Called(ctx, habit, date, completed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*habits.HabitRecord), args.Error(1)
}

func (m *MockHabitRecordService) Delete(ctx context.Context, habit *habits.Habit, date time.Time) error {
	args := m.Called(ctx, habit, date)
	return args.Error(0)
}

func (m *MockHabitRecordService) List(ctx context.Context, habit *habits.Habit) (map[time.Time]*habits.HabitRecord, error) {
	args := m.Called(ctx, habit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[time.Time]*habits.HabitRecord), args.Error(1)
}

func (m *MockHabitRecordService) GetByDate(ctx context.Context, habit *habits.Habit, date time.Time) (*habits.HabitRecord, error) {
	args := m.Called(ctx, habit, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*habits.HabitRecord), args.Error(1)
}

func (m *MockHabitRecordService) Exists(ctx context.Context, habit *habits.Habit, date time.Time) (bool, error) {
	args := m.Called(ctx, habit, date)
	return args.Bool(0), args.Error(1)
}

// MockStatisticsService is a mock implementation of StatisticsService
type MockStatisticsService struct {
	mock.Mock
}

func (m *MockStatisticsService) CurrentStreak(ctx context.Context, habit *habits.Habit, asOf time.Time) (int, error) {
	args := m.Called(ctx, habit, asOf)
	return args.Int(0), args.Error(1)
}

func (m *MockStatisticsService) SuccessPercentage(ctx context.Context, habit *habits.Habit, start, end time.Time) (float64, error) {
	args := m.Called(ctx, habit, start, end)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockStatisticsService) ProgressReport(ctx context.Context, habit *habits.Habit, start, end, asOf time.Time) (*stats.Report, error) {
	args := m.Called(ctx, habit, start, end, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stats.Report), args.Error(1)
}

// MockTokenIssuer is a mock implementation of TokenIssuer
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(user *users.User) (string, *auth.Session, error) {
	args := m.Called(user)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*auth.Session), args.Error(2)
}

func (m *MockTokenIssuer) Parse(token string) (*auth.Session, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Session), args.Error(1)
}

// MockSessionStore is a mock implementation of SessionStore
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockSessionStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}
