//go:build unit
// +build unit

package app

import (
	"context"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"github.com/niyatanya/habit-tracker/internal/domain/habits"
	"github.com/niyatanya/habit-tracker/internal/domain/users"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *users.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) List(ctx context.Context, query *users.UserQuery) ([]*users.User, error) {
	args := m.Called(ctx, query)
	list, _ := args.Get(0).([]*users.User)
	return list, args.Error(1)
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID string) (mo.Option[*users.User], error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(mo.Option[*users.User]), args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (mo.Option[*users.User], error) {
	args := m.Called(ctx, email)
	return args.Get(0).(mo.Option[*users.User]), args.Error(1)
}

func (m *mockUserRepository) UpdateByID(ctx context.Context, user *users.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) DeleteByID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Compare(hash, password string) error {
	args := m.Called(hash, password)
	return args.Error(0)
}

type mockHabitRecordRepository struct {
	mock.Mock
}

func (m *mockHabitRecordRepository) Create(ctx context.Context, record *habits.HabitRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *mockHabitRecordRepository) ListByHabitID(ctx context.Context, habitID string) ([]*habits.HabitRecord, error) {
	args := m.Called(ctx, habitID)
	list, _ := args.Get(0).([]*habits.HabitRecord)
	return list, args.Error(1)
}

func (m *mockHabitRecordRepository) ListByHabitIDBetween(ctx context.Context, habitID string, from, to time.Time) ([]*habits.HabitRecord, error) {
	args := m.Called(ctx, habitID, from, to)
	list, _ := args.Get(0).([]*habits.HabitRecord)
	return list, args.Error(1)
}

func (m *mockHabitRecordRepository) GetByDate(ctx context.Context, habitID string, date time.Time) (mo.Option[*habits.HabitRecord], error) {
	args := m.Called(ctx, habitID, date)
	return args.Get(0).(mo.Option[*habits.HabitRecord]), args.Error(1)
}

func (m *mockHabitRecordRepository) UpdateByID(ctx context.Context, record *habits.HabitRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *mockHabitRecordRepository) DeleteByID(ctx context.Context, recordID string) error {
	args := m.Called(ctx, recordID)
	return args.Error(0)
}
