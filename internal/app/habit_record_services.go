package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/niyatanya/habit-tracker/internal/domain/habits"
	"github.com/niyatanya/habit-tracker/internal/pkg/logger"
)

// habitRecordService implements the HabitRecordService interface
type habitRecordService struct {
	recordRepo habits.HabitRecordRepository
	logger     logger.Logger
}

// NewHabitRecordService creates a new habitRecordService instance
func NewHabitRecordService(recordRepo habits.HabitRecordRepository, logger logger.Logger) (habits.HabitRecordService, error) {
	return &habitRecordService{
		recordRepo: recordRepo,
		logger:     logger,
	}, nil
}

// Track records whether the habit was done on date
func (s *habitRecordService) Track(ctx context.Context, habit *habits.Habit, date time.Time, completed bool) (*habits.HabitRecord, error) {
	exists, err := s.Exists(ctx, habit, date)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, habits.ErrRecordExists
	}

	record := &habits.HabitRecord{
		ID:        uuid.NewString(),
		HabitID:   habit.ID,
		Date:      habits.Day(date),
		Completed: completed,
	}

	if err := s.recordRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return record, nil
}

// Edit changes the completion flag of the record of date. Writing the value
// it already has is a no-op.
func (s *habitRecordService) Edit(ctx context.Context, habit *habits.Habit, date time.Time, completed bool) (*habits.HabitRecord, error) {
	record, err := s.GetByDate(ctx, habit, date)
	if err != nil {
		return nil, err
	}
	if record.Completed == completed {
		return record, nil
	}

	record.Completed = completed
	if err := s.recordRepo.UpdateByID(ctx, record); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return record, nil
}

// Delete removes the record of date
func (s *habitRecordService) Delete(ctx context.Context, habit *habits.Habit, date time.Time) error {
	record, err := s.GetByDate(ctx, habit, date)
	if err != nil {
		return err
	}
	if err := s.recordRepo.DeleteByID(ctx, record.ID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// List retrieves all records of the habit keyed by day
func (s *habitRecordService) List(ctx context.Context, habit *habits.Habit) (map[time.Time]*habits.HabitRecord, error) {
	list, err := s.recordRepo.ListByHabitID(ctx, habit.ID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	byDate := make(map[time.Time]*habits.HabitRecord, len(list))
	for _, record := range list {
		byDate[record.Date] = record
	}
	return byDate, nil
}

// GetByDate retrieves the record of date
func (s *habitRecordService) GetByDate(ctx context.Context, habit *habits.Habit, date time.Time) (*habits.HabitRecord, error) {
	found, err := s.recordRepo.GetByDate(ctx, habit.ID, habits.Day(date))
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	record, ok := found.Get()
	if !ok {
		return nil, habits.ErrRecordNotFound
	}
	return record, nil
}

// Exists reports whether date is recorded for the habit
func (s *habitRecordService) Exists(ctx context.Context, habit *habits.Habit, date time.Time) (bool, error) {
	found, err := s.recordRepo.GetByDate(ctx, habit.ID, habits.Day(date))
	if err != nil {
		return false, fmt.Errorf("%w", err)
	}
	return found.IsPresent(), nil
}
