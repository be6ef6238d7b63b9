package app

import (
	"context"
	"fmt"
	"time"

	"github.com/niyatanya/habit-tracker/internal/domain/habits"
	"github.com/niyatanya/habit-tracker/internal/domain/stats"
	"github.com/niyatanya/habit-tracker/internal/pkg/logger"
)

// statisticsService implements the StatisticsService interface on top of stored records
type statisticsService struct {
	recordRepo habits.HabitRecordRepository
	logger     logger.Logger
}

// NewStatisticsService creates a new statisticsService instance
func NewStatisticsService(recordRepo habits.HabitRecordRepository, logger logger.Logger) (stats.StatisticsService, error) {
	return &statisticsService{
		recordRepo: recordRepo,
		logger:     logger,
	}, nil
}

// CurrentStreak counts consecutive successful intervals up to asOf
func (s *statisticsService) CurrentStreak(ctx context.Context, habit *habits.Habit, asOf time.Time) (int, error) {
	records, err := s.recordRepo.ListByHabitID(ctx, habit.ID)
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}
	return stats.Streak(habit.Frequency, records, asOf), nil
}

// SuccessPercentage returns the share of successful intervals in [start, end]
func (s *statisticsService) SuccessPercentage(ctx context.Context, habit *habits.Habit, start, end time.Time) (float64, error) {
	total, successful, err := s.intervals(ctx, habit, start, end)
	if err != nil {
		return 0, err
	}
	return stats.Percentage(successful, total), nil
}

// ProgressReport combines interval counts, success rate and the streak as of asOf
func (s *statisticsService) ProgressReport(ctx context.Context, habit *habits.Habit, start, end, asOf time.Time) (*stats.Report, error) {
	total, successful, err := s.intervals(ctx, habit, start, end)
	if err != nil {
		return nil, err
	}

	streak, err := s.CurrentStreak(ctx, habit, asOf)
	if err != nil {
		return nil, err
	}

	return &stats.Report{
		HabitTitle:          habit.Title,
		Frequency:           habit.Frequency,
		Start:               habits.Day(start),
		End:                 habits.Day(end),
		TotalIntervals:      total,
		SuccessfulIntervals: successful,
		SuccessRate:         stats.Percentage(successful, total),
		CurrentStreak:       streak,
	}, nil
}

func (s *statisticsService) intervals(ctx context.Context, habit *habits.Habit, start, end time.Time) (int, int, error) {
	total, err := stats.CountIntervals(habit.Frequency, start, end)
	if err != nil {
		return 0, 0, err
	}

	records, err := s.recordRepo.ListByHabitIDBetween(ctx, habit.ID,
		stats.IntervalStart(habit.Frequency, start), stats.IntervalEnd(habit.Frequency, end))
	if err != nil {
		return 0, 0, fmt.Errorf("%w", err)
	}

	successful, err := stats.SuccessfulIntervals(habit.Frequency, records, start, end)
	if err != nil {
		return 0, 0, err
	}
	return total, successful, nil
}
