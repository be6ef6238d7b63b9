package stats

import (
	"context"
	"time"

	"github.com/niyatanya/habit-tracker/internal/domain/habits"
)

// StatisticsService defines methods for computing habit statistics.
type StatisticsService interface {
	// CurrentStreak returns the number of consecutive successful intervals up to asOf.
	CurrentStreak(ctx context.Context, habit *habits.Habit, asOf time.Time) (int, error)

	// SuccessPercentage returns the share of successful intervals in [start, end].
	// It returns ErrInvalidPeriod when end is before start.
	SuccessPercentage(ctx context.Context, habit *habits.Habit, start, end time.Time) (float64, error)

	// ProgressReport combines interval counts, success rate and the streak as of asOf.
	ProgressReport(ctx context.Context, habit *habits.Habit, start, end, asOf time.Time) (*Report, error)
}
