package stats

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/niyatanya/habit-tracker/internal/domain/habits"
)

const day = 24 * time.Hour

// IntervalStart returns the first day of the interval containing date
func IntervalStart(frequency habits.Frequency, date time.Time) time.Time {
	date = habits.Day(date)
	if frequency == habits.FrequencyWeekly {
		offset := (int(date.Weekday()) + 6) % 7
		return date.AddDate(0, 0, -offset)
	}
	return date
}

// IntervalEnd returns the last day of the interval containing date
func IntervalEnd(frequency habits.Frequency, date time.Time) time.Time {
	start := IntervalStart(frequency, date)
	if frequency == habits.FrequencyWeekly {
		return start.AddDate(0, 0, 6)
	}
	return start
}

func checkPeriod(start, end time.Time) error {
	if habits.Day(end).Before(habits.Day(start)) {
		return ErrInvalidPeriod
	}
	return nil
}

func previousInterval(frequency habits.Frequency, start time.Time) time.Time {
	if frequency == habits.FrequencyWeekly {
		return start.AddDate(0, 0, -7)
	}
	return start.AddDate(0, 0, -1)
}

// CountIntervals returns how many intervals the period [start, end] touches
func CountIntervals(frequency habits.Frequency, start, end time.Time) (int, error) {
	if err := checkPeriod(start, end); err != nil {
		return 0, err
	}

	first := IntervalStart(frequency, start)
	last := IntervalStart(frequency, end)

	days := int(last.Sub(first) / day)
	if frequency == habits.FrequencyWeekly {
		return days/7 + 1, nil
	}
	return days + 1, nil
}

// completedIntervals collects the start day of every interval with a completed record
func completedIntervals(frequency habits.Frequency, records []*habits.HabitRecord) map[time.Time]struct{} {
	done := make(map[time.Time]struct{}, len(records))
	for _, record := range records {
		if record.Completed {
			done[IntervalStart(frequency, record.Date)] = struct{}{}
		}
	}
	return done
}

// Streak counts consecutive successful intervals ending at the interval of
// asOf. An interval still in progress without a completion does not break
// the streak; counting then starts from the interval before it.
func Streak(frequency habits.Frequency, records []*habits.HabitRecord, asOf time.Time) int {
	done := completedIntervals(frequency, records)

	cursor := IntervalStart(frequency, asOf)
	if _, ok := done[cursor]; !ok {
		cursor = previousInterval(frequency, cursor)
	}

	streak := 0
	for {
		if _, ok := done[cursor]; !ok {
			return streak
		}
		streak++
		cursor = previousInterval(frequency, cursor)
	}
}

// SuccessfulIntervals counts the intervals of [start, end] with at least one completed record
func SuccessfulIntervals(frequency habits.Frequency, records []*habits.HabitRecord, start, end time.Time) (int, error) {
	if err := checkPeriod(start, end); err != nil {
		return 0, err
	}

	first := IntervalStart(frequency, start)
	last := IntervalEnd(frequency, end)

	inRange := make([]*habits.HabitRecord, 0, len(records))
	for _, record := range records {
		date := habits.Day(record.Date)
		if date.Before(first) || date.After(last) {
			continue
		}
		inRange = append(inRange, record)
	}
	return len(completedIntervals(frequency, inRange)), nil
}

// Percentage returns successful/total as a percentage rounded to two decimals
func Percentage(successful, total int) float64 {
	if total <= 0 {
		return 0
	}

	rate := decimal.NewFromInt(int64(successful)).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(int64(total)), 2)
	value, _ := rate.Float64()
	return value
}
