package stats

import (
	"fmt"
	"strings"
	"time"

	"github.com/niyatanya/habit-tracker/internal/domain/habits"
)

// Report summarizes a habit over a period
type Report struct {
	HabitTitle          string
	Frequency           habits.Frequency
	Start               time.Time
	End                 time.Time
	TotalIntervals      int
	SuccessfulIntervals int
	SuccessRate         float64
	CurrentStreak       int
}

// String renders the report as the multi-line text shown to users
func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Progress Report for Habit: %s\n", r.HabitTitle)
	fmt.Fprintf(&b, "Period: %s to %s\n", habits.FormatDay(r.Start), habits.FormatDay(r.End))
	fmt.Fprintf(&b, "Total intervals: %d\n", r.TotalIntervals)
	fmt.Fprintf(&b, "Successful intervals: %d\n", r.SuccessfulIntervals)
	fmt.Fprintf(&b, "Success rate: %.2f%%\n", r.SuccessRate)
	fmt.Fprintf(&b, "Current streak: %d intervals", r.CurrentStreak)
	return b.String()
}
