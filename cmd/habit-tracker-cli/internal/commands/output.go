package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/niyatanya/habit-tracker/internal/domain/habits"
	"github.com/niyatanya/habit-tracker/internal/domain/stats"
	"github.com/niyatanya/habit-tracker/internal/domain/users"
)

// Output formats selected with --output
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

type userView struct {
	ID      string    `json:"id" yaml:"id"`
	Name    string    `json:"name" yaml:"name"`
	Email   string    `json:"email" yaml:"email"`
	Role    string    `json:"role" yaml:"role"`
	Blocked bool      `json:"blocked" yaml:"blocked"`
	Created time.Time `json:"date_time_created" yaml:"date_time_created"`
}

func newUserView(u *users.User) userView {
	return userView{ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role), Blocked: u.Blocked, Created: u.DateTimeCreated}
}

type habitView struct {
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Frequency   string    `json:"frequency" yaml:"frequency"`
	Created     time.Time `json:"date_time_created" yaml:"date_time_created"`
}

func newHabitView(h *habits.Habit) habitView {
	return habitView{Title: h.Title, Description: h.Description, Frequency: string(h.Frequency), Created: h.DateTimeCreated}
}

type recordView struct {
	Date      string `json:"date" yaml:"date"`
	Completed bool   `json:"completed" yaml:"completed"`
}

func newRecordView(r *habits.HabitRecord) recordView {
	return recordView{Date: habits.FormatDay(r.Date), Completed: r.Completed}
}

type reportView struct {
	HabitTitle          string  `json:"habit_title" yaml:"habit_title"`
	Start               string  `json:"start" yaml:"start"`
	End                 string  `json:"end" yaml:"end"`
	TotalIntervals      int     `json:"total_intervals" yaml:"total_intervals"`
	SuccessfulIntervals int     `json:"successful_intervals" yaml:"successful_intervals"`
	SuccessRate         float64 `json:"success_rate" yaml:"success_rate"`
	CurrentStreak       int     `json:"current_streak" yaml:"current_streak"`
}

func newReportView(r *stats.Report) reportView {
	return reportView{
		HabitTitle:          r.HabitTitle,
		Start:               habits.FormatDay(r.Start),
		End:                 habits.FormatDay(r.End),
		TotalIntervals:      r.TotalIntervals,
		SuccessfulIntervals: r.SuccessfulIntervals,
		SuccessRate:         r.SuccessRate,
		CurrentStreak:       r.CurrentStreak,
	}
}

// render writes value in the --output format. table prints the rows
// produced by header and rows instead.
func render(cmd *cobra.Command, value interface{}, header []string, rows [][]string) error {
	format, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("invalid output flag: %w", err)
	}
	return write(cmd.OutOrStdout(), format, value, header, rows)
}

func write(out io.Writer, format string, value interface{}, header []string, rows [][]string) error {
	switch format {
	case OutputJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(value)
	case OutputYAML:
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(value); err != nil {
			return err
		}
		return encoder.Close()
	case OutputTable, "":
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		writeRow(w, header)
		for _, row := range rows {
			writeRow(w, row)
		}
		return w.Flush()
	default:
		return fmt.Errorf("unsupported output format %q: expected table, json or yaml", format)
	}
}

func writeRow(w io.Writer, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, cell)
	}
	fmt.Fprintln(w)
}

func userRows(list []*users.User) (interface{}, []string, [][]string) {
	views := make([]userView, 0, len(list))
	rows := make([][]string, 0, len(list))
	for _, u := range list {
		view := newUserView(u)
		views = append(views, view)
		rows = append(rows, []string{view.Email, view.Name, view.Role, fmt.Sprint(view.Blocked)})
	}
	return views, []string{"EMAIL", "NAME", "ROLE", "BLOCKED"}, rows
}

func habitRows(list []*habits.Habit) (interface{}, []string, [][]string) {
	views := make([]habitView, 0, len(list))
	rows := make([][]string, 0, len(list))
	for _, h := range list {
		view := newHabitView(h)
		views = append(views, view)
		rows = append(rows, []string{view.Title, view.Frequency, view.Description})
	}
	return views, []string{"TITLE", "FREQUENCY", "DESCRIPTION"}, rows
}

func recordRows(list []*habits.HabitRecord) (interface{}, []string, [][]string) {
	views := make([]recordView, 0, len(list))
	rows := make([][]string, 0, len(list))
	for _, r := range list {
		view := newRecordView(r)
		views = append(views, view)
		rows = append(rows, []string{view.Date, fmt.Sprint(view.Completed)})
	}
	return views, []string{"DATE", "COMPLETED"}, rows
}
