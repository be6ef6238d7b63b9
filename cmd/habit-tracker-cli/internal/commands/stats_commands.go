package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/niyatanya/habit-tracker/internal/domain/habits"
)

type streakView struct {
	HabitTitle    string `json:"habit_title" yaml:"habit_title"`
	AsOf          string `json:"as_of" yaml:"as_of"`
	CurrentStreak int    `json:"current_streak" yaml:"current_streak"`
}

type successView struct {
	HabitTitle  string  `json:"habit_title" yaml:"habit_title"`
	Start       string  `json:"start" yaml:"start"`
	End         string  `json:"end" yaml:"end"`
	SuccessRate float64 `json:"success_rate" yaml:"success_rate"`
}

// StreakCmd shows the current streak of a habit
func (commandHandler *CommandHandler) StreakCmd(cmd *cobra.Command, args []string) error {
	user, err := commandHandler.authenticate(cmd)
	if err != nil {
		return err
	}
	asOf, err := dayFlag(cmd, "as-of", false)
	if err != nil {
		return err
	}
	habit, err := commandHandler.habit(cmd.Context(), user, args[0])
	if err != nil {
		return err
	}

	streak, err := commandHandler.services.Statistics.CurrentStreak(cmd.Context(), habit, asOf)
	if err != nil {
		return err
	}
	view := streakView{HabitTitle: habit.Title, AsOf: habits.FormatDay(asOf), CurrentStreak: streak}
	return render(cmd, view,
		[]string{"HABIT", "AS OF", "STREAK"},
		[][]string{{view.HabitTitle, view.AsOf, fmt.Sprint(view.CurrentStreak)}})
}

// SuccessCmd shows the success rate of a habit over --start..--end
func (commandHandler *CommandHandler) SuccessCmd(cmd *cobra.Command, args []string) error {
	user, err := commandHandler.authenticate(cmd)
	if err != nil {
		return err
	}
	start, err := dayFlag(cmd, "start", true)
	if err != nil {
		return err
	}
	end, err := dayFlag(cmd, "end", true)
	if err != nil {
		return err
	}
	habit, err := commandHandler.habit(cmd.Context(), user, args[0])
	if err != nil {
		return err
	}

	rate, err := commandHandler.services.Statistics.SuccessPercentage(cmd.Context(), habit, start, end)
	if err != nil {
		return err
	}
	view := successView{HabitTitle: habit.Title, Start: habits.FormatDay(start), End: habits.FormatDay(end), SuccessRate: rate}
	return render(cmd, view,
		[]string{"HABIT", "START", "END", "SUCCESS RATE"},
		[][]string{{view.HabitTitle, view.Start, view.End, fmt.Sprintf("%.2f%%", view.SuccessRate)}})
}

// ReportCmd prints the progress report of a habit. The table format
// prints the report text.
func (commandHandler *CommandHandler) ReportCmd(cmd *cobra.Command, args []string) error {
	user, err := commandHandler.authenticate(cmd)
	if err != nil {
		return err
	}
	start, err := dayFlag(cmd, "start", true)
	if err != nil {
		return err
	}
	end, err := dayFlag(cmd, "end", true)
	if err != nil {
		return err
	}
	asOf, err := dayFlag(cmd, "as-of", false)
	if err != nil {
		return err
	}
	habit, err := commandHandler.habit(cmd.Context(), user, args[0])
	if err != nil {
		return err
	}

	report, err := commandHandler.services.Statistics.ProgressReport(cmd.Context(), habit, start, end, asOf)
	if err != nil {
		return err
	}

	format, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("invalid output flag: %w", err)
	}
	if format == OutputTable || format == "" {
		fmt.Fprintln(cmd.OutOrStdout(), report.String())
		return nil
	}
	return write(cmd.OutOrStdout(), format, newReportView(report), nil, nil)
}

// InitStatsCommands registers the stats command group
func InitStatsCommands(rootCmd *cobra.Command, handler *CommandHandler) {
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Habit statistics",
	}

	var streakCmd = &cobra.Command{
		Use:   "streak <title>",
		Short: "Show the current streak",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.StreakCmd,
	}
	streakCmd.Flags().StringP("as-of", "", "", "Day as yyyy-mm-dd (default today)")
	statsCmd.AddCommand(streakCmd)

	var successCmd = &cobra.Command{
		Use:   "success <title>",
		Short: "Show the success rate over a period",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.SuccessCmd,
	}
	successCmd.Flags().StringP("start", "", "", "First day as yyyy-mm-dd")
	successCmd.Flags().StringP("end", "", "", "Last day as yyyy-mm-dd")
	statsCmd.AddCommand(successCmd)

	var reportCmd = &cobra.Command{
		Use:   "report <title>",
		Short: "Print a progress report over a period",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.ReportCmd,
	}
	reportCmd.Flags().StringP("start", "", "", "First day as yyyy-mm-dd")
	reportCmd.Flags().StringP("end", "", "", "Last day as yyyy-mm-dd")
	reportCmd.Flags().StringP("as-of", "", "", "Day the streak is computed for (default today)")
	statsCmd.AddCommand(reportCmd)

	rootCmd.AddCommand(statsCmd)
}
