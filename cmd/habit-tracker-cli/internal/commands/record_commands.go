package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/niyatanya/habit-tracker/internal/domain/habits"
)

// TrackCmd records whether a habit was done on a day, today by default
func (commandHandler *CommandHandler) TrackCmd(cmd *cobra.Command, args []string) error {
	user, err := commandHandler.authenticate(cmd)
	if err != nil {
		return err
	}
	date, err := dayFlag(cmd, "date", false)
	if err != nil {
		return err
	}
	missed, err := cmd.Flags().GetBool("missed")
	if err != nil {
		return fmt.Errorf("invalid missed flag: %w", err)
	}

	habit, err := commandHandler.habit(cmd.Context(), user, args[0])
	if err != nil {
		return err
	}
	record, err := commandHandler.services.Records.Track(cmd.Context(), habit, date, !missed)
	if err != nil {
		return err
	}
	view, header, rows := recordRows([]*habits.HabitRecord{record})
	return render(cmd, view, header, rows)
}

// ListRecordsCmd lists the records of a habit ordered by date
func (commandHandler *CommandHandler) ListRecordsCmd(cmd *cobra.Command, args []string) error {
	user, err := commandHandler.authenticate(cmd)
	if err != nil {
		return err
	}
	habit, err := commandHandler.habit(cmd.Context(), user, args[0])
	if err != nil {
		return err
	}

	byDate, err := commandHandler.services.Records.List(cmd.Context(), habit)
	if err != nil {
		return err
	}
	list := make([]*habits.HabitRecord, 0, len(byDate))
	for _, record := range byDate {
		list = append(list, record)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date.Before(list[j].Date) })

	view, header, rows := recordRows(list)
	return render(cmd, view, header, rows)
}

// EditRecordCmd changes the completion flag of a recorded day
func (commandHandler *CommandHandler) EditRecordCmd(cmd *cobra.Command, args []string) error {
	user, err := commandHandler.authenticate(cmd)
	if err != nil {
		return err
	}
	date, err := dayFlag(cmd, "date", true)
	if err != nil {
		return err
	}
	completed, err := cmd.Flags().GetBool("completed")
	if err != nil {
		return fmt.Errorf("invalid completed flag: %w", err)
	}

	habit, err := commandHandler.habit(cmd.Context(), user, args[0])
	if err != nil {
		return err
	}
	record, err := commandHandler.services.Records.Edit(cmd.Context(), habit, date, completed)
	if err != nil {
		return err
	}
	view, header, rows := recordRows([]*habits.HabitRecord{record})
	return render(cmd, view, header, rows)
}

// DeleteRecordCmd removes the record of a day
func (commandHandler *CommandHandler) DeleteRecordCmd(cmd *cobra.Command, args []string) error {
	user, err := commandHandler.authenticate(cmd)
	if err != nil {
		return err
	}
	date, err := dayFlag(cmd, "date", true)
	if err != nil {
		return err
	}

	habit, err := commandHandler.habit(cmd.Context(), user, args[0])
	if err != nil {
		return err
	}
	if err := commandHandler.services.Records.Delete(cmd.Context(), habit, date); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted record of %s for %s\n", habits.FormatDay(date), habit.Title)
	return nil
}

// InitRecordCommands registers the record command group
func InitRecordCommands(rootCmd *cobra.Command, handler *CommandHandler) {
	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "Track habit completion per day",
	}

	var trackCmd = &cobra.Command{
		Use:   "track <title>",
		Short: "Record a day of a habit",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.TrackCmd,
	}
	trackCmd.Flags().StringP("date", "", "", "Day as yyyy-mm-dd (default today)")
	trackCmd.Flags().BoolP("missed", "", false, "Record the day as not done")
	recordCmd.AddCommand(trackCmd)

	recordCmd.AddCommand(&cobra.Command{
		Use:   "list <title>",
		Short: "List the records of a habit",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.ListRecordsCmd,
	})

	var editCmd = &cobra.Command{
		Use:   "edit <title>",
		Short: "Change whether a recorded day was done",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.EditRecordCmd,
	}
	editCmd.Flags().StringP("date", "", "", "Day as yyyy-mm-dd")
	editCmd.Flags().BoolP("completed", "", true, "Whether the habit was done")
	recordCmd.AddCommand(editCmd)

	var deleteCmd = &cobra.Command{
		Use:   "delete <title>",
		Short: "Delete the record of a day",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.DeleteRecordCmd,
	}
	deleteCmd.Flags().StringP("date", "", "", "Day as yyyy-mm-dd")
	recordCmd.AddCommand(deleteCmd)

	rootCmd.AddCommand(recordCmd)
}
