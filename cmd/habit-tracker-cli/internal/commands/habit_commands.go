package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/niyatanya/habit-tracker/internal/domain/habits"
)

// CreateHabitCmd adds a habit named by the first argument
func (commandHandler *CommandHandler) CreateHabitCmd(cmd *cobra.Command, args []string) error {
	user, err := commandHandler.authenticate(cmd)
	if err != nil {
		return err
	}

	description, err := cmd.Flags().GetString("description")
	if err != nil {
		return fmt.Errorf("invalid description flag: %w", err)
	}
	value, err := cmd.Flags().GetString("frequency")
	if err != nil {
		return fmt.Errorf("invalid frequency flag: %w", err)
	}
	frequency, err := habits.ParseFrequency(value)
	if err != nil {
		return err
	}

	habit, err := commandHandler.services.Habits.Create(cmd.Context(), user.ID, args[0], description, frequency)
	if err != nil {
		return err
	}
	view, header, rows := habitRows([]*habits.Habit{habit})
	return render(cmd, view, header, rows)
}

// ListHabitsCmd lists the habits of the signed-in user ordered by title
func (commandHandler *CommandHandler) ListHabitsCmd(cmd *cobra.Command, _ []string) error {
	user, err := commandHandler.authenticate(cmd)
	if err != nil {
		return err
	}

	list, err := commandHandler.services.Habits.List(cmd.Context(), user.ID)
	if err != nil {
		return err
	}
	view, header, rows := habitRows(list)
	return render(cmd, view, header, rows)
}

// ShowHabitCmd shows one habit
func (commandHandler *CommandHandler) ShowHabitCmd(cmd *cobra.Command, args []string) error {
	user, err := commandHandler.authenticate(cmd)
	if err != nil {
		return err
	}

	habit, err := commandHandler.habit(cmd.Context(), user, args[0])
	if err != nil {
		return err
	}
	view, header, rows := habitRows([]*habits.Habit{habit})
	return render(cmd, view, header, rows)
}

// EditHabitCmd changes title, description or frequency. Flags left unset
// keep their current value.
func (commandHandler *CommandHandler) EditHabitCmd(cmd *cobra.Command, args []string) error {
	user, err := commandHandler.authenticate(cmd)
	if err != nil {
		return err
	}

	habit, err := commandHandler.habit(cmd.Context(), user, args[0])
	if err != nil {
		return err
	}

	title, description, frequency := habit.Title, habit.Description, habit.Frequency
	if cmd.Flags().Changed("title") {
		if title, err = cmd.Flags().GetString("title"); err != nil {
			return fmt.Errorf("invalid title flag: %w", err)
		}
	}
	if cmd.Flags().Changed("description") {
		if description, err = cmd.Flags().GetString("description"); err != nil {
			return fmt.Errorf("invalid description flag: %w", err)
		}
	}
	if cmd.Flags().Changed("frequency") {
		value, err := cmd.Flags().GetString("frequency")
		if err != nil {
			return fmt.Errorf("invalid frequency flag: %w", err)
		}
		if frequency, err = habits.ParseFrequency(value); err != nil {
			return err
		}
	}

	updated, err := commandHandler.services.Habits.Edit(cmd.Context(), user.ID, habit.Title, title, description, frequency)
	if err != nil {
		return err
	}
	view, header, rows := habitRows([]*habits.Habit{updated})
	return render(cmd, view, header, rows)
}

// DeleteHabitCmd removes a habit with its records
func (commandHandler *CommandHandler) DeleteHabitCmd(cmd *cobra.Command, args []string) error {
	user, err := commandHandler.authenticate(cmd)
	if err != nil {
		return err
	}

	if err := commandHandler.services.Habits.Delete(cmd.Context(), user.ID, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted habit %s\n", args[0])
	return nil
}

// InitHabitCommands registers the habit command group
func InitHabitCommands(rootCmd *cobra.Command, handler *CommandHandler) {
	habitCmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage your habits",
	}

	var createCmd = &cobra.Command{
		Use:   "create <title>",
		Short: "Create a habit",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.CreateHabitCmd,
	}
	createCmd.Flags().StringP("description", "d", "", "Habit description")
	createCmd.Flags().StringP("frequency", "f", string(habits.FrequencyDaily), "DAILY or WEEKLY")
	habitCmd.AddCommand(createCmd)

	habitCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List your habits",
		Args:  cobra.NoArgs,
		RunE:  handler.ListHabitsCmd,
	})

	habitCmd.AddCommand(&cobra.Command{
		Use:   "show <title>",
		Short: "Show a habit",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.ShowHabitCmd,
	})

	var editCmd = &cobra.Command{
		Use:   "edit <title>",
		Short: "Edit a habit",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.EditHabitCmd,
	}
	editCmd.Flags().StringP("title", "t", "", "New title")
	editCmd.Flags().StringP("description", "d", "", "New description")
	editCmd.Flags().StringP("frequency", "f", "", "New frequency, DAILY or WEEKLY")
	habitCmd.AddCommand(editCmd)

	habitCmd.AddCommand(&cobra.Command{
		Use:   "delete <title>",
		Short: "Delete a habit with all its records",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.DeleteHabitCmd,
	})

	rootCmd.AddCommand(habitCmd)
}
