package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/niyatanya/habit-tracker/internal/domain/users"
)

// ListUsersCmd lists all accounts
func (commandHandler *CommandHandler) ListUsersCmd(cmd *cobra.Command, _ []string) error {
	if _, err := commandHandler.authenticateAdmin(cmd); err != nil {
		return err
	}

	query := users.NewUserQuery()
	var err error
	if query.Limit, err = cmd.Flags().GetInt("limit"); err != nil {
		return fmt.Errorf("invalid limit flag: %w", err)
	}
	if query.Offset, err = cmd.Flags().GetInt("offset"); err != nil {
		return fmt.Errorf("invalid offset flag: %w", err)
	}

	list, err := commandHandler.services.Administration.List(cmd.Context(), query)
	if err != nil {
		return err
	}
	view, header, rows := userRows(list)
	return render(cmd, view, header, rows)
}

// ListUserHabitsCmd lists the habits of the account named by email
func (commandHandler *CommandHandler) ListUserHabitsCmd(cmd *cobra.Command, args []string) error {
	if _, err := commandHandler.authenticateAdmin(cmd); err != nil {
		return err
	}

	user, err := commandHandler.services.Administration.GetByEmail(cmd.Context(), args[0])
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

// BlockUserCmd blocks an account
func (commandHandler *CommandHandler) BlockUserCmd(cmd *cobra.Command, args []string) error {
	if _, err := commandHandler.authenticateAdmin(cmd); err != nil {
		return err
	}

	user, err := commandHandler.services.Administration.Block(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Blocked user %s\n", user.Email)
	return nil
}

// UnblockUserCmd lifts the block of an account
func (commandHandler *CommandHandler) UnblockUserCmd(cmd *cobra.Command, args []string) error {
	if _, err := commandHandler.authenticateAdmin(cmd); err != nil {
		return err
	}

	user, err := commandHandler.services.Administration.Unblock(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Unblocked user %s\n", user.Email)
	return nil
}

// DeleteUserCmd removes an account with its habits and records
func (commandHandler *CommandHandler) DeleteUserCmd(cmd *cobra.Command, args []string) error {
	if _, err := commandHandler.authenticateAdmin(cmd); err != nil {
		return err
	}

	if err := commandHandler.services.Administration.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted user %s\n", args[0])
	return nil
}

// InitAdminCommands registers the admin command group
func InitAdminCommands(rootCmd *cobra.Command, handler *CommandHandler) {
	adminCmd := &cobra.Command{
		Use:   "admin",
		Short: "Administer accounts (ADMIN role only)",
	}

	var usersCmd = &cobra.Command{
		Use:   "users",
		Short: "List all accounts",
		Args:  cobra.NoArgs,
		RunE:  handler.ListUsersCmd,
	}
	usersCmd.Flags().IntP("limit", "", 0, "Limit the number of results")
	usersCmd.Flags().IntP("offset", "", 0, "Offset the results")
	adminCmd.AddCommand(usersCmd)

	adminCmd.AddCommand(&cobra.Command{
		Use:   "habits <email>",
		Short: "List the habits of an account",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.ListUserHabitsCmd,
	})
	adminCmd.AddCommand(&cobra.Command{
		Use:   "block <email>",
		Short: "Block an account",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.BlockUserCmd,
	})
	adminCmd.AddCommand(&cobra.Command{
		Use:   "unblock <email>",
		Short: "Unblock an account",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.UnblockUserCmd,
	})
	adminCmd.AddCommand(&cobra.Command{
		Use:   "delete <email>",
		Short: "Delete an account with its habits and records",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.DeleteUserCmd,
	})

	rootCmd.AddCommand(adminCmd)
}
