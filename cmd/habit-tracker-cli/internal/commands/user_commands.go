package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/niyatanya/habit-tracker/internal/domain/users"
)

// RegisterCmd creates a USER account from --name, --email and --password
func (commandHandler *CommandHandler) RegisterCmd(cmd *cobra.Command, _ []string) error {
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return fmt.Errorf("invalid name flag: %w", err)
	}
	email, password, err := credentials(cmd)
	if err != nil {
		return err
	}

	user, err := commandHandler.services.Accounts.Register(cmd.Context(), name, email, password)
	if err != nil {
		return err
	}
	commandHandler.logger.Info("Registered user ", user.Email)

	value, header, rows := userRows([]*users.User{user})
	return render(cmd, value, header, rows)
}

// ProfileCmd shows the signed-in account
func (commandHandler *CommandHandler) ProfileCmd(cmd *cobra.Command, _ []string) error {
	user, err := commandHandler.authenticate(cmd)
	if err != nil {
		return err
	}
	value, header, rows := userRows([]*users.User{user})
	return render(cmd, value, header, rows)
}

// EditProfileCmd replaces name, email and password of the signed-in account.
// Flags left unset keep their current value.
func (commandHandler *CommandHandler) EditProfileCmd(cmd *cobra.Command, _ []string) error {
	user, err := commandHandler.authenticate(cmd)
	if err != nil {
		return err
	}

	name, email, password := user.Name, user.Email, ""
	if cmd.Flags().Changed("name") {
		if name, err = cmd.Flags().GetString("name"); err != nil {
			return fmt.Errorf("invalid name flag: %w", err)
		}
	}
	if cmd.Flags().Changed("new-email") {
		if email, err = cmd.Flags().GetString("new-email"); err != nil {
			return fmt.Errorf("invalid new-email flag: %w", err)
		}
	}
	if cmd.Flags().Changed("new-password") {
		if password, err = cmd.Flags().GetString("new-password"); err != nil {
			return fmt.Errorf("invalid new-password flag: %w", err)
		}
	}

	updated, err := commandHandler.services.Profiles.Edit(cmd.Context(), user.ID, name, email, password)
	if err != nil {
		return err
	}
	value, header, rows := userRows([]*users.User{updated})
	return render(cmd, value, header, rows)
}

// DeleteAccountCmd removes the signed-in account with all habits and records
func (commandHandler *CommandHandler) DeleteAccountCmd(cmd *cobra.Command, _ []string) error {
	confirmed, err := cmd.Flags().GetBool("yes")
	if err != nil {
		return fmt.Errorf("invalid yes flag: %w", err)
	}
	if !confirmed {
		return errors.New("refusing to delete the account without --yes")
	}

	user, err := commandHandler.authenticate(cmd)
	if err != nil {
		return err
	}
	if err := commandHandler.services.Profiles.Delete(cmd.Context(), user.ID); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted user %s\n", user.Email)
	return nil
}

// InitUserCommands registers the user command group
func InitUserCommands(rootCmd *cobra.Command, handler *CommandHandler) {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage your account",
	}

	var registerCmd = &cobra.Command{
		Use:   "register",
		Short: "Create an account with --email and --password",
		Args:  cobra.NoArgs,
		RunE:  handler.RegisterCmd,
	}
	registerCmd.Flags().StringP("name", "", "", "Display name")
	_ = registerCmd.MarkFlagRequired("name")
	userCmd.AddCommand(registerCmd)

	userCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		Args:  cobra.NoArgs,
		RunE:  handler.ProfileCmd,
	})

	var editCmd = &cobra.Command{
		Use:   "edit",
		Short: "Change name, email or password",
		Args:  cobra.NoArgs,
		RunE:  handler.EditProfileCmd,
	}
	editCmd.Flags().StringP("name", "", "", "New display name")
	editCmd.Flags().StringP("new-email", "", "", "New email")
	editCmd.Flags().StringP("new-password", "", "", "New password (at least 6 characters)")
	userCmd.AddCommand(editCmd)

	var deleteCmd = &cobra.Command{
		Use:   "delete",
		Short: "Delete your account with all habits and records",
		Args:  cobra.NoArgs,
		RunE:  handler.DeleteAccountCmd,
	}
	deleteCmd.Flags().BoolP("yes", "y", false, "Confirm deletion")
	userCmd.AddCommand(deleteCmd)

	rootCmd.AddCommand(userCmd)
}
