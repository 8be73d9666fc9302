package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Chittaranjans/Recruiter-board/internal/auth"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage platform accounts",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts and their approval state",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := application.RequireCapability(auth.CapViewUsers); err != nil {
			return err
		}

		users, err := application.Backend.GetUsers(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch users: %w", err)
		}

		fmt.Println(titleStyle.Render("Accounts"))
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"ID", "Username", "Role", "Approved"})
		table.SetBorder(false)
		for _, u := range users {
			approved := "✗ pending"
			if u.IsApproved {
				approved = "✓"
			}
			table.Append([]string{
				strconv.Itoa(u.ID),
				u.Username,
				u.Role,
				approved,
			})
		}
		table.Render()
		return nil
	},
}

var usersApproveCmd = &cobra.Command{
	Use:   "approve [id]",
	Short: "Approve a pending account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := application.RequireCapability(auth.CapApproveUsers); err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid user ID: %s", args[0])
		}

		if err := application.Backend.ApproveUser(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to approve user: %w", err)
		}
		fmt.Println(titleStyle.Render("✓ Account approved"))
		return nil
	},
}

func init() {
	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersApproveCmd)
	rootCmd.AddCommand(usersCmd)
}
