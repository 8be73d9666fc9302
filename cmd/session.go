package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Chittaranjans/Recruiter-board/internal/auth"
	"github.com/Chittaranjans/Recruiter-board/internal/backend/httpapi"
	"github.com/Chittaranjans/Recruiter-board/internal/backend/sqlitestore"
	"github.com/Chittaranjans/Recruiter-board/internal/config"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))
)

var loginRole string
var loginEmail string

var loginCmd = &cobra.Command{
	Use:   "login [username]",
	Short: "Log in to the hiring platform",
	Long: `Log in as a platform user. In local mode this registers the account on
first use; in remote mode it exchanges your password for an API token.
Recruiter and interviewer accounts need admin approval before they can act.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}

		reader := bufio.NewReader(os.Stdin)
		username := ""
		if len(args) > 0 {
			username = args[0]
		} else {
			fmt.Print(labelStyle.Render("Username: "))
			username, _ = reader.ReadString('\n')
			username = strings.TrimSpace(username)
		}
		if username == "" {
			return fmt.Errorf("username is required")
		}

		if application.Config.Mode == "remote" {
			fmt.Print(labelStyle.Render("Password: "))
			password, _ := reader.ReadString('\n')
			password = strings.TrimSpace(password)

			client := httpapi.New(application.Config.APIURL, "")
			token, err := client.Login(cmd.Context(), username, password)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}
			if err := config.Set("api_token", token); err != nil {
				return err
			}
			if err := config.Set("username", username); err != nil {
				return err
			}
			fmt.Println(titleStyle.Render("✓ Logged in as " + username))
			return nil
		}

		// Local mode: register-or-select against the local store.
		store, ok := application.Backend.(*sqlitestore.Store)
		if !ok {
			return fmt.Errorf("local login requires the local database backend")
		}
		if auth.ParseRole(loginRole) == auth.RoleUnknown {
			return fmt.Errorf("unknown role %q (expected admin, recruiter, interviewer or candidate)", loginRole)
		}
		user, err := store.EnsureUser(cmd.Context(), username, loginEmail, loginRole)
		if err != nil {
			return fmt.Errorf("failed to log in: %w", err)
		}
		if err := config.Set("username", username); err != nil {
			return err
		}

		if user.IsApproved {
			fmt.Println(titleStyle.Render("✓ Logged in as " + username))
			fmt.Printf("%s %s\n", labelStyle.Render("Role:"), valueStyle.Render(user.Role))
		} else {
			fmt.Println(titleStyle.Render("Account created"))
			fmt.Println(valueStyle.Render("Your account is pending admin approval. You can log in, but most actions are disabled until an admin approves you."))
		}
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out of the hiring platform",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Set("api_token", ""); err != nil {
			return err
		}
		if err := config.Set("username", ""); err != nil {
			return err
		}
		fmt.Println(titleStyle.Render("✓ Logged out"))
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current user and role",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}

		if application.User == nil {
			fmt.Println(valueStyle.Render("Not logged in. Run 'recruiterboard login' first."))
			return nil
		}

		user := application.User
		fmt.Println(titleStyle.Render("Current User"))
		fmt.Printf("%s %s\n", labelStyle.Render("Username:"), valueStyle.Render(user.Username))
		fmt.Printf("%s %s\n", labelStyle.Render("Role:"), valueStyle.Render(user.Role))
		if user.Email != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("Email:"), valueStyle.Render(user.Email))
		}
		if user.CandidateID != 0 {
			fmt.Printf("%s %d\n", labelStyle.Render("Candidate Record:"), user.CandidateID)
		}
		if application.LoggedIn() {
			fmt.Printf("%s %s\n", labelStyle.Render("Status:"), "✓ Active")
		} else {
			fmt.Printf("%s %s\n", labelStyle.Render("Status:"), "✗ Pending approval")
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginRole, "role", "recruiter", "Role for a new local account (admin, recruiter, interviewer, candidate)")
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Email for a new local account")
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
