package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Chittaranjans/Recruiter-board/internal/app"
	"github.com/Chittaranjans/Recruiter-board/internal/backend"
	"github.com/Chittaranjans/Recruiter-board/internal/backend/httpapi"
	"github.com/Chittaranjans/Recruiter-board/internal/backend/sqlitestore"
	"github.com/Chittaranjans/Recruiter-board/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "recruiterboard",
	Short: "Hiring pipeline CLI",
	Long: `Recruiter Board tracks candidates through a hiring pipeline: job postings,
candidates, interviews, and interview feedback, gated by role-based permissions.
It works against a local database or a remote hiring API.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		be, err := openBackend(config.AppConfig)
		if err != nil {
			return fmt.Errorf("failed to open backend: %w", err)
		}

		application := app.New(cmd.Context(), config.AppConfig, be)
		activeApp = application
		cmd.SetContext(app.SetAppInContext(cmd.Context(), application))
		return nil
	},
}

// openBackend selects the record store for this invocation: local sqlite
// by default, the remote hiring API when configured.
func openBackend(cfg *config.Config) (backend.Backend, error) {
	switch cfg.Mode {
	case "remote":
		return httpapi.New(cfg.APIURL, cfg.APIToken), nil
	case "", "local":
		path, err := app.DatabasePath()
		if err != nil {
			return nil, err
		}
		return sqlitestore.Open(path, cfg.Username)
	default:
		return nil, fmt.Errorf("unknown mode %q (expected local or remote)", cfg.Mode)
	}
}

// getApp pulls the container out of the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	application := app.GetAppFromContext(cmd.Context())
	if application == nil {
		return nil, fmt.Errorf("application not initialized")
	}
	return application, nil
}

// Execute runs the root command
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rootCmd.SetContext(ctx)

	err := rootCmd.Execute()

	// Cleanup: close app resources
	if activeApp != nil {
		activeApp.Close()
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// activeApp holds the container built in PersistentPreRunE so Execute can
// close it after the command finishes.
var activeApp *app.App
