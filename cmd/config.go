package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Chittaranjans/Recruiter-board/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(titleStyle.Render("Configuration"))
		fmt.Printf("%s %s\n", labelStyle.Render("Config File:"), config.GetConfigPath())
		fmt.Printf("%s %s\n", labelStyle.Render("Mode:"), config.AppConfig.Mode)
		fmt.Printf("%s %s\n", labelStyle.Render("API URL:"), config.AppConfig.APIURL)

		if config.AppConfig.APIToken != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("API Token:"), "✓ Configured")
		} else {
			fmt.Printf("%s %s\n", labelStyle.Render("API Token:"), "✗ Not configured")
		}
		if config.AppConfig.Username != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("Username:"), config.AppConfig.Username)
		} else {
			fmt.Printf("%s %s\n", labelStyle.Render("Username:"), "✗ Not set")
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long:  "Set a configuration value. Keys: mode (local or remote), api_url, api_token, username",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		switch key {
		case "mode", "api_url", "api_token", "username":
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if key == "mode" && value != "local" && value != "remote" {
			return fmt.Errorf("mode must be local or remote")
		}

		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Printf("✓ Set %s\n", key)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
