package settings

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/lifeflow/adapter/cli"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.SettingsService == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		prefs, err := app.SettingsService.Snapshot(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		fmt.Printf("  wake time:      %s\n", prefs.UsualWakeTime)
		fmt.Printf("  bed time:       %s\n", prefs.UsualBedTime)
		fmt.Printf("  max focus:      %d minutes\n", prefs.MaxFocusMinutes)
		fmt.Printf("  break:          %d minutes\n", prefs.BreakMinutes)
		if prefs.PersonalNotes != "" {
			fmt.Printf("  notes:          %s\n", prefs.PersonalNotes)
		}
		credential := "not set"
		if prefs.HasCredential() {
			credential = "configured"
		}
		fmt.Printf("  gemini api key: %s\n", credential)
		return nil
	},
}
