package settings

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/lifeflow/adapter/cli"
)

var (
	wakeTime     string
	bedTime      string
	maxFocus     int
	breakMinutes int
	notes        string
	apiKey       string
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Change preferences",
	Long: `Change preferences. Only the provided flags change.

Examples:
  lifeflow settings set --wake 07:00 --bed 22:30
  lifeflow settings set --max-focus 50 --break 10
  lifeflow settings set --api-key YOUR_GEMINI_KEY`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.SettingsService == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		ctx := cmd.Context()
		prefs, err := app.SettingsService.Snapshot(ctx)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		if cmd.Flags().Changed("wake") {
			prefs.UsualWakeTime = wakeTime
		}
		if cmd.Flags().Changed("bed") {
			prefs.UsualBedTime = bedTime
		}
		if cmd.Flags().Changed("max-focus") {
			prefs.MaxFocusMinutes = maxFocus
		}
		if cmd.Flags().Changed("break") {
			prefs.BreakMinutes = breakMinutes
		}
		if cmd.Flags().Changed("notes") {
			prefs.PersonalNotes = notes
		}
		if cmd.Flags().Changed("api-key") {
			prefs.GeminiAPIKey = apiKey
		}

		if err := app.SettingsService.Update(ctx, prefs); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}

		fmt.Println("Settings saved.")
		return nil
	},
}

func init() {
	setCmd.Flags().StringVar(&wakeTime, "wake", "", "usual wake time (HH:mm)")
	setCmd.Flags().StringVar(&bedTime, "bed", "", "usual bed time (HH:mm)")
	setCmd.Flags().IntVar(&maxFocus, "max-focus", 0, "max focus block in minutes")
	setCmd.Flags().IntVar(&breakMinutes, "break", 0, "break between focus blocks in minutes")
	setCmd.Flags().StringVar(&notes, "notes", "", "personal notes included in generation prompts")
	setCmd.Flags().StringVar(&apiKey, "api-key", "", "Gemini API key (empty to clear)")
}
