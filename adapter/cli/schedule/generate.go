package schedule

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/lifeflow/adapter/cli"
	"github.com/felixgeelhaar/lifeflow/internal/scheduling/domain"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a day plan with the assistant",
	Long: `Ask the generative assistant for a day plan built from your pending
tasks, sleep rhythm, and personal notes. Requires a Gemini API key
(set it with 'lifeflow settings set --api-key ...').

Examples:
  lifeflow schedule generate
  lifeflow schedule generate --date 2026-09-01`,
	Aliases: []string{"gen"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Negotiator == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		date, err := targetDate()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		prefs, err := app.SettingsService.Snapshot(ctx)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		tasks, err := app.PendingTasks.PendingTasks(ctx)
		if err != nil {
			return fmt.Errorf("failed to load pending tasks: %w", err)
		}

		schedule, err := app.Negotiator.Generate(ctx, date, tasks, prefs)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrNoCredential):
				return fmt.Errorf("no Gemini API key configured; set one with 'lifeflow settings set --api-key ...' or use 'lifeflow schedule plan'")
			case errors.Is(err, domain.ErrNoPendingTasks):
				return fmt.Errorf("no pending tasks; add some with 'lifeflow task add' first")
			}
			return fmt.Errorf("failed to generate schedule: %w", err)
		}

		fmt.Printf("Schedule for %s:\n\n%s\n", schedule.DateKey(), schedule.Content())
		fmt.Println("\nRefine it with 'lifeflow schedule revise', or accept it with 'lifeflow schedule confirm'.")
		return nil
	},
}
