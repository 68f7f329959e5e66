package schedule

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/lifeflow/adapter/cli"
	"github.com/felixgeelhaar/lifeflow/internal/scheduling/domain"
)

var reviseCmd = &cobra.Command{
	Use:   "revise [message]",
	Short: "Negotiate changes to the day plan",
	Long: `Send a revision request to the assistant. When the reply looks like a
schedule it replaces the stored plan and resets its confirmation; a
conversational reply leaves the plan untouched.

Examples:
  lifeflow schedule revise "move the report after lunch"
  lifeflow schedule revise "give me a longer break in the afternoon"`,
	Args: cobra.MinimumNArgs(1),
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

		result, err := app.Negotiator.Revise(ctx, date, strings.Join(args, " "), prefs)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrNoCredential):
				return fmt.Errorf("no Gemini API key configured; set one with 'lifeflow settings set --api-key ...'")
			case errors.Is(err, domain.ErrScheduleConfirmed):
				return fmt.Errorf("the schedule is confirmed; run 'lifeflow schedule clear' to renegotiate")
			}
			return fmt.Errorf("failed to revise schedule: %w", err)
		}

		fmt.Println(result.Reply)
		if result.ScheduleUpdated {
			fmt.Println("\n(Schedule updated.)")
		}
		return nil
	},
}
