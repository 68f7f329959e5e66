package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/lifeflow/internal/scheduling/domain"
)

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Talk to the assistant",
	Long: `Send a message to the assistant. With a Gemini API key configured the
message becomes a negotiation turn: ask for changes to today's schedule and
a schedule-shaped reply replaces the stored plan. Without a key a local
concierge answers from a small set of canned intents.

Examples:
  lifeflow chat "move deep work to the morning"
  lifeflow chat "I'm feeling tired today"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		message := strings.Join(args, " ")
		ctx := cmd.Context()

		prefs, err := app.SettingsService.Snapshot(ctx)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		if !prefs.HasCredential() || app.Negotiator == nil {
			fmt.Println(app.Concierge.Reply(message))
			return nil
		}

		result, err := app.Negotiator.Revise(ctx, time.Now(), message, prefs)
		if err != nil {
			if errors.Is(err, domain.ErrScheduleConfirmed) {
				return fmt.Errorf("today's schedule is confirmed; run 'lifeflow schedule clear' to renegotiate")
			}
			return fmt.Errorf("chat failed: %w", err)
		}

		fmt.Println(result.Reply)
		if result.ScheduleUpdated {
			fmt.Println("\n(Schedule updated.)")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
