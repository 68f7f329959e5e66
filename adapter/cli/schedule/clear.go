package schedule

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/lifeflow/adapter/cli"
	"github.com/felixgeelhaar/lifeflow/internal/scheduling/domain"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Discard the day plan",
	Long:  `Delete the stored plan for the date and forget the negotiation so far.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Negotiator == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		date, err := targetDate()
		if err != nil {
			return err
		}

		if err := app.Negotiator.Clear(cmd.Context(), date); err != nil {
			if errors.Is(err, domain.ErrScheduleNotFound) {
				fmt.Println("Nothing to clear.")
				return nil
			}
			return fmt.Errorf("failed to clear schedule: %w", err)
		}

		fmt.Println("Schedule cleared.")
		return nil
	},
}
