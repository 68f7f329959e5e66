package schedule

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/lifeflow/adapter/cli"
	"github.com/felixgeelhaar/lifeflow/internal/scheduling/domain"
)

var confirmCmd = &cobra.Command{
	Use:   "confirm",
	Short: "Accept the day plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Negotiator == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		date, err := targetDate()
		if err != nil {
			return err
		}

		if err := app.Negotiator.Confirm(cmd.Context(), date); err != nil {
			if errors.Is(err, domain.ErrScheduleNotFound) {
				return fmt.Errorf("no schedule for that date; build one with 'lifeflow schedule plan' or 'lifeflow schedule generate'")
			}
			return fmt.Errorf("failed to confirm schedule: %w", err)
		}

		fmt.Println("Schedule confirmed. Have a good day!")
		return nil
	},
}
