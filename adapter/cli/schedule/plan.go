package schedule

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/lifeflow/adapter/cli"
	"github.com/felixgeelhaar/lifeflow/internal/scheduling/application/commands"
	scheduleQueries "github.com/felixgeelhaar/lifeflow/internal/scheduling/application/queries"
	"github.com/felixgeelhaar/lifeflow/internal/scheduling/domain"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build a day plan locally",
	Long: `Build a day plan from your pending tasks without any network call.
Tasks are placed highest priority first around your usual wake time, with
breaks between focus blocks and lunch at noon.

Examples:
  lifeflow schedule plan
  lifeflow schedule plan --date 2026-09-01`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.PlanDayHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		date, err := targetDate()
		if err != nil {
			return err
		}

		result, err := app.PlanDayHandler.Handle(cmd.Context(), commands.PlanDayCommand{Date: date})
		if err != nil {
			if errors.Is(err, domain.ErrNoPendingTasks) {
				return fmt.Errorf("no pending tasks; add some with 'lifeflow task add' first")
			}
			return fmt.Errorf("failed to plan the day: %w", err)
		}

		fmt.Printf("Plan for %s:\n\n", result.Schedule.DateKey())
		printBlocks(scheduleQueries.ToView(result.Schedule).Blocks)
		return nil
	},
}

func printBlocks(blocks []scheduleQueries.BlockView) {
	for _, b := range blocks {
		fmt.Printf("  %s - %s  %s\n", b.Start, b.End, b.Title)
	}
}
