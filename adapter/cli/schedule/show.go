package schedule

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/lifeflow/adapter/cli"
	scheduleQueries "github.com/felixgeelhaar/lifeflow/internal/scheduling/application/queries"
)

var fast bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the day plan",
	Long: `Show the stored plan for the date.

With --fast and a Redis mirror configured, the mirrored copy is printed
immediately and corrected afterwards if the durable store disagrees.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.GetScheduleHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		date, err := targetDate()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		if fast && app.MirroredSchedules != nil {
			provisional, err := app.MirroredSchedules.LoadProvisional(ctx, date)
			if err != nil {
				return fmt.Errorf("failed to load schedule: %w", err)
			}
			if provisional.Schedule != nil {
				printSchedule(scheduleQueries.ToView(provisional.Schedule))
			}
			settled := <-provisional.Settled
			switch {
			case settled == nil && provisional.Schedule != nil:
				fmt.Println("\n(The stored plan no longer exists; the output above was stale.)")
			case settled != nil && (provisional.Schedule == nil || settled.UpdatedAt() != provisional.Schedule.UpdatedAt()):
				fmt.Println("\nUpdated plan:")
				printSchedule(scheduleQueries.ToView(settled))
			case settled == nil:
				fmt.Println("No schedule for that date.")
			}
			return nil
		}

		view, err := app.GetScheduleHandler.Handle(ctx, scheduleQueries.GetScheduleQuery{Date: date})
		if err != nil {
			return fmt.Errorf("failed to load schedule: %w", err)
		}
		if view == nil {
			fmt.Println("No schedule for that date. Build one with 'lifeflow schedule plan'.")
			return nil
		}
		printSchedule(view)
		return nil
	},
}

func printSchedule(view *scheduleQueries.DayScheduleView) {
	status := "draft"
	if view.Confirmed {
		status = "confirmed"
	}
	fmt.Printf("Schedule for %s (%s):\n\n", view.Date, status)
	if view.Content != "" {
		fmt.Println(view.Content)
	}
	printBlocks(view.Blocks)
	if view.Notes != "" {
		fmt.Printf("\nNotes: %s\n", view.Notes)
	}
}

func init() {
	showCmd.Flags().BoolVar(&fast, "fast", false, "answer from the mirror first")
}
