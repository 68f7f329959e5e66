package schedule

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/lifeflow/adapter/cli"
)

var outputPath string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the day plan as an iCalendar file",
	Long: `Write the date's plan blocks as an .ics file for import into any
calendar app. Only structured blocks export; a purely narrative plan from
the assistant has nothing to place on a calendar.

Examples:
  lifeflow schedule export
  lifeflow schedule export --date 2026-09-01 -o plan.ics`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Schedules == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		date, err := targetDate()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		schedule, err := app.Schedules.Load(ctx, date)
		if err != nil {
			return fmt.Errorf("failed to load schedule: %w", err)
		}
		if schedule == nil {
			return fmt.Errorf("no schedule for that date")
		}
		if len(schedule.Blocks()) == 0 {
			return fmt.Errorf("the plan has no structured blocks to export; build one with 'lifeflow schedule plan'")
		}

		data, err := app.Exporter.Export(schedule)
		if err != nil {
			return fmt.Errorf("failed to export schedule: %w", err)
		}

		path := outputPath
		if path == "" {
			path = fmt.Sprintf("lifeflow-%s.ics", schedule.DateKey())
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		fmt.Printf("Exported %d events to %s\n", len(schedule.Blocks()), path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file path (default lifeflow-<date>.ics)")
}
