package sleep

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/lifeflow/adapter/cli"
	"github.com/felixgeelhaar/lifeflow/internal/wellness/application/queries"
)

var statsDays int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent sleep statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.SleepStatsHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		view, err := app.SleepStatsHandler.Handle(cmd.Context(), queries.SleepStatsQuery{
			EndDate: time.Now(),
			Days:    statsDays,
		})
		if err != nil {
			return fmt.Errorf("failed to compute sleep stats: %w", err)
		}

		if view.RecordedNights == 0 {
			fmt.Println("No sleep logged yet. Start with 'lifeflow sleep log'.")
			return nil
		}

		for _, night := range view.Nights {
			line := fmt.Sprintf("  %s", night.Date)
			if night.BedTime != "" && night.WakeTime != "" {
				line += fmt.Sprintf("  %s - %s (%dh%02dm)",
					night.BedTime, night.WakeTime,
					night.DurationMinutes/60, night.DurationMinutes%60)
			}
			if night.Quality > 0 {
				line += fmt.Sprintf("  quality %d/5", night.Quality)
			}
			fmt.Println(line)
		}

		fmt.Printf("\n%d nights recorded", view.RecordedNights)
		if view.AverageMinutes > 0 {
			fmt.Printf(", average %dh%02dm", view.AverageMinutes/60, view.AverageMinutes%60)
		}
		if view.AverageQuality > 0 {
			fmt.Printf(", average quality %.1f/5", view.AverageQuality)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsDays, "days", 7, "window length in days")
}
