package schedule

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// Cmd is the schedule command group
var Cmd = &cobra.Command{
	Use:   "schedule",
	Short: "Plan and negotiate your day",
	Long: `Build a day plan from your pending tasks, locally or with the
generative assistant, then refine and confirm it.`,
}

// scheduleDate is the shared --date flag, defaulting to today.
var scheduleDate string

func init() {
	Cmd.PersistentFlags().StringVar(&scheduleDate, "date", "", "target date (YYYY-MM-DD, default today)")

	Cmd.AddCommand(planCmd)
	Cmd.AddCommand(generateCmd)
	Cmd.AddCommand(reviseCmd)
	Cmd.AddCommand(confirmCmd)
	Cmd.AddCommand(clearCmd)
	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(exportCmd)
}

// targetDate resolves the --date flag.
func targetDate() (time.Time, error) {
	if scheduleDate == "" {
		return time.Now(), nil
	}
	date, err := time.ParseInLocation("2006-01-02", scheduleDate, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format (use YYYY-MM-DD): %w", err)
	}
	return date, nil
}
