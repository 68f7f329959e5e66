package sleep

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/lifeflow/adapter/cli"
	"github.com/felixgeelhaar/lifeflow/internal/wellness/application/commands"
)

var (
	logDate  string
	bedTime  string
	wakeTime string
	quality  int
	notes    string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a night's sleep",
	Long: `Log a night's sleep against its wake-up date. A bed time after
midnight still belongs to that wake-up date; the overnight span is handled.
Logging the same date twice updates the record.

Examples:
  lifeflow sleep log --bed 23:30 --wake 07:15
  lifeflow sleep log --date 2026-08-27 --bed 00:45 --wake 08:00 -q 3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.LogSleepHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		date := time.Now()
		if logDate != "" {
			parsed, err := time.ParseInLocation("2006-01-02", logDate, time.Local)
			if err != nil {
				return fmt.Errorf("invalid date format (use YYYY-MM-DD): %w", err)
			}
			date = parsed
		}

		result, err := app.LogSleepHandler.Handle(cmd.Context(), commands.LogSleepCommand{
			Date:     date,
			BedTime:  bedTime,
			WakeTime: wakeTime,
			Quality:  quality,
			Notes:    notes,
		})
		if err != nil {
			return fmt.Errorf("failed to log sleep: %w", err)
		}

		record := result.Record
		fmt.Printf("Sleep logged for %s", record.DateKey())
		if minutes := record.DurationMinutes(); minutes > 0 {
			fmt.Printf(": %dh%02dm", minutes/60, minutes%60)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	logCmd.Flags().StringVar(&logDate, "date", "", "wake-up date (YYYY-MM-DD, default today)")
	logCmd.Flags().StringVar(&bedTime, "bed", "", "bed time (HH:mm)")
	logCmd.Flags().StringVar(&wakeTime, "wake", "", "wake time (HH:mm)")
	logCmd.Flags().IntVarP(&quality, "quality", "q", 0, "sleep quality (1-5)")
	logCmd.Flags().StringVar(&notes, "notes", "", "free-text notes")
}
