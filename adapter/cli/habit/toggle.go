package habit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/lifeflow/adapter/cli"
	"github.com/felixgeelhaar/lifeflow/internal/habits/application/commands"
	"github.com/felixgeelhaar/lifeflow/internal/habits/application/queries"
)

var toggleDate string

var toggleCmd = &cobra.Command{
	Use:   "toggle [id]",
	Short: "Check a habit off (or back on) for a date",
	Long: `Toggle a habit's completion. Accepts a full habit ID or a unique
prefix. Defaults to today.

Examples:
  lifeflow habit toggle 9c41aa02
  lifeflow habit toggle 9c41aa02 --date 2026-08-27`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.HabitHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		date := time.Now()
		if toggleDate != "" {
			parsed, err := time.ParseInLocation("2006-01-02", toggleDate, time.Local)
			if err != nil {
				return fmt.Errorf("invalid date format (use YYYY-MM-DD): %w", err)
			}
			date = parsed
		}

		ctx := cmd.Context()
		habitID, err := resolveHabitID(ctx, app, args[0])
		if err != nil {
			return err
		}

		result, err := app.HabitHandler.ToggleLog(ctx, commands.ToggleHabitLogCommand{
			HabitID: habitID,
			Date:    date,
		})
		if err != nil {
			return fmt.Errorf("failed to toggle habit: %w", err)
		}

		if result.Completed {
			fmt.Println("Nice! Habit checked off.")
		} else {
			fmt.Println("Habit unchecked.")
		}
		return nil
	},
}

// resolveHabitID accepts a full UUID or a unique prefix of one.
func resolveHabitID(ctx context.Context, app *cli.App, ref string) (uuid.UUID, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return id, nil
	}

	habits, err := app.ListHabitsHandler.Handle(ctx, queries.ListHabitsQuery{Date: time.Now()})
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to resolve habit id: %w", err)
	}

	var matches []uuid.UUID
	for _, h := range habits {
		if strings.HasPrefix(h.ID.String(), strings.ToLower(ref)) {
			matches = append(matches, h.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return uuid.Nil, fmt.Errorf("no habit matches %q", ref)
	default:
		return uuid.Nil, fmt.Errorf("habit id %q is ambiguous (%d matches)", ref, len(matches))
	}
}

func init() {
	toggleCmd.Flags().StringVar(&toggleDate, "date", "", "log date (YYYY-MM-DD, default today)")
}
