package habit

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/lifeflow/adapter/cli"
	"github.com/felixgeelhaar/lifeflow/internal/habits/application/commands"
)

var icon string

var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new habit",
	Long: `Create a habit to track daily.

Examples:
  lifeflow habit create "Morning run"
  lifeflow habit create "Read 20 pages" --icon 📚`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.HabitHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		habit, err := app.HabitHandler.Create(cmd.Context(), commands.CreateHabitCommand{
			Name: args[0],
			Icon: icon,
		})
		if err != nil {
			return fmt.Errorf("failed to create habit: %w", err)
		}

		fmt.Printf("Habit created: %s (%s)\n", habit.Name, shortID(habit.ID().String()))
		return nil
	},
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	createCmd.Flags().StringVar(&icon, "icon", "", "display icon")
}
