package habit

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/lifeflow/adapter/cli"
	"github.com/felixgeelhaar/lifeflow/internal/habits/application/commands"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [id]",
	Short:   "Delete a habit",
	Long:    `Delete a habit. Its past logs are kept for history.`,
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.HabitHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		ctx := cmd.Context()
		habitID, err := resolveHabitID(ctx, app, args[0])
		if err != nil {
			return err
		}

		if err := app.HabitHandler.Delete(ctx, commands.DeleteHabitCommand{HabitID: habitID}); err != nil {
			return fmt.Errorf("failed to delete habit: %w", err)
		}

		fmt.Println("Habit deleted.")
		return nil
	},
}
