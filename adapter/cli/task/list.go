package task

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/lifeflow/adapter/cli"
	"github.com/felixgeelhaar/lifeflow/internal/productivity/application/queries"
	"github.com/spf13/cobra"
)

var showAll bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks. Pending tasks only by default.

Examples:
  lifeflow task list          # Pending tasks
  lifeflow task list --all    # Including completed`,
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListTasksHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		ctx := cmd.Context()
		tasks, err := app.ListTasksHandler.Handle(ctx, queries.ListTasksQuery{
			PendingOnly: !showAll,
		})
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks. Add one with 'lifeflow task add'.")
			return nil
		}

		for _, t := range tasks {
			marker := "[ ]"
			if t.Completed {
				marker = "[x]"
			}
			line := fmt.Sprintf("%s %s  %s (%dm, %s)", marker, shortID(t.ID.String()), t.Title, t.EstimateMinutes, t.Priority)
			if t.Deadline != nil {
				line += fmt.Sprintf(" due %s", t.Deadline.Format("2006-01-02"))
				if !t.Completed && t.Deadline.Before(time.Now()) {
					line += " (overdue)"
				}
			}
			fmt.Println(line)
		}
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
	listCmd.Flags().BoolVarP(&showAll, "all", "a", false, "include completed tasks")
}
