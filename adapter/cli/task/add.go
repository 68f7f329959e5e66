package task

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/lifeflow/adapter/cli"
	"github.com/felixgeelhaar/lifeflow/internal/productivity/application/commands"
	"github.com/spf13/cobra"
)

var (
	priority    string
	estimate    int
	description string
	deadline    string
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new task",
	Long: `Add a new task with a title and optional properties.

Examples:
  lifeflow task add "Finish project report"
  lifeflow task add "Review PR" -p high -e 30
  lifeflow task add "Write docs" --priority medium --estimate 60 --due 2026-09-01`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.CreateTaskHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		title := args[0]

		createCmd := commands.CreateTaskCommand{
			Title:           title,
			Description:     description,
			Priority:        priority,
			EstimateMinutes: estimate,
		}

		if deadline != "" {
			parsed, err := time.Parse("2006-01-02", deadline)
			if err != nil {
				return fmt.Errorf("invalid due date format (use YYYY-MM-DD): %w", err)
			}
			createCmd.Deadline = &parsed
		}

		ctx := cmd.Context()
		result, err := app.CreateTaskHandler.Handle(ctx, createCmd)
		if err != nil {
			return fmt.Errorf("failed to add task: %w", err)
		}

		fmt.Printf("Task added: %s\n", result.TaskID)
		fmt.Printf("  title: %s\n", title)
		if priority != "" {
			fmt.Printf("  priority: %s\n", priority)
		}
		if estimate > 0 {
			fmt.Printf("  estimate: %d minutes\n", estimate)
		}

		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&priority, "priority", "p", "", "task priority (low, medium, high)")
	addCmd.Flags().IntVarP(&estimate, "estimate", "e", 30, "estimated duration in minutes")
	addCmd.Flags().StringVar(&description, "description", "", "task description")
	addCmd.Flags().StringVar(&deadline, "due", "", "due date (YYYY-MM-DD)")
}
