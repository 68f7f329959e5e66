package task

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/lifeflow/adapter/cli"
	"github.com/felixgeelhaar/lifeflow/internal/productivity/application/commands"
)

var (
	updateTitle       string
	updateDescription string
	updatePriority    string
	updateEstimate    int
	updateDue         string
	clearDue          bool
)

var updateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a task",
	Long: `Update a task's properties. Only the provided flags change.

Examples:
  lifeflow task update 3f2a91b0 --title "New title"
  lifeflow task update 3f2a91b0 -p high -e 90
  lifeflow task update 3f2a91b0 --clear-due`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.UpdateTaskHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		ctx := cmd.Context()
		taskID, err := resolveTaskID(ctx, app, args[0])
		if err != nil {
			return err
		}

		updateCommand := commands.UpdateTaskCommand{
			TaskID:        taskID,
			ClearDeadline: clearDue,
		}
		if cmd.Flags().Changed("title") {
			updateCommand.Title = &updateTitle
		}
		if cmd.Flags().Changed("description") {
			updateCommand.Description = &updateDescription
		}
		if cmd.Flags().Changed("priority") {
			updateCommand.Priority = &updatePriority
		}
		if cmd.Flags().Changed("estimate") {
			updateCommand.EstimateMinutes = &updateEstimate
		}
		if updateDue != "" {
			parsed, err := time.Parse("2006-01-02", updateDue)
			if err != nil {
				return fmt.Errorf("invalid due date format (use YYYY-MM-DD): %w", err)
			}
			updateCommand.Deadline = &parsed
		}

		if err := app.UpdateTaskHandler.Handle(ctx, updateCommand); err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}

		fmt.Printf("Task %s updated.\n", shortID(taskID.String()))
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "new title")
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "new description")
	updateCmd.Flags().StringVarP(&updatePriority, "priority", "p", "", "new priority (low, medium, high)")
	updateCmd.Flags().IntVarP(&updateEstimate, "estimate", "e", 0, "new estimate in minutes")
	updateCmd.Flags().StringVar(&updateDue, "due", "", "new due date (YYYY-MM-DD)")
	updateCmd.Flags().BoolVar(&clearDue, "clear-due", false, "remove the due date")
}
