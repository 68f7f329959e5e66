package task

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/lifeflow/adapter/cli"
	"github.com/felixgeelhaar/lifeflow/internal/productivity/application/commands"
	"github.com/felixgeelhaar/lifeflow/internal/productivity/application/queries"
)

var doneCmd = &cobra.Command{
	Use:   "done [id]",
	Short: "Toggle a task's completion",
	Long: `Toggle the completion state of a task. Accepts a full task ID or a
unique prefix.

Examples:
  lifeflow task done 3f2a91b0
  lifeflow task done 3f2a91b0-...-full-uuid`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ToggleTaskHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		ctx := cmd.Context()
		taskID, err := resolveTaskID(ctx, app, args[0])
		if err != nil {
			return err
		}

		result, err := app.ToggleTaskHandler.Handle(ctx, commands.ToggleTaskCommand{TaskID: taskID})
		if err != nil {
			return fmt.Errorf("failed to toggle task: %w", err)
		}

		if result.Completed {
			fmt.Printf("Task %s completed.\n", shortID(taskID.String()))
		} else {
			fmt.Printf("Task %s reopened.\n", shortID(taskID.String()))
		}
		return nil
	},
}

// resolveTaskID accepts a full UUID or a unique prefix of one.
func resolveTaskID(ctx context.Context, app *cli.App, ref string) (uuid.UUID, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return id, nil
	}

	tasks, err := app.ListTasksHandler.Handle(ctx, queries.ListTasksQuery{})
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to resolve task id: %w", err)
	}

	var matches []uuid.UUID
	for _, t := range tasks {
		if strings.HasPrefix(t.ID.String(), strings.ToLower(ref)) {
			matches = append(matches, t.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return uuid.Nil, fmt.Errorf("no task matches %q", ref)
	default:
		return uuid.Nil, fmt.Errorf("task id %q is ambiguous (%d matches)", ref, len(matches))
	}
}
