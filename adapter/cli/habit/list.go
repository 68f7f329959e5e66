package habit

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/lifeflow/adapter/cli"
	"github.com/felixgeelhaar/lifeflow/internal/habits/application/queries"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List habits with today's progress",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListHabitsHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		habits, err := app.ListHabitsHandler.Handle(cmd.Context(), queries.ListHabitsQuery{
			Date: time.Now(),
		})
		if err != nil {
			return fmt.Errorf("failed to list habits: %w", err)
		}

		if len(habits) == 0 {
			fmt.Println("No habits yet. Create one with 'lifeflow habit create'.")
			return nil
		}

		for _, h := range habits {
			marker := "[ ]"
			if h.DoneToday {
				marker = "[x]"
			}
			name := h.Name
			if h.Icon != "" {
				name = h.Icon + " " + name
			}
			fmt.Printf("%s %s  %s\n", marker, shortID(h.ID.String()), name)
		}
		return nil
	},
}
