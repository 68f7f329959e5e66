package sleep

import (
	"github.com/spf13/cobra"
)

// Cmd is the sleep command group
var Cmd = &cobra.Command{
	Use:   "sleep",
	Short: "Track your sleep",
	Long:  `Log nightly sleep and review your recent rhythm.`,
}

func init() {
	Cmd.AddCommand(logCmd)
	Cmd.AddCommand(statsCmd)
}
