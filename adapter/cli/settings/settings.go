package settings

import (
	"github.com/spf13/cobra"
)

// Cmd is the settings command group
var Cmd = &cobra.Command{
	Use:   "settings",
	Short: "View and change your preferences",
	Long:  `Manage your daily rhythm, focus limits, and the assistant credential.`,
}

func init() {
	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(setCmd)
}
