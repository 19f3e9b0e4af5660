package cmd

import (
	"othctl/pkg/tui"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Launch the interactive TUI",
	Long:    `Launch the Text User Interface to browse the blackboard and the mensa plan interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.RunTUI(appCfg, cfgFile)
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
