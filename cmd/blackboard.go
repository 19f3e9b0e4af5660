package cmd

import (
	"errors"
	"fmt"

	"othctl/pkg/blackboard"
	"othctl/pkg/tui"

	"github.com/spf13/cobra"
)

var blackboardCmd = &cobra.Command{
	Use:     "blackboard",
	Aliases: []string{"black", "bl", "b"},
	Short:   "Show the announcements of the faculty blackboard",
	Long:    `Scrape the "Schwarzes Brett" of the computer science and mathematics faculty and print every announcement.`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat()
		if err != nil {
			return err
		}

		client := blackboard.NewClient(newWebClient(), appCfg.Parallelism)

		var entries []blackboard.Entry
		spinErr := tui.Spin("Scraping the blackboard...", func() {
			entries, err = client.Scrape(cmd.Context(), appCfg.BlackboardURL)
		})
		if err = errors.Join(spinErr, err); err != nil {
			return fmt.Errorf("could not scrape blackboard: %w", err)
		}

		out, err := blackboard.Render(entries, format)
		if err != nil {
			return err
		}
		return writeOutput(out)
	},
}

func init() {
	rootCmd.AddCommand(blackboardCmd)
}
