package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"othctl/pkg/exporter"
	"othctl/pkg/mensa"
	"othctl/pkg/tui"

	"github.com/spf13/cobra"
)

var (
	weekdayStr string
	weekStr    string
	icsPath    string
	useCache   bool
)

var mensaCmd = &cobra.Command{
	Use:     "mensa",
	Aliases: []string{"mensaplan", "me", "m"},
	Short:   "Show the mensa plan of a calendar week",
	Long:    `Fetch the weekly mensa plan of the Regensburg university cafeteria and print the whole week or a single day.`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat()
		if err != nil {
			return err
		}

		// Reject unknown days before fetching anything
		if weekdayStr != "" {
			if _, err := mensa.ParseWeekday(weekdayStr); err != nil {
				var invalid *mensa.InvalidSelectionError
				if errors.As(err, &invalid) {
					return &usageError{err: invalid}
				}
				return err
			}
		}

		week, err := mensa.ParseWeekSelector(weekStr, time.Now())
		if err != nil {
			return &usageError{err: err}
		}

		client := mensa.NewClient(newWebClient(), appCfg.MensaURLTemplate, useCache || appCfg.CacheMenus)

		var plan *mensa.Week
		spinErr := tui.Spin(fmt.Sprintf("Fetching mensa plan for week %d...", week), func() {
			plan, err = client.FetchWeek(cmd.Context(), week)
		})
		if err = errors.Join(spinErr, err); err != nil {
			return fmt.Errorf("could not fetch mensa plan: %w", err)
		}

		if icsPath != "" {
			if err := exportICS(plan, icsPath); err != nil {
				return err
			}
		}

		var out string
		if weekdayStr != "" {
			out, err = plan.SelectDay(weekdayStr, format)
		} else {
			out, err = mensa.RenderWeek(plan, format)
		}
		if err != nil {
			return err
		}
		return writeOutput(out)
	},
}

func exportICS(plan *mensa.Week, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create ICS file: %w", err)
	}
	defer file.Close()

	if err := exporter.GenerateICS(plan, file); err != nil {
		return fmt.Errorf("failed to generate ICS: %w", err)
	}

	fmt.Fprintln(os.Stderr, tui.AccentStyle().Render(fmt.Sprintf("Exported week %d to %s", plan.Number, path)))
	return nil
}

func init() {
	rootCmd.AddCommand(mensaCmd)
	mensaCmd.Flags().StringVarP(&weekdayStr, "weekday", "d", "", "Only show DAY (0-4, or a name such as mo, dienstag, friday)")
	mensaCmd.Flags().StringVarP(&weekStr, "week", "w", "today", "Calendar week (1-53) or 'today'")
	mensaCmd.Flags().StringVar(&icsPath, "ics", "", "Also export the week as an ICS calendar to FILE")
	mensaCmd.Flags().BoolVar(&useCache, "cache", false, "Reuse plans fetched in the last 12 hours")
}
