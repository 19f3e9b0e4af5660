package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"othctl/pkg/config"
	"othctl/pkg/logging"
	"othctl/pkg/tui"

	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	formatFlag string
	markdown   bool
	outputPath string
	verbose    bool

	// appCfg is loaded before any subcommand runs
	appCfg *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "othctl",
	Short: "A CLI for the OTH Regensburg blackboard and mensa plan",
	Long: `othctl fetches the announcements of the OTH Regensburg computer science
and mathematics blackboard and the weekly mensa plan, and prints them as
plain text, markdown or HTML.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup(verbose)

		cfg, err := config.LoadFrom(cfgFile)
		if err != nil {
			return err
		}
		appCfg = cfg
		tui.ApplyAccent(appCfg)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return &usageError{err: errors.New("no command given")}
	},
}

// usageError marks errors that should be followed by the command's usage
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	cmd, err := rootCmd.ExecuteC()
	os.Exit(reportError(cmd, err, os.Stderr))
}

// reportError prints err to w, followed by the usage of cmd for usage errors and
// unknown commands, and returns the process exit code.
func reportError(cmd *cobra.Command, err error, w io.Writer) int {
	if err == nil {
		return 0
	}
	if cmd == nil {
		cmd = rootCmd
	}

	fmt.Fprintln(w, tui.ErrorStyle().Render(err.Error()))

	var uerr *usageError
	if errors.As(err, &uerr) || strings.HasPrefix(err.Error(), "unknown command") {
		fmt.Fprintln(w)
		cmd.SetOut(w)
		_ = cmd.Usage()
	}
	return 1
}

func init() {
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.othctl.json)")
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "", "Output format: text, markdown or html (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&markdown, "markdown", "m", false, "Shortcut for --format markdown")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Write to FILE instead of stdout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
}
