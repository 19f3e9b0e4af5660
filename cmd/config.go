package cmd

import (
	"fmt"

	"othctl/pkg/config"
	"othctl/pkg/render"
	"othctl/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage othctl configuration",
	Long:  "View or edit your local configuration settings (default format, accent color, mensa cache).",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		if show, _ := flags.GetBool("show"); show {
			printConfig(appCfg)
			return nil
		}

		var edits []func(*config.AppConfig)
		if flags.Changed("default-format") {
			f, _ := flags.GetString("default-format")
			parsed, err := render.ParseFormat(f)
			if err != nil {
				return &usageError{err: err}
			}
			edits = append(edits, func(c *config.AppConfig) { c.Format = parsed.String() })
		}
		if flags.Changed("accent-color") {
			accent, _ := flags.GetString("accent-color")
			edits = append(edits, func(c *config.AppConfig) { c.AccentColor = accent })
		}
		if flags.Changed("cache-menus") {
			cache, _ := flags.GetBool("cache-menus")
			edits = append(edits, func(c *config.AppConfig) { c.CacheMenus = cache })
		}
		if flags.Changed("parallelism") {
			p, _ := flags.GetInt("parallelism")
			if p < 1 {
				return &usageError{err: fmt.Errorf("parallelism must be at least 1, got %d", p)}
			}
			edits = append(edits, func(c *config.AppConfig) { c.Parallelism = p })
		}

		if len(edits) == 0 {
			// If no flags are given, launch the interactive TUI flow
			return tui.RunConfigTUI(appCfg, cfgFile)
		}

		// Only the file is rewritten; OTHCTL_* overrides stay out of it
		apply := func(c *config.AppConfig) {
			for _, edit := range edits {
				edit(c)
			}
		}
		if err := config.Update(cfgFile, apply); err != nil {
			return err
		}
		apply(appCfg)
		tui.ApplyAccent(appCfg)

		fmt.Println(tui.AccentStyle().Render("✅ Configuration saved."))
		return nil
	},
}

func printConfig(cfg *config.AppConfig) {
	fmt.Println(tui.AccentStyle().Render("--- Current Configuration ---"))
	fmt.Printf("Blackboard URL: %s\n", cfg.BlackboardURL)
	fmt.Printf("Mensa URL:      %s\n", cfg.MensaURLTemplate)
	fmt.Printf("Format:         %s\n", cfg.Format)
	fmt.Printf("Accent Color:   %s\n", cfg.AccentColor)
	fmt.Printf("Cache Menus:    %t\n", cfg.CacheMenus)
	fmt.Printf("Parallelism:    %d\n", cfg.Parallelism)
	fmt.Printf("Timeout:        %s\n", cfg.RequestTimeout())
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().Bool("show", false, "Print the effective configuration")
	configCmd.Flags().String("default-format", "", "Default output format (text, markdown, html)")
	configCmd.Flags().String("accent-color", "", "Accent color as ANSI code or #RRGGBB")
	configCmd.Flags().Bool("cache-menus", false, "Cache mensa plans for 12 hours")
	configCmd.Flags().Int("parallelism", 0, "Concurrent blackboard detail page fetches")
}
