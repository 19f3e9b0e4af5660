package tui

import (
	"fmt"
	"strings"

	"othctl/pkg/config"
	"othctl/pkg/render"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func colorBlock(color string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(color)).Render("  ")
}

// RunConfigTUI launches the interactive settings form and saves the result to configPath
func RunConfigTUI(cfg *config.AppConfig, configPath string) error {
	accent := cfg.AccentColor
	format := cfg.Format
	cacheMenus := cfg.CacheMenus
	var customHex string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color for othctl").
				Options(
					huh.NewOption(fmt.Sprintf("%s OTH Purple", colorBlock("99")), "99"),
					huh.NewOption(fmt.Sprintf("%s Sakura Pink", colorBlock("205")), "205"),
					huh.NewOption(fmt.Sprintf("%s Ocean Blue", colorBlock("86")), "86"),
					huh.NewOption(fmt.Sprintf("%s Matrix Green", colorBlock("42")), "42"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&accent),
			huh.NewSelect[string]().
				Title("Default output format").
				Options(
					huh.NewOption("Text", render.Text.String()),
					huh.NewOption("Markdown", render.Markdown.String()),
					huh.NewOption("HTML", render.HTML.String()),
				).
				Value(&format),
			huh.NewConfirm().
				Title("Cache mensa plans for 12 hours?").
				Value(&cacheMenus),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Enter a Hex Color Code").
				Description("Include the `#` symbol. Example: #FF00FF").
				Placeholder("#").
				Value(&customHex).
				Validate(func(str string) error {
					if len(str) != 7 || !strings.HasPrefix(str, "#") {
						return fmt.Errorf("must be a valid 6-character hex code starting with #")
					}
					return nil
				}),
		).WithHideFunc(func() bool { return accent != "custom" }),
	).WithTheme(GetTheme(cfg))

	if err := form.Run(); err != nil {
		return err
	}

	if accent == "custom" {
		accent = customHex
	}
	apply := func(c *config.AppConfig) {
		c.AccentColor = accent
		c.Format = format
		c.CacheMenus = cacheMenus
	}
	if err := config.Update(configPath, apply); err != nil {
		return err
	}
	apply(cfg)

	ApplyAccent(cfg)
	fmt.Println(accentStyle.Render("\n✅ Settings saved.\n"))
	return nil
}
