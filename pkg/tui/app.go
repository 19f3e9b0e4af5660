package tui

import (
	"othctl/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const defaultAccent = "99"

var (
	// These act as fallbacks until ApplyAccent sets the configured accent color
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// AccentStyle returns the style for highlighted CLI messages
func AccentStyle() lipgloss.Style {
	return accentStyle
}

// ErrorStyle returns the style for user-facing error messages
func ErrorStyle() lipgloss.Style {
	return errorStyle
}

// ApplyAccent sets the accent of plain CLI messages to the configured color
func ApplyAccent(cfg *config.AppConfig) string {
	baseColor := defaultAccent
	if cfg != nil && cfg.AccentColor != "" {
		baseColor = cfg.AccentColor
	}
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(baseColor))
	return baseColor
}

// GetTheme applies the user's saved accent color and constructs the form theme.
func GetTheme(cfg *config.AppConfig) *huh.Theme {
	return GetCustomTheme(ApplyAccent(cfg))
}

// GetCustomTheme returns a new huh.Theme instantiated with the provided lipgloss color string.
func GetCustomTheme(baseColor string) *huh.Theme {
	t := huh.ThemeCharm()
	p := lipgloss.Color(baseColor)

	t.Focused.Title = t.Focused.Title.Foreground(p).Bold(true)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(p).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(p)

	// Softer borders for unfocused elements
	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)

	return t
}

// RunTUI launches the main menu interactive form experience
func RunTUI(cfg *config.AppConfig, configPath string) error {
	var action string

	initialForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What would you like to do?").
				Options(
					huh.NewOption("📌 Schwarzes Brett", "blackboard"),
					huh.NewOption("🍽️ Mensaplan", "mensa"),
					huh.NewOption("⚙️ Settings", "config"),
				).
				Value(&action),
		),
	).WithTheme(GetTheme(cfg))

	if err := initialForm.Run(); err != nil {
		return err
	}

	switch action {
	case "mensa":
		return RunMensaTUI(cfg)
	case "config":
		return RunConfigTUI(cfg, configPath)
	}
	return RunBlackboardTUI(cfg)
}
