package tui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"othctl/pkg/blackboard"
	"othctl/pkg/config"
	"othctl/pkg/mensa"
	"othctl/pkg/render"
	"othctl/pkg/web"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func webClient(cfg *config.AppConfig) *web.Client {
	return web.NewClient(web.WithTimeout(cfg.RequestTimeout()), web.WithUserAgent(cfg.UserAgent))
}

func formatOptions() []huh.Option[render.Format] {
	title := cases.Title(language.English)
	var opts []huh.Option[render.Format]
	for _, f := range []render.Format{render.Text, render.Markdown} {
		opts = append(opts, huh.NewOption(title.String(f.String()), f))
	}
	return opts
}

// RunBlackboardTUI asks for an output format and prints the blackboard
func RunBlackboardTUI(cfg *config.AppConfig) error {
	format := render.Text

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[render.Format]().
				Title("Output format").
				Options(formatOptions()...).
				Value(&format),
		),
	).WithTheme(GetTheme(cfg))

	if err := form.Run(); err != nil {
		return err
	}

	client := blackboard.NewClient(webClient(cfg), cfg.Parallelism)

	var entries []blackboard.Entry
	var err error
	if spinErr := Spin("Scraping the blackboard...", func() {
		entries, err = client.Scrape(context.Background(), cfg.BlackboardURL)
	}); spinErr != nil {
		return fmt.Errorf("failed to scrape blackboard: %w", spinErr)
	}
	if err != nil {
		return fmt.Errorf("failed to scrape blackboard: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("The blackboard is empty.")
		return nil
	}

	out, err := blackboard.Render(entries, format)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

// RunMensaTUI runs the interactive flow for selecting a week and day and displaying the menu
func RunMensaTUI(cfg *config.AppConfig) error {
	now := time.Now()
	thisWeek := mensa.CurrentWeek(now)
	nextWeek := mensa.CurrentWeek(now.AddDate(0, 0, 7))

	var week int
	day := "week"
	format := render.Text

	dayOptions := []huh.Option[string]{huh.NewOption("Whole week", "week")}
	for _, wd := range mensa.Weekdays {
		dayOptions = append(dayOptions, huh.NewOption(wd.German(), strconv.Itoa(int(wd))))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Select calendar week").
				Options(
					huh.NewOption(fmt.Sprintf("This week (KW %d)", thisWeek), thisWeek),
					huh.NewOption(fmt.Sprintf("Next week (KW %d)", nextWeek), nextWeek),
				).
				Value(&week),
			huh.NewSelect[string]().
				Title("Select day").
				Options(dayOptions...).
				Value(&day),
			huh.NewSelect[render.Format]().
				Title("Output format").
				Options(formatOptions()...).
				Value(&format),
		),
	).WithTheme(GetTheme(cfg))

	if err := form.Run(); err != nil {
		return err
	}

	client := mensa.NewClient(webClient(cfg), cfg.MensaURLTemplate, cfg.CacheMenus)

	var plan *mensa.Week
	var err error
	if spinErr := Spin(fmt.Sprintf("Fetching mensa plan for week %d...", week), func() {
		plan, err = client.FetchWeek(context.Background(), week)
	}); spinErr != nil {
		return fmt.Errorf("failed to fetch mensa plan: %w", spinErr)
	}
	if err != nil {
		return fmt.Errorf("failed to fetch mensa plan: %w", err)
	}

	titleStyle := lipgloss.NewStyle().Foreground(accentStyle.GetForeground()).Bold(true).Padding(1, 0)
	fmt.Println(titleStyle.Render(fmt.Sprintf("Mensaplan KW %d", plan.Number)))

	var out string
	if day == "week" {
		out, err = mensa.RenderWeek(plan, format)
	} else {
		out, err = plan.SelectDay(day, format)
	}
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
