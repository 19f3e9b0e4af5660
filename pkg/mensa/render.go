package mensa

import (
	"errors"
	"fmt"
	"strings"

	"othctl/pkg/render"
)

// Title returns the heading of the day, e.g. "Montag 06.05.2024"
func (d *Day) Title() string {
	name := d.Code
	if wd, ok := weekdayForCode(d.Code); ok {
		name = wd.German()
	}
	return fmt.Sprintf("%s %s", name, d.Date.Format(dateLayout))
}

func (m Meal) line() string {
	return fmt.Sprintf("%s - %s: %s€", m.Name, m.Kennzeichnung, m.PriceStudent.StringFixed(2))
}

// String renders the day as indented plain text
func (d *Day) String() string {
	var sb strings.Builder
	sb.WriteString(d.Title())
	sb.WriteByte('\n')
	for _, cat := range renderedCategories {
		fmt.Fprintf(&sb, "  %s:\n", cat.Label())
		for _, meal := range d.Meals[cat] {
			fmt.Fprintf(&sb, "    %s\n", meal.line())
		}
	}
	return sb.String()
}

// Markdown renders the day with one second-level heading per category
func (d *Day) Markdown() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", d.Title())
	for _, cat := range renderedCategories {
		fmt.Fprintf(&sb, "## %s\n", cat.Label())
		for _, meal := range d.Meals[cat] {
			fmt.Fprintf(&sb, "- %s\n", meal.line())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderDay renders a single day in the requested format
func RenderDay(d *Day, format render.Format) (string, error) {
	switch format {
	case render.Markdown:
		return d.Markdown(), nil
	case render.HTML:
		return render.ToHTML(d.Markdown())
	default:
		return d.String(), nil
	}
}

// RenderWeek renders Monday to Friday in order.
// A weekday missing from the plan is a *MissingDayError.
func RenderWeek(w *Week, format render.Format) (string, error) {
	var parts []string
	for _, wd := range Weekdays {
		day, err := w.Day(wd)
		if err != nil {
			return "", err
		}
		if format == render.Text {
			parts = append(parts, day.String())
		} else {
			parts = append(parts, day.Markdown())
		}
	}

	out := strings.Join(parts, "\n")
	if format == render.HTML {
		return render.ToHTML(out)
	}
	return out, nil
}

// SelectDay renders the day chosen by an index or name.
// An unknown selector yields the message "Invalid day: <sel>!" instead of an error.
func (w *Week) SelectDay(sel string, format render.Format) (string, error) {
	wd, err := ParseWeekday(sel)
	if err != nil {
		var invalid *InvalidSelectionError
		if errors.As(err, &invalid) {
			return invalid.Error(), nil
		}
		return "", err
	}

	day, err := w.Day(wd)
	if err != nil {
		return "", err
	}
	return RenderDay(day, format)
}
