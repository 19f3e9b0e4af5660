package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"othctl/pkg/mensa"

	ics "github.com/arran4/golang-ical"
)

// GenerateICS creates an ICS calendar from the week's plan with one all-day event per serving day.
// Days missing from the plan are skipped.
func GenerateICS(week *mensa.Week, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//othctl//Mensaplan//DE")

	// Timezone location for Germany
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		return fmt.Errorf("could not load timezone: %w", err)
	}

	now := time.Now()
	for _, wd := range mensa.Weekdays {
		day, ok := week.Days[wd.Code()]
		if !ok {
			continue
		}

		start := time.Date(day.Date.Year(), day.Date.Month(), day.Date.Day(), 0, 0, 0, 0, loc)

		event := cal.AddEvent(fmt.Sprintf("mensa-%d-%s@othctl", week.Number, start.Format("20060102")))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetModifiedAt(now)
		event.SetAllDayStartAt(start)
		event.SetAllDayEndAt(start.AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("Mensa %s", wd.German()))
		event.SetDescription(strings.TrimRight(day.String(), "\n"))
	}

	return cal.SerializeTo(w)
}
