package mensa

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Weekday is a day the mensa serves meals, Monday to Friday
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
)

// Weekdays lists the serving days in plan order
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

var weekdayCodes = [...]string{"Mo", "Di", "Mi", "Do", "Fr"}
var weekdayNames = [...]string{"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag"}

// Code returns the two-letter code used by the CSV feed
func (d Weekday) Code() string {
	if d < Monday || d > Friday {
		return ""
	}
	return weekdayCodes[d]
}

// German returns the German name of the day
func (d Weekday) German() string {
	if d < Monday || d > Friday {
		return ""
	}
	return weekdayNames[d]
}

func (d Weekday) String() string {
	return time.Weekday(int(d) + 1).String()
}

// weekdayAliases maps lower-cased English and German names and abbreviations to days.
// "m" is Monday.
var weekdayAliases = map[string]Weekday{
	"monday": Monday, "montag": Monday, "mo": Monday, "m": Monday,
	"tuesday": Tuesday, "dienstag": Tuesday, "tu": Tuesday, "di": Tuesday,
	"wednesday": Wednesday, "mittwoch": Wednesday, "wed": Wednesday, "mi": Wednesday, "w": Wednesday,
	"thursday": Thursday, "donnerstag": Thursday, "th": Thursday, "do": Thursday,
	"friday": Friday, "freitag": Friday, "fr": Friday, "f": Friday,
}

// InvalidSelectionError is returned for a weekday selector that matches no day
type InvalidSelectionError struct {
	Input string
}

func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("Invalid day: %s!", e.Input)
}

// ParseWeekday accepts a zero-based index ("0" is Monday) or a case-insensitive day name or abbreviation
func ParseWeekday(sel string) (Weekday, error) {
	s := strings.ToLower(strings.TrimSpace(sel))

	if i, err := strconv.Atoi(s); err == nil {
		if i >= int(Monday) && i <= int(Friday) {
			return Weekday(i), nil
		}
		return 0, &InvalidSelectionError{Input: sel}
	}

	if d, ok := weekdayAliases[s]; ok {
		return d, nil
	}
	return 0, &InvalidSelectionError{Input: sel}
}

// weekdayForCode maps a CSV weekday code back to a Weekday
func weekdayForCode(code string) (Weekday, bool) {
	for i, c := range weekdayCodes {
		if c == code {
			return Weekday(i), true
		}
	}
	return 0, false
}

// CurrentWeek returns the ISO calendar week of t
func CurrentWeek(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// ParseWeekSelector interprets a week selector: "today" or empty means the current ISO week
func ParseWeekSelector(sel string, now time.Time) (int, error) {
	s := strings.ToLower(strings.TrimSpace(sel))
	if s == "" || s == "today" || s == "heute" {
		return CurrentWeek(now), nil
	}

	week, err := strconv.Atoi(s)
	if err != nil || week < 1 || week > 53 {
		return 0, fmt.Errorf("invalid calendar week %q (use 1-53 or today)", sel)
	}
	return week, nil
}
