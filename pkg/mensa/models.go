package mensa

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Category groups the meals of a day
type Category int

const (
	Soup Category = iota
	Starter
	MainCourse
	SideDish
	Dessert
)

// Label returns the German heading used when rendering a category
func (c Category) Label() string {
	switch c {
	case Soup:
		return "Suppen"
	case Starter:
		return "Vorspeisen"
	case MainCourse:
		return "Hauptgerichte"
	case SideDish:
		return "Beilagen"
	case Dessert:
		return "Nachspeisen"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

func (c Category) String() string {
	return c.Label()
}

// renderedCategories is the order categories appear in output.
// Starter is listed although Classify never produces it, and SideDish is
// never rendered although Classify fills it. Both mirror the published plan
// tool and are kept until the intended category set is clarified.
var renderedCategories = []Category{Soup, Starter, MainCourse, Dessert}

// Meal is a single dish of the mensa plan
type Meal struct {
	Name          string          `json:"name"`
	Kennzeichnung string          `json:"kennzeichnung"` // Allergen and additive codes, e.g. "1,2,3"
	PriceStudent  decimal.Decimal `json:"price_student"`
	PriceStaff    decimal.Decimal `json:"price_staff"`
	PriceGuest    decimal.Decimal `json:"price_guest"`
}

// Day holds all meals served on one date
type Day struct {
	Code  string              `json:"code"` // "Mo", "Di", ...
	Date  time.Time           `json:"date"`
	Meals map[Category][]Meal `json:"meals"`
}

// NewDay creates an empty day for the weekday code and date
func NewDay(code string, date time.Time) *Day {
	return &Day{
		Code:  code,
		Date:  date,
		Meals: make(map[Category][]Meal),
	}
}

// AddMeal classifies the meal by its category code and appends it to that category
func (d *Day) AddMeal(meal Meal, categoryCode string) error {
	cat, err := Classify(categoryCode)
	if err != nil {
		return err
	}
	d.Meals[cat] = append(d.Meals[cat], meal)
	return nil
}

// Week is the parsed plan of one calendar week, keyed by weekday code
type Week struct {
	Number int             `json:"number"`
	Days   map[string]*Day `json:"days"`
}

// NewWeek creates an empty plan for the ISO week number
func NewWeek(number int) *Week {
	return &Week{Number: number, Days: make(map[string]*Day)}
}

// Day looks up a weekday, returning *MissingDayError when the plan has no entry for it
func (w *Week) Day(day Weekday) (*Day, error) {
	d, ok := w.Days[day.Code()]
	if !ok {
		return nil, &MissingDayError{Code: day.Code(), Week: w.Number}
	}
	return d, nil
}

// Classify maps a category code of the CSV feed to a Category.
// Prefixes are checked in order: "HG", "B", "Suppe", "N".
func Classify(code string) (Category, error) {
	code = strings.TrimSpace(code)
	switch {
	case strings.HasPrefix(code, "HG"):
		return MainCourse, nil
	case strings.HasPrefix(code, "B"):
		return SideDish, nil
	case strings.HasPrefix(code, "Suppe"):
		return Soup, nil
	case strings.HasPrefix(code, "N"):
		return Dessert, nil
	}
	return 0, &UnknownCategoryError{Code: code}
}

// UnknownCategoryError is returned for a category code no prefix rule matches
type UnknownCategoryError struct {
	Code string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown meal category: %q", e.Code)
}

// MissingDayError is returned when a weekday is absent from the fetched plan
type MissingDayError struct {
	Code string
	Week int
}

func (e *MissingDayError) Error() string {
	if e.Week > 0 {
		return fmt.Sprintf("no menu for %s in calendar week %d", e.Code, e.Week)
	}
	return fmt.Sprintf("no menu for %s", e.Code)
}

// RowError wraps a failure to parse one CSV row
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
