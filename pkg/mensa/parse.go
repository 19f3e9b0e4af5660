package mensa

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "02.01.2006"

// Column positions of the mensa CSV feed
const (
	colDate = iota
	colWeekday
	colCategory
	colName
	colKennzeichnung
	_ // column 5 is unused
	colPriceStudent
	colPriceStaff
	colPriceGuest
	numColumns
)

// ParseWeek parses the semicolon separated plan of one calendar week.
// The first row holds the column labels and is skipped.
func ParseWeek(r io.Reader, number int) (*Week, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	week := NewWeek(number)

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return week, nil
		}
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	rows := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}

		line, _ := reader.FieldPos(0)
		if err := week.addRow(record); err != nil {
			return nil, &RowError{Line: line, Err: err}
		}
		rows++
	}

	slog.Debug("parsed mensa plan", slog.Int("week", number), slog.Int("rows", rows), slog.Int("days", len(week.Days)))
	return week, nil
}

// addRow adds one CSV record, creating its day on first sight
func (w *Week) addRow(record []string) error {
	if len(record) < numColumns {
		return fmt.Errorf("expected %d columns, got %d", numColumns, len(record))
	}

	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}

	meal, err := parseMeal(record)
	if err != nil {
		return err
	}

	code := record[colWeekday]
	day, ok := w.Days[code]
	if !ok {
		date, err := time.Parse(dateLayout, record[colDate])
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", record[colDate], err)
		}
		day = NewDay(code, date)
		w.Days[code] = day
	}

	return day.AddMeal(meal, record[colCategory])
}

func parseMeal(record []string) (Meal, error) {
	var prices [3]decimal.Decimal
	for i, col := range []int{colPriceStudent, colPriceStaff, colPriceGuest} {
		p, err := ParsePrice(record[col])
		if err != nil {
			return Meal{}, err
		}
		prices[i] = p
	}

	return Meal{
		Name:          record[colName],
		Kennzeichnung: record[colKennzeichnung],
		PriceStudent:  prices[0],
		PriceStaff:    prices[1],
		PriceGuest:    prices[2],
	}, nil
}

// ParsePrice parses a German formatted price such as "3,50"
func ParsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "€"))
	p, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid price %q", s)
	}
	if p.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("negative price %q", s)
	}
	return p, nil
}
