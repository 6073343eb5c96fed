package planner

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"
)

// Season is the Top End climate season a travel date falls in.
type Season string

const (
	SeasonWet Season = "WET"
	SeasonDry Season = "DRY"
)

// Classify returns SeasonWet for November through April and SeasonDry otherwise.
func Classify(date time.Time) Season {
	switch date.Month() {
	case time.November, time.December, time.January, time.February, time.March, time.April:
		return SeasonWet
	default:
		return SeasonDry
	}
}

// ClassifyString parses raw as a calendar date and classifies it.
func ClassifyString(raw string) (Season, error) {
	date, err := ParseTravelDate(raw, time.UTC)
	if err != nil {
		return "", err
	}
	return Classify(date), nil
}

const (
	minTravelYear = 1900
	maxTravelYear = 2200
)

var digitGroup = regexp.MustCompile(`\d+`)

// ParseTravelDate accepts ISO dates (2024-03-15) as well as the looser
// forms people type (15 March 2024, 15/03/2024). Numeric dates are read
// day first. The result is truncated to midnight in loc.
//
// Numeric input must have separate day, month and year groups, so bare
// numbers such as 2000 or a unix timestamp are rejected.
func ParseTravelDate(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: empty input", ErrInvalidDate)
	}
	if !hasLetters(raw) && len(digitGroup.FindAllString(raw, -1)) < 3 {
		return time.Time{}, fmt.Errorf("%w: %q is not a full date", ErrInvalidDate, raw)
	}
	if loc == nil {
		loc = time.UTC
	}

	parsed, err := dateparse.ParseIn(raw, loc, dateparse.PreferMonthFirst(false))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}

	y, m, d := parsed.Date()
	if y < minTravelYear || y > maxTravelYear {
		return time.Time{}, fmt.Errorf("%w: year %d out of range", ErrInvalidDate, y)
	}
	return time.Date(y, m, d, 0, 0, 0, 0, loc), nil
}

func hasLetters(raw string) bool {
	return strings.IndexFunc(raw, unicode.IsLetter) >= 0
}

func (s Season) IsWet() bool {
	return s == SeasonWet
}
