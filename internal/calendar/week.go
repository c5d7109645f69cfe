// Package calendar provides ISO-8601 week arithmetic used to place
// shipments and forecast buckets on a weekly timeline.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Week identifies an ISO-8601 week. Number is 1-based and never exceeds
// WeeksInYear(Year) for a valid week.
type Week struct {
	Year   int
	Number int
}

// WeekOf returns the ISO week containing t.
func WeekOf(t time.Time) Week {
	y, w := t.ISOWeek()
	return Week{Year: y, Number: w}
}

// Current returns the ISO week of the given clock reading in UTC.
func Current(now time.Time) Week {
	return WeekOf(now.UTC())
}

// WeeksInYear returns 52 or 53. December 28th always falls in the last
// ISO week of its year.
func WeeksInYear(year int) int {
	_, w := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return w
}

// Valid reports whether the week number lies within its ISO year.
func (w Week) Valid() bool {
	return w.Number >= 1 && w.Number <= WeeksInYear(w.Year)
}

// Monday returns midnight UTC on the Monday that starts the week.
func (w Week) Monday() time.Time {
	jan4 := time.Date(w.Year, time.January, 4, 0, 0, 0, 0, time.UTC)
	offset := (int(jan4.Weekday()) + 6) % 7
	week1 := jan4.AddDate(0, 0, -offset)
	return week1.AddDate(0, 0, (w.Number-1)*7)
}

// AddWeeks moves n weeks forward (or backward for negative n), wrapping
// across ISO year boundaries.
func (w Week) AddWeeks(n int) Week {
	return WeekOf(w.Monday().AddDate(0, 0, 7*n))
}

// Before reports whether w is strictly earlier than other.
func (w Week) Before(other Week) bool {
	if w.Year != other.Year {
		return w.Year < other.Year
	}
	return w.Number < other.Number
}

// String formats the week as YYYY-Www, e.g. 2026-W42.
func (w Week) String() string {
	return fmt.Sprintf("%04d-W%02d", w.Year, w.Number)
}

// ParseWeek parses "2026-W42", "2026W42" or "2026-42" (case-insensitive).
func ParseWeek(s string) (Week, error) {
	raw := strings.ToUpper(strings.TrimSpace(s))
	var yearPart, weekPart string
	switch {
	case strings.Contains(raw, "-W"):
		yearPart, weekPart, _ = strings.Cut(raw, "-W")
	case strings.Contains(raw, "W"):
		yearPart, weekPart, _ = strings.Cut(raw, "W")
	case strings.Contains(raw, "-"):
		yearPart, weekPart, _ = strings.Cut(raw, "-")
	default:
		return Week{}, fmt.Errorf("invalid week %q (expected YYYY-Www)", s)
	}

	year, err := strconv.Atoi(yearPart)
	if err != nil || year < 1 {
		return Week{}, fmt.Errorf("invalid week %q: bad year", s)
	}
	num, err := strconv.Atoi(weekPart)
	if err != nil {
		return Week{}, fmt.Errorf("invalid week %q: bad week number", s)
	}

	w := Week{Year: year, Number: num}
	if !w.Valid() {
		return Week{}, fmt.Errorf("invalid week %q: %d has %d ISO weeks", s, year, WeeksInYear(year))
	}
	return w, nil
}
