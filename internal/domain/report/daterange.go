package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate reports a malformed startDate/endDate query value.
var ErrInvalidDate = errors.New("invalid date")

// Range is an inclusive UTC window.
type Range struct {
	Start time.Time
	End   time.Time
}

// ParseDay parses a YYYY-MM-DD string by calendar components. Generic date
// parsing is deliberately avoided so the host timezone never skews the day.
func ParseDay(s string) (time.Time, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidDate, s)
	}
	y, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	d, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidDate, s)
	}
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, fmt.Errorf("%w: %q is out of range", ErrInvalidDate, s)
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC), nil
}

// NormalizeRange turns optional YYYY-MM-DD bounds into an inclusive UTC
// window. A missing start defaults to the first day of the current month, a
// missing end to now. start <= end is not enforced; an inverted range simply
// filters everything out downstream.
func NormalizeRange(startDate, endDate string, now time.Time) (Range, error) {
	now = now.UTC()

	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if startDate != "" {
		day, err := ParseDay(startDate)
		if err != nil {
			return Range{}, err
		}
		start = day
	}

	end := now
	if endDate != "" {
		day, err := ParseDay(endDate)
		if err != nil {
			return Range{}, err
		}
		end = time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, int(999*time.Millisecond), time.UTC)
	}

	return Range{Start: start, End: end}, nil
}

// DayUTC truncates an instant to its UTC calendar day.
func DayUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Contains tests day-granular inclusion. Comparing truncated days rather
// than instants keeps records whose timestamp lands on the boundary day but
// after the window's wall-clock end, which happens with timezone noise in
// upstream timestamps.
func (r Range) Contains(t time.Time) bool {
	day := DayUTC(t)
	return !day.Before(DayUTC(r.Start)) && !day.After(DayUTC(r.End))
}
