package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DayKeyLayout is the calendar-date key format used for day-bucketed
// attendance aggregation.
const DayKeyLayout = "2006-01-02"

// HoursBetween returns the elapsed time between start and end in decimal
// hours, clamped at zero. An end before start yields 0, never a negative.
func HoursBetween(start, end time.Time) float64 {
	d := end.Sub(start)
	if d < 0 {
		return 0
	}
	return d.Hours()
}

// DayKey returns the calendar-date bucket key for t, using the timestamp's
// own date representation without time-zone normalization.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// ParseClockTime parses a wall-clock "HH:MM" string.
func ParseClockTime(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid clock time %q: want HH:MM", s)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid clock time %q: out of range", s)
	}

	return hour, minute, nil
}

// AtClockTime anchors an "HH:MM" wall-clock string to day's calendar date,
// in day's own location.
func AtClockTime(day time.Time, s string) (time.Time, error) {
	hour, minute, err := ParseClockTime(s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()), nil
}
