package http

import (
	"fmt"
	"time"

	"github.com/shoproster/shopstaff-backend-go/internal/pkg/timeutil"
)

// parseTimeParam accepts either a bare date or a full RFC3339 timestamp.
// A bare date used as a range end should be widened with endOfDay so the
// whole day stays inside the inclusive range.
func parseTimeParam(value string) (time.Time, bool, error) {
	if t, err := time.Parse(timeutil.DayKeyLayout, value); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("must be YYYY-MM-DD or an ISO8601 timestamp: %w", err)
	}
	return t, false, nil
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// parseRangeQuery parses optional from/to query values into pointers for
// list filters. Bare-date "to" values are widened to the end of that day.
func parseRangeQuery(fromValue, toValue string) (*time.Time, *time.Time, error) {
	var from, to *time.Time

	if fromValue != "" {
		t, _, err := parseTimeParam(fromValue)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid from: %w", err)
		}
		from = &t
	}
	if toValue != "" {
		t, bareDate, err := parseTimeParam(toValue)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid to: %w", err)
		}
		if bareDate {
			t = endOfDay(t)
		}
		to = &t
	}

	return from, to, nil
}
