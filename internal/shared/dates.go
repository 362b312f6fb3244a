package shared

import (
	"errors"
	"time"
)

// DateOnly truncates a timestamp to midnight UTC. Report and list filters
// compare at day granularity.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDateRange parses optional YYYY-MM-DD bounds. Either side may be
// empty; when both are present start must not follow end.
func ParseDateRange(start, end string) (time.Time, time.Time, error) {
	var from, to time.Time
	var err error
	if start != "" {
		if from, err = time.ParseInLocation(time.DateOnly, start, time.UTC); err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid start date, expected YYYY-MM-DD")
		}
	}
	if end != "" {
		if to, err = time.ParseInLocation(time.DateOnly, end, time.UTC); err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid end date, expected YYYY-MM-DD")
		}
	}
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return time.Time{}, time.Time{}, errors.New("start date is after end date")
	}
	return from, to, nil
}
