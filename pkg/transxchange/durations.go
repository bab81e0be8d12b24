package transxchange

import (
	"strings"
	"time"

	iso8601 "github.com/senseyeio/duration"
	"github.com/travigo/txc2gtfs/pkg/schedule"
)

// Shift needs a concrete point in time, any fixed date without DST changes will do
var durationEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

var clockMidnight = time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC)

func parseDuration(value string, field string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, &schedule.InvalidDurationError{Value: value, Field: field}
	}

	parsed, err := iso8601.ParseISO8601(value)
	if err != nil {
		return 0, &schedule.InvalidDurationError{Value: value, Field: field}
	}

	duration := parsed.Shift(durationEpoch).Sub(durationEpoch)
	if duration < 0 {
		return 0, &schedule.InvalidDurationError{Value: value, Field: field}
	}

	return duration, nil
}

// parseOptionalDuration treats a missing value as zero
func parseOptionalDuration(value string, field string) (time.Duration, error) {
	if strings.TrimSpace(value) == "" {
		return 0, nil
	}
	return parseDuration(value, field)
}

// parseClockTime returns the offset from midnight of a HH:MM:SS time of day
func parseClockTime(value string) (time.Duration, bool) {
	parsed, err := time.Parse(clockFormat, strings.TrimSpace(value))
	if err != nil {
		return 0, false
	}

	return parsed.Sub(clockMidnight), true
}

func parseDate(value string) (time.Time, bool) {
	parsed, err := time.Parse(schedule.DateFormat, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, false
	}

	return parsed, true
}
