package nws

import (
	"strings"
	"time"
)

// Accepted start/end timestamp layouts.
const (
	layoutDateTimeZ     = "2006-01-02T15:04:05Z"
	layoutDate          = "2006-01-02"
	layoutDateTimeSpace = "2006-01-02 15:04:05"
)

// normalizeStart normalizes a start timestamp. Date-only values snap to the
// beginning of the day.
func normalizeStart(value string) (string, error) {
	return normalizeTimestamp(value, "T00:00:00Z")
}

// normalizeEnd normalizes an end timestamp. Date-only values snap to the
// end of the day.
func normalizeEnd(value string) (string, error) {
	return normalizeTimestamp(value, "T23:59:59Z")
}

// normalizeTimestamp pads a timestamp to the full ISO-8601 date-time form
// with a trailing UTC designator. Exactly three input layouts are accepted;
// anything else is an InvalidTimestampError.
func normalizeTimestamp(value, datePadding string) (string, error) {
	if _, err := time.Parse(layoutDateTimeZ, value); err == nil {
		return value, nil
	}
	if _, err := time.Parse(layoutDate, value); err == nil {
		return value + datePadding, nil
	}
	if _, err := time.Parse(layoutDateTimeSpace, value); err == nil {
		return strings.Replace(value, " ", "T", 1) + "Z", nil
	}
	return "", &InvalidTimestampError{Value: value}
}
