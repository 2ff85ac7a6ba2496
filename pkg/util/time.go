package util

import (
	"time"

	iso8601 "github.com/senseyeio/duration"
)

const upstreamDateTimeFormat = "200601021504"

// AddMinutesToDateString shifts a YYYYMMDDHHmm wall clock value forward by the given minutes.
// Values that are not in that format are returned unchanged.
func AddMinutesToDateString(dateString string, minutes int) string {
	if minutes <= 0 {
		return dateString
	}

	dateTime, err := time.ParseInLocation(upstreamDateTimeFormat, dateString, time.UTC)
	if err != nil {
		return dateString
	}

	shift := iso8601.Duration{TM: minutes}

	return shift.Shift(dateTime).Format(upstreamDateTimeFormat)
}

// FormatDateString renders a time as a YYYYMMDDHHmm wall clock value
func FormatDateString(dateTime time.Time) string {
	return dateTime.Format(upstreamDateTimeFormat)
}
