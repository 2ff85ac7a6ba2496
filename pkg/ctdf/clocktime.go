package ctdf

import (
	"strings"
	"time"
)

// UpstreamDateTimeFormat is the 12 digit YYYYMMDDHHmm wall clock format used by the journey planner
const UpstreamDateTimeFormat = "200601021504"

// FormatClock converts the upstream time encodings into HH:mm.
//
// A 12 digit YYYYMMDDHHmm value takes its clock part. A packed HMM or HHMM value of up to 4 digits is
// left padded to 4 digits before slicing. Values already in HH:mm form are returned unchanged.
// Anything else, including an empty string, returns "". No timezone conversion is done.
func FormatClock(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if len(raw) == 5 && raw[2] == ':' && isDigits(raw[:2]) && isDigits(raw[3:]) {
		return raw
	}

	if !isDigits(raw) {
		return ""
	}

	switch {
	case len(raw) == 12:
		return raw[8:10] + ":" + raw[10:12]
	case len(raw) <= 4:
		padded := strings.Repeat("0", 4-len(raw)) + raw
		return padded[0:2] + ":" + padded[2:4]
	default:
		return ""
	}
}

// ParseUpstreamDateTime parses a 12 digit YYYYMMDDHHmm value in the given location
func ParseUpstreamDateTime(raw string, location *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if len(raw) != 12 || !isDigits(raw) {
		return time.Time{}, false
	}

	parsed, err := time.ParseInLocation(UpstreamDateTimeFormat, raw, location)
	if err != nil {
		return time.Time{}, false
	}

	return parsed, true
}

// ClockMinutesBetween returns the number of minutes from one HH:mm value to another, wrapping past midnight
func ClockMinutesBetween(from string, to string) (int, bool) {
	fromMinutes, ok := clockMinutes(from)
	if !ok {
		return 0, false
	}
	toMinutes, ok := clockMinutes(to)
	if !ok {
		return 0, false
	}

	difference := toMinutes - fromMinutes
	if difference < 0 {
		difference += 24 * 60
	}

	return difference, true
}

func clockMinutes(clock string) (int, bool) {
	clock = FormatClock(clock)
	if clock == "" {
		return 0, false
	}

	hours := int(clock[0]-'0')*10 + int(clock[1]-'0')
	minutes := int(clock[3]-'0')*10 + int(clock[4]-'0')

	return hours*60 + minutes, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
