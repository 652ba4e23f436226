package timetable

import (
	"strconv"
	"strings"
)

// Hours returns the span between two same-day "HH:MM" timestamps in
// fractional hours, e.g. Hours("10:15", "12:15") == 2.0.
//
// The validator guards start < end on create/update paths; this function
// does not re-check, and a span crossing midnight is out of contract.
// Unparsable input yields 0.
func Hours(start, end string) float64 {
	startMin, ok := parseMinutes(start)
	if !ok {
		return 0
	}
	endMin, ok := parseMinutes(end)
	if !ok {
		return 0
	}
	return float64(endMin-startMin) / 60.0
}

// parseMinutes converts "HH:MM" to minutes since midnight.
func parseMinutes(t string) (int, bool) {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
