package schedparse

import (
	"regexp"
	"strconv"
)

var (
	reDurationMinutes = regexp.MustCompile(`(?i)for\s+(\d+)\s*(m|min|minutes?)`)
	reDurationHours   = regexp.MustCompile(`(?i)for\s+(\d+)\s*(h|hr|hours?)`)
)

// ParseDurationMinutes extracts an event length from "for N m/min/minutes" or
// "for N h/hr/hours" clauses. The minute form is tried first. It is a total
// function: text without a duration clause yields 0.
func ParseDurationMinutes(text string) int {
	if m := reDurationMinutes.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	if m := reDurationHours.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n * 60
	}
	return 0
}
