package tools

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const isoDateLayout = "2006-01-02"

var relativeDatePattern = regexp.MustCompile(`(?i)in (\d+) (day|week|month)s?`)

// ResolveFollowUpDate turns a relative expression like "in 2 weeks"
// into an ISO date counted from today. It recognizes exactly one
// pattern family; anything else, including absolute ISO dates, passes
// through unchanged.
func ResolveFollowUpDate(input string, today time.Time) string {
	m := relativeDatePattern.FindStringSubmatch(input)
	if m == nil {
		return input
	}

	amount, err := strconv.Atoi(m[1])
	if err != nil {
		return input
	}

	var date time.Time
	switch strings.ToLower(m[2]) {
	case "day":
		date = today.AddDate(0, 0, amount)
	case "week":
		date = today.AddDate(0, 0, amount*7)
	case "month":
		date = today.AddDate(0, amount, 0)
	default:
		return input
	}
	return date.Format(isoDateLayout)
}
