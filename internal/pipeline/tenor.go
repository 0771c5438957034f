package pipeline

import (
	"fmt"
	"strings"
	"time"
)

// tenorDateLayouts are the date formats loan offers show up with, most
// common first.
var tenorDateLayouts = []string{
	"02.01.2006",
	"2006-01-02",
	"02/01/2006",
	time.RFC3339,
}

// tenorInYears derives the fixed-interest tenor from an offer date and a
// fixed-period field. When the period is itself a date, the result is the
// whole-year difference as "N Jahre"; a value already textual (say
// "10 Jahre") passes through unchanged. Differences outside [0, 50] years
// are treated as unavailable and return "".
func tenorInYears(offerDate, fixedPeriod string) string {
	fixedPeriod = strings.TrimSpace(fixedPeriod)
	if fixedPeriod == "" {
		return ""
	}

	end, ok := parseFlexibleDate(fixedPeriod)
	if !ok {
		// Already a textual tenor, not a date.
		return fixedPeriod
	}

	start, ok := parseFlexibleDate(strings.TrimSpace(offerDate))
	if !ok {
		return ""
	}

	years := end.Year() - start.Year()
	if end.Month() < start.Month() || (end.Month() == start.Month() && end.Day() < start.Day()) {
		years--
	}
	if years < 0 || years > 50 {
		return ""
	}
	return fmt.Sprintf("%d Jahre", years)
}

func parseFlexibleDate(s string) (time.Time, bool) {
	for _, layout := range tenorDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
