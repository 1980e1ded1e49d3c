package draft

import (
	"strings"
	"time"
)

// dateLayouts are the end-date formats accepted when deriving the most
// recent experience entry. Profile dates are free-form user input.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"01/2006",
	"January 2006",
	"Jan 2006",
	"2006",
}

// parseEndDate parses an experience end date. Empty and "present"
// (any case) mean the role is ongoing and compare as now. The second
// return is false when the value cannot be parsed; such entries are
// excluded from the most-recent comparison but stay on the resume.
func parseEndDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "present") {
		return time.Now(), true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
