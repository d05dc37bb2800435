package documents

import (
	"strings"
	"time"
)

// DefaultDateLayouts are tried in order when parsing a document date.
// "02-01-06" is the console's dd-mm-yy display form.
var DefaultDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-01-06",
	"02-01-2006",
	"02/01/2006",
}

// ParseDate parses a raw document date with the given layouts
// (DefaultDateLayouts when none are given).
func ParseDate(raw string, layouts ...string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	if len(layouts) == 0 {
		layouts = DefaultDateLayouts
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Day returns t's calendar day (read in t's own location) as UTC midnight,
// so days from different locations compare by date alone.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
