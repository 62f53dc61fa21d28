package format

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts are the date forms accepted across the app, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
}

// clockLayouts are the accepted shoot-time forms.
var clockLayouts = []string{
	"3:04 PM",
	"03:04 PM",
	"15:04",
}

// ParseDate parses s against the supported date layouts. The result carries
// the local location so later calendar decomposition is wall-clock based.
func ParseDate(s string) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("format: unrecognized date %q", s)
}

// ParseClock parses a time-of-day string such as "4:30 PM". It returns the
// hour and minute components only.
func ParseClock(s string) (hour, minute int, err error) {
	trimmed := strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range clockLayouts {
		if t, perr := time.Parse(layout, trimmed); perr == nil {
			return t.Hour(), t.Minute(), nil
		}
	}
	return 0, 0, fmt.Errorf("format: unrecognized time %q", s)
}

// FormatDate renders a date string as DD.Mon.YYYY ("05.Mar.2024").
// Unparseable input is returned unchanged rather than reported as an error.
func FormatDate(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format("02.Jan.2006")
}
