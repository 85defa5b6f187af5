package domain

import (
	"strings"
	"time"
)

// DayKey formats t as a day key in loc.
func DayKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DayKeyLayout)
}

// PreviousDayKey returns the day key one calendar day before t in loc.
// Noon is used so a DST shift can never push the result onto another day.
func PreviousDayKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day()-1, 12, 0, 0, 0, loc).Format(DayKeyLayout)
}

// ResolveDayKey returns rawDate when it already is a valid day key and
// falls back to today's key otherwise. Reported dates are free text.
func ResolveDayKey(rawDate string, now time.Time, loc *time.Location) string {
	rawDate = strings.TrimSpace(rawDate)
	if d, err := time.Parse(DayKeyLayout, rawDate); err == nil {
		return d.Format(DayKeyLayout)
	}
	return DayKey(now, loc)
}

// ReportsPath is the collection holding every user's report for day.
func ReportsPath(day string) string {
	return ReportsCollection + "/" + day + "/" + ReportUsersCollection
}
