package timezone

import "time"

// Instants are stored as integer nanoseconds since epoch. Rendering first
// truncates to milliseconds, then applies the zone's civil calendar rules.
// Sub-millisecond precision is intentionally dropped.

// DayKey identifies one zone-local calendar day. It is a structural key so two
// instants group together iff they fall on the same local date.
type DayKey struct {
	Year  int
	Month time.Month
	Day   int
}

// Local converts a nanosecond instant to a time.Time in the given zone.
func Local(nanos int64, tz TimeZone) time.Time {
	return time.UnixMilli(nanos / 1_000_000).In(location(tz))
}

// DayKeyOf returns the zone-local calendar day of the instant.
func DayKeyOf(nanos int64, tz TimeZone) DayKey {
	t := Local(nanos, tz)
	return DayKey{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// FormatTime renders the local time of day, e.g. "9:00 AM".
func FormatTime(nanos int64, tz TimeZone) string {
	return Local(nanos, tz).Format("3:04 PM")
}

// FormatDateTime renders a short date with time, e.g. "Mon, Jan 6, 9:00 AM".
func FormatDateTime(nanos int64, tz TimeZone) string {
	return Local(nanos, tz).Format("Mon, Jan 2, 3:04 PM")
}

// FormatDate renders the date only, e.g. "Mon, Jan 6, 2025".
func FormatDate(nanos int64, tz TimeZone) string {
	return Local(nanos, tz).Format("Mon, Jan 2, 2006")
}

// location resolves the IANA id. Ids the host tz database does not know fall
// back to UTC, mirroring the catalog's lookup fallback.
func location(tz TimeZone) *time.Location {
	loc, err := time.LoadLocation(tz.ID)
	if err != nil {
		return time.UTC
	}
	return loc
}
