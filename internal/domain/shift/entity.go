package shift

import (
	"strings"
	"time"
)

// Recurrence is a closed set of repeat cadences. Cadences are fixed-day
// approximations: a "monthly" shift repeats every 30 days, not on calendar
// month boundaries. Changing this would change observable occurrence dates.
type Recurrence string

const (
	RecurrenceNone     Recurrence = "none"
	RecurrenceWeekly   Recurrence = "weekly"
	RecurrenceBiweekly Recurrence = "biweekly"
	RecurrenceMonthly  Recurrence = "monthly"
)

var RecurrenceValues = []string{
	string(RecurrenceNone),
	string(RecurrenceWeekly),
	string(RecurrenceBiweekly),
	string(RecurrenceMonthly),
}

const dayMillis = 24 * 60 * 60 * 1000

// IncrementMillis returns the repeat step in milliseconds, or 0 for none.
func (r Recurrence) IncrementMillis() int64 {
	switch r {
	case RecurrenceWeekly:
		return 7 * dayMillis
	case RecurrenceBiweekly:
		return 14 * dayMillis
	case RecurrenceMonthly:
		return 30 * dayMillis
	default:
		return 0
	}
}

// Shift is one stored office-hours slot. StartTime/EndTime are integer
// nanoseconds since epoch, the unit all instants use at the wire boundary.
// A blank HostName marks the shift as unclaimed.
type Shift struct {
	ID          int64
	StartTime   int64
	EndTime     int64
	Recurrence  Recurrence
	Notes       string
	MeetingLink string
	HostName    string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Claimed reports whether the shift has a non-blank host.
func (s *Shift) Claimed() bool {
	return strings.TrimSpace(s.HostName) != ""
}

// Occurrence is one concrete calendar instance of a (possibly recurring)
// shift. Derived, never persisted. ShiftID is not unique across occurrences
// of the same recurring shift; identity is (ShiftID, StartTime).
type Occurrence struct {
	ShiftID     int64
	StartTime   int64
	EndTime     int64
	Notes       string
	MeetingLink string
	HostName    string
}

// Claimed reports whether the occurrence's host name is non-blank.
func (o Occurrence) Claimed() bool {
	return strings.TrimSpace(o.HostName) != ""
}
