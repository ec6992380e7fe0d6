package shift

import (
	"time"

	"github.com/teamhours/officehours-backend-go/internal/domain/shift"
)

// Occurrence arithmetic happens in milliseconds and converts back to
// nanoseconds only at the boundary. The horizon windows use the same fixed-day
// approximation as the recurrence increments (a "month" is 30 days), so a
// monthly shift and the six-month horizon drift together. Fixing either to
// true calendar months would change observable occurrence dates.

const (
	millisPerDay = 24 * 60 * 60 * 1000

	horizonDays     = 6 * 30 // six approximated months
	queueWindowDays = 6 * 7  // six weeks
)

// Horizon returns the furthest future instant (ns) up to which recurring
// occurrences are generated for calendar projection.
func Horizon(now time.Time) int64 {
	return (now.UnixMilli() + horizonDays*millisPerDay) * 1_000_000
}

// QueueHorizon returns the end (ns) of the claim-queue and admin-summary
// window.
func QueueHorizon(now time.Time) int64 {
	return (now.UnixMilli() + queueWindowDays*millisPerDay) * 1_000_000
}

// Expand produces the finite, deterministic occurrence sequence for one
// shift. The base occurrence is always emitted first, even when it already
// lies beyond horizonEnd; only the generated repeats are horizon-bounded.
// Duration is preserved exactly from the base shift, and a non-positive
// duration cannot loop: termination is governed by the positive increment.
func Expand(s shift.Shift, horizonEnd int64) []shift.Occurrence {
	occs := []shift.Occurrence{occurrenceOf(s, s.StartTime, s.EndTime)}

	inc := s.Recurrence.IncrementMillis()
	if inc <= 0 {
		return occs
	}

	duration := s.EndTime - s.StartTime
	startMillis := s.StartTime / 1_000_000
	horizonMillis := horizonEnd / 1_000_000

	for candidate := startMillis + inc; candidate <= horizonMillis; candidate += inc {
		start := candidate * 1_000_000
		occs = append(occs, occurrenceOf(s, start, start+duration))
	}
	return occs
}

// ExpandAll flattens the expansion of every shift into one occurrence list.
func ExpandAll(shifts []shift.Shift, horizonEnd int64) []shift.Occurrence {
	var occs []shift.Occurrence
	for _, s := range shifts {
		occs = append(occs, Expand(s, horizonEnd)...)
	}
	return occs
}

func occurrenceOf(s shift.Shift, start, end int64) shift.Occurrence {
	return shift.Occurrence{
		ShiftID:     s.ID,
		StartTime:   start,
		EndTime:     end,
		Notes:       s.Notes,
		MeetingLink: s.MeetingLink,
		HostName:    s.HostName,
	}
}
