package shift

import (
	"sort"
	"time"

	"github.com/teamhours/officehours-backend-go/internal/domain/shift"
)

// Window keeps occurrences starting at or after now and no later than
// horizonEnd. Both the claim queue and the admin summary read from the same
// windowed set.
func Window(occs []shift.Occurrence, now time.Time, horizonEnd int64) []shift.Occurrence {
	nowNanos := now.UnixMilli() * 1_000_000

	windowed := make([]shift.Occurrence, 0, len(occs))
	for _, o := range occs {
		if o.StartTime >= nowNanos && o.StartTime <= horizonEnd {
			windowed = append(windowed, o)
		}
	}
	return windowed
}

// ClaimQueue filters to occurrences with a blank or whitespace-only host name
// and sorts them by start time ascending.
func ClaimQueue(occs []shift.Occurrence) []shift.Occurrence {
	queue := make([]shift.Occurrence, 0, len(occs))
	for _, o := range occs {
		if !o.Claimed() {
			queue = append(queue, o)
		}
	}
	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].StartTime < queue[j].StartTime
	})
	return queue
}

// Summarize computes claim statistics over a windowed occurrence set plus a
// per-host breakdown ordered by claimed count descending, ties alphabetical.
func Summarize(occs []shift.Occurrence) shift.AdminSummaryResponse {
	var stats shift.ShiftStats
	counts := make(map[string]int64)

	for _, o := range occs {
		stats.TotalShifts++
		if o.Claimed() {
			stats.ClaimedShifts++
			counts[o.HostName]++
		} else {
			stats.UnclaimedShifts++
		}
	}

	summaries := make([]shift.AssociateSummary, 0, len(counts))
	for name, claimed := range counts {
		summaries = append(summaries, shift.AssociateSummary{Name: name, ClaimedShifts: claimed})
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].ClaimedShifts != summaries[j].ClaimedShifts {
			return summaries[i].ClaimedShifts > summaries[j].ClaimedShifts
		}
		return summaries[i].Name < summaries[j].Name
	})

	return shift.AdminSummaryResponse{
		ShiftStats:         stats,
		AssociateSummaries: summaries,
	}
}
