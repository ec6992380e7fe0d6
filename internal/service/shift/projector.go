package shift

import (
	"sort"
	"time"

	"github.com/teamhours/officehours-backend-go/internal/domain/shift"
	"github.com/teamhours/officehours-backend-go/internal/pkg/timezone"
)

// DayCell is one cell of the month grid. Day 0 marks a padding cell before
// the first of the month (Sunday-first layout).
type DayCell struct {
	Day         int
	Occurrences []shift.Occurrence
}

// MonthGrid is the projection of all shifts onto one displayed month in one
// viewing zone.
type MonthGrid struct {
	Year  int
	Month time.Month
	Cells []DayCell
}

// ProjectMonth expands every shift up to the global six-month horizon, groups
// the occurrences by zone-local calendar day, and lays the requested month
// out as a Sunday-first grid. The horizon is anchored at now, not at the
// displayed month: paging past the horizon shows only base occurrences.
func ProjectMonth(shifts []shift.Shift, tz timezone.TimeZone, year int, month time.Month, now time.Time) MonthGrid {
	horizon := Horizon(now)

	byDay := make(map[timezone.DayKey][]shift.Occurrence)
	for _, occ := range ExpandAll(shifts, horizon) {
		key := timezone.DayKeyOf(occ.StartTime, tz)
		byDay[key] = append(byDay[key], occ)
	}
	for _, occs := range byDay {
		sort.SliceStable(occs, func(i, j int) bool {
			return occs[i].StartTime < occs[j].StartTime
		})
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cells := make([]DayCell, 0, int(first.Weekday())+daysInMonth)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, DayCell{})
	}
	for day := 1; day <= daysInMonth; day++ {
		key := timezone.DayKey{Year: year, Month: month, Day: day}
		cells = append(cells, DayCell{Day: day, Occurrences: byDay[key]})
	}

	return MonthGrid{Year: year, Month: month, Cells: cells}
}
