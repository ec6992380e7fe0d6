package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamhours/officehours-backend-go/internal/domain/shift"
	"github.com/teamhours/officehours-backend-go/internal/pkg/timezone"
)

func oneOff(id int64, start time.Time, d time.Duration) shift.Shift {
	return shift.Shift{
		ID:         id,
		StartTime:  nanosAt(start),
		EndTime:    nanosAt(start.Add(d)),
		Recurrence: shift.RecurrenceNone,
	}
}

func cellForDay(t *testing.T, grid MonthGrid, day int) DayCell {
	t.Helper()
	for _, cell := range grid.Cells {
		if cell.Day == day {
			return cell
		}
	}
	t.Fatalf("day %d not found in grid", day)
	return DayCell{}
}

func TestProjectMonth_GroupsSameLocalDay(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	shifts := []shift.Shift{
		oneOff(1, time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC), time.Hour),
		oneOff(2, time.Date(2025, 3, 10, 14, 5, 0, 0, time.UTC), time.Hour),
	}

	grid := ProjectMonth(shifts, timezone.UTC, 2025, time.March, now)

	cell := cellForDay(t, grid, 10)
	require.Len(t, cell.Occurrences, 2)
	assert.Equal(t, int64(1), cell.Occurrences[0].ShiftID)
	assert.Equal(t, int64(2), cell.Occurrences[1].ShiftID)
}

func TestProjectMonth_MidnightStraddleLandsOnLocalDay(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	// 03:30 UTC on March 10 is 23:30 on March 9 in New York (EDT).
	s := oneOff(1, time.Date(2025, 3, 10, 3, 30, 0, 0, time.UTC), time.Hour)

	utcGrid := ProjectMonth([]shift.Shift{s}, timezone.UTC, 2025, time.March, now)
	nyGrid := ProjectMonth([]shift.Shift{s}, timezone.Lookup("America/New_York"), 2025, time.March, now)

	assert.Len(t, cellForDay(t, utcGrid, 10).Occurrences, 1)
	assert.Empty(t, cellForDay(t, utcGrid, 9).Occurrences)

	assert.Len(t, cellForDay(t, nyGrid, 9).Occurrences, 1)
	assert.Empty(t, cellForDay(t, nyGrid, 10).Occurrences)
}

func TestProjectMonth_SundayFirstPadding(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	// March 1, 2025 is a Saturday: six padding cells before it.
	grid := ProjectMonth(nil, timezone.UTC, 2025, time.March, now)

	require.Len(t, grid.Cells, 6+31)
	for i := 0; i < 6; i++ {
		assert.Equal(t, 0, grid.Cells[i].Day, "cell %d should be padding", i)
	}
	assert.Equal(t, 1, grid.Cells[6].Day)
	assert.Equal(t, 31, grid.Cells[len(grid.Cells)-1].Day)
}

func TestProjectMonth_SortsOccurrencesWithinDay(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	shifts := []shift.Shift{
		oneOff(1, time.Date(2025, 3, 5, 16, 0, 0, 0, time.UTC), time.Hour),
		oneOff(2, time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC), time.Hour),
	}

	grid := ProjectMonth(shifts, timezone.UTC, 2025, time.March, now)

	cell := cellForDay(t, grid, 5)
	require.Len(t, cell.Occurrences, 2)
	assert.Equal(t, int64(2), cell.Occurrences[0].ShiftID)
	assert.Equal(t, int64(1), cell.Occurrences[1].ShiftID)
}

func TestProjectMonth_RecurringShiftFillsMonth(t *testing.T) {
	now := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	s := shift.Shift{
		ID:         1,
		StartTime:  nanosAt(time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)),
		EndTime:    nanosAt(time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)),
		Recurrence: shift.RecurrenceWeekly,
	}

	grid := ProjectMonth([]shift.Shift{s}, timezone.UTC, 2025, time.January, now)

	// Mondays: Jan 6, 13, 20, 27.
	for _, day := range []int{6, 13, 20, 27} {
		assert.Len(t, cellForDay(t, grid, day).Occurrences, 1, "day %d", day)
	}
	assert.Empty(t, cellForDay(t, grid, 7).Occurrences)
}
