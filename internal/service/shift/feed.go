package shift

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/teamhours/officehours-backend-go/internal/domain/shift"
)

// BuildFeed renders claimed shifts as an iCalendar document so team members
// can subscribe from their own calendar clients. Occurrences are generated up
// to the same six-month horizon as the calendar view. Event UIDs combine
// shift id and start instant because the id alone repeats across occurrences
// of a recurring shift.
func BuildFeed(shifts []shift.Shift, now time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//teamhours//officehours-backend-go//EN")

	horizon := Horizon(now)
	for _, occ := range ExpandAll(shifts, horizon) {
		uid := fmt.Sprintf("shift-%d-%d@officehours", occ.ShiftID, occ.StartTime)
		event := cal.AddEvent(uid)
		event.SetDtStampTime(now.UTC())
		event.SetStartAt(time.UnixMilli(occ.StartTime / 1_000_000).UTC())
		event.SetEndAt(time.UnixMilli(occ.EndTime / 1_000_000).UTC())

		if occ.Claimed() {
			event.SetSummary("Office hours: " + occ.HostName)
		} else {
			event.SetSummary("Office hours (unclaimed)")
		}
		if occ.Notes != "" {
			event.SetDescription(occ.Notes)
		}
		if occ.MeetingLink != "" {
			event.SetURL(occ.MeetingLink)
		}
	}

	return cal.Serialize()
}
