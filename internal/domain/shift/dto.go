package shift

import (
	"strings"
	"time"

	"github.com/teamhours/officehours-backend-go/internal/pkg/timezone"
	"github.com/teamhours/officehours-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	StartTime   int64   `json:"start_time"`
	EndTime     int64   `json:"end_time"`
	Recurrence  *string `json:"recurrence,omitempty"`
	Notes       string  `json:"notes"`
	MeetingLink string  `json:"meeting_link"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartTime <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a positive nanosecond timestamp",
		})
	}
	if r.EndTime <= r.StartTime {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be after start_time",
		})
	}
	if r.Recurrence != nil && !validator.IsInSlice(*r.Recurrence, RecurrenceValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "recurrence",
			Message: "recurrence must be one of: " + strings.Join(RecurrenceValues, ", "),
		})
	}
	if !validator.IsValidMeetingLink(r.MeetingLink) {
		errs = append(errs, validator.ValidationError{
			Field:   "meeting_link",
			Message: "meeting_link must be an http(s) URL",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EditShiftRequest struct {
	ID          int64  `json:"-"`
	StartTime   int64  `json:"start_time"`
	EndTime     int64  `json:"end_time"`
	Notes       string `json:"notes"`
	MeetingLink string `json:"meeting_link"`
	HostName    string `json:"host_name"`
}

func (r *EditShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartTime <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a positive nanosecond timestamp",
		})
	}
	if r.EndTime <= r.StartTime {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be after start_time",
		})
	}
	if !validator.IsValidMeetingLink(r.MeetingLink) {
		errs = append(errs, validator.ValidationError{
			Field:   "meeting_link",
			Message: "meeting_link must be an http(s) URL",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EditOccurrenceRequest materializes a single instance of a recurring shift as
// a standalone shift so one date can differ without touching the series.
type EditOccurrenceRequest struct {
	ShiftID     int64  `json:"-"`
	StartTime   int64  `json:"start_time"`
	EndTime     int64  `json:"end_time"`
	Notes       string `json:"notes"`
	MeetingLink string `json:"meeting_link"`
}

func (r *EditOccurrenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartTime <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a positive nanosecond timestamp",
		})
	}
	if r.EndTime <= r.StartTime {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be after start_time",
		})
	}
	if !validator.IsValidMeetingLink(r.MeetingLink) {
		errs = append(errs, validator.ValidationError{
			Field:   "meeting_link",
			Message: "meeting_link must be an http(s) URL",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClaimShiftRequest struct {
	ID       int64  `json:"-"`
	HostName string `json:"host_name"`
}

func (r *ClaimShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.HostName) {
		errs = append(errs, validator.ValidationError{
			Field:   "host_name",
			Message: "host_name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CalendarRequest struct {
	Year       int
	Month      int
	TimeZoneID string
}

func (r *CalendarRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 1970 || r.Year > 9999 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 1970 and 9999",
		})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	// An unknown time zone id is not an error: it falls back to UTC.

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftResponse struct {
	ID          int64  `json:"id"`
	StartTime   int64  `json:"start_time"`
	EndTime     int64  `json:"end_time"`
	Recurrence  string `json:"recurrence"`
	Notes       string `json:"notes"`
	MeetingLink string `json:"meeting_link"`
	HostName    string `json:"host_name"`
	Claimed     bool   `json:"claimed"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

func NewShiftResponse(s Shift) ShiftResponse {
	resp := ShiftResponse{
		ID:          s.ID,
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		Recurrence:  string(s.Recurrence),
		Notes:       s.Notes,
		MeetingLink: s.MeetingLink,
		HostName:    s.HostName,
		Claimed:     s.Claimed(),
	}
	if !s.CreatedAt.IsZero() {
		resp.CreatedAt = s.CreatedAt.Format(time.RFC3339)
	}
	if !s.UpdatedAt.IsZero() {
		resp.UpdatedAt = s.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

// OccurrenceResponse is one concrete instance with display strings rendered in
// the viewer's zone.
type OccurrenceResponse struct {
	ShiftID     int64  `json:"shift_id"`
	StartTime   int64  `json:"start_time"`
	EndTime     int64  `json:"end_time"`
	Notes       string `json:"notes"`
	MeetingLink string `json:"meeting_link"`
	HostName    string `json:"host_name"`
	Claimed     bool   `json:"claimed"`
	StartLabel  string `json:"start_label"`
	DateLabel   string `json:"date_label"`
}

func NewOccurrenceResponse(o Occurrence, tz timezone.TimeZone) OccurrenceResponse {
	return OccurrenceResponse{
		ShiftID:     o.ShiftID,
		StartTime:   o.StartTime,
		EndTime:     o.EndTime,
		Notes:       o.Notes,
		MeetingLink: o.MeetingLink,
		HostName:    o.HostName,
		Claimed:     o.Claimed(),
		StartLabel:  timezone.FormatTime(o.StartTime, tz),
		DateLabel:   timezone.FormatDateTime(o.StartTime, tz),
	}
}

// CalendarDayResponse is one grid cell. Day 0 marks a padding cell before the
// first of the month.
type CalendarDayResponse struct {
	Day         int                  `json:"day"`
	Occurrences []OccurrenceResponse `json:"occurrences,omitempty"`
}

type CalendarResponse struct {
	Year     int                   `json:"year"`
	Month    int                   `json:"month"`
	TimeZone timezone.TimeZone     `json:"time_zone"`
	Days     []CalendarDayResponse `json:"days"`
}

type ShiftStats struct {
	TotalShifts     int64 `json:"total_shifts"`
	ClaimedShifts   int64 `json:"claimed_shifts"`
	UnclaimedShifts int64 `json:"unclaimed_shifts"`
}

type AssociateSummary struct {
	Name          string `json:"name"`
	ClaimedShifts int64  `json:"claimed_shifts"`
}

type AdminSummaryResponse struct {
	ShiftStats         ShiftStats         `json:"shift_stats"`
	AssociateSummaries []AssociateSummary `json:"associate_summaries"`
}
