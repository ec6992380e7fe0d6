package shift

import "context"

type ShiftService interface {
	// Shift CRUD
	ListShifts(ctx context.Context) ([]ShiftResponse, error)
	ListPublicShifts(ctx context.Context) ([]ShiftResponse, error)
	CreateShift(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	EditShift(ctx context.Context, req EditShiftRequest) error
	EditOccurrence(ctx context.Context, req EditOccurrenceRequest) (ShiftResponse, error)
	DeleteShift(ctx context.Context, id int64) error

	// Claiming
	ClaimShift(ctx context.Context, req ClaimShiftRequest) error
	GetClaimQueue(ctx context.Context, timeZoneID string) ([]OccurrenceResponse, error)

	// Projections
	GetCalendar(ctx context.Context, req CalendarRequest) (CalendarResponse, error)
	GetPublicCalendar(ctx context.Context, req CalendarRequest) (CalendarResponse, error)
	PublicFeed(ctx context.Context) (string, error)

	// Admin
	GetAdminSummary(ctx context.Context) (AdminSummaryResponse, error)
}
