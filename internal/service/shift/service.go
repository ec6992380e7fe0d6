package shift

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/teamhours/officehours-backend-go/internal/domain/shift"
	"github.com/teamhours/officehours-backend-go/internal/pkg/database"
	"github.com/teamhours/officehours-backend-go/internal/pkg/timezone"
	"github.com/teamhours/officehours-backend-go/internal/repository/postgresql"
)

type shiftServiceImpl struct {
	db        *database.DB
	shiftRepo shift.ShiftRepository

	// withTx runs fn inside a database transaction. Stubbed in tests.
	withTx func(ctx context.Context, fn func(tx pgx.Tx) error) error

	// now is the evaluation instant for all window and horizon math.
	// Overridden in tests to pin expansion deterministically.
	now func() time.Time
}

func NewShiftService(db *database.DB, shiftRepo shift.ShiftRepository) shift.ShiftService {
	return &shiftServiceImpl{
		db:        db,
		shiftRepo: shiftRepo,
		withTx: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
		now: time.Now,
	}
}

// ListShifts implements shift.ShiftService.
func (s *shiftServiceImpl) ListShifts(ctx context.Context) ([]shift.ShiftResponse, error) {
	shifts, err := s.shiftRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	return toShiftResponses(shifts), nil
}

// ListPublicShifts implements shift.ShiftService. Only claimed shifts are
// exposed on the unauthenticated surface.
func (s *shiftServiceImpl) ListPublicShifts(ctx context.Context) ([]shift.ShiftResponse, error) {
	shifts, err := s.shiftRepo.ListClaimed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list public shifts: %w", err)
	}
	return toShiftResponses(shifts), nil
}

// CreateShift implements shift.ShiftService.
func (s *shiftServiceImpl) CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	recurrence := shift.RecurrenceNone
	if req.Recurrence != nil {
		recurrence = shift.Recurrence(*req.Recurrence)
	}

	created, err := s.shiftRepo.Create(ctx, shift.Shift{
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Recurrence:  recurrence,
		Notes:       req.Notes,
		MeetingLink: req.MeetingLink,
		CreatedBy:   callerPrincipal(ctx),
	})
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return shift.NewShiftResponse(created), nil
}

// EditShift implements shift.ShiftService. Recurrence is fixed at creation;
// editing rewrites times, text fields, and host only.
func (s *shiftServiceImpl) EditShift(ctx context.Context, req shift.EditShiftRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	existing, err := s.shiftRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	existing.StartTime = req.StartTime
	existing.EndTime = req.EndTime
	existing.Notes = req.Notes
	existing.MeetingLink = req.MeetingLink
	existing.HostName = req.HostName

	if err := s.shiftRepo.Update(ctx, existing); err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	return nil
}

// EditOccurrence implements shift.ShiftService. A single instance of a
// recurring series is detached into a standalone non-recurring shift that
// keeps the series' host.
func (s *shiftServiceImpl) EditOccurrence(ctx context.Context, req shift.EditOccurrenceRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	base, err := s.shiftRepo.GetByID(ctx, req.ShiftID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	detached, err := s.shiftRepo.Create(ctx, shift.Shift{
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Recurrence:  shift.RecurrenceNone,
		Notes:       req.Notes,
		MeetingLink: req.MeetingLink,
		HostName:    base.HostName,
		CreatedBy:   base.CreatedBy,
	})
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to detach occurrence: %w", err)
	}

	return shift.NewShiftResponse(detached), nil
}

// DeleteShift implements shift.ShiftService.
func (s *shiftServiceImpl) DeleteShift(ctx context.Context, id int64) error {
	return s.shiftRepo.Delete(ctx, id)
}

// ClaimShift implements shift.ShiftService. The read surfaces not-found early;
// the write itself is conditional on the row still being unclaimed, so a
// racing claimer that read a stale unclaimed row loses with
// ErrShiftAlreadyClaimed instead of overwriting the winner's host.
func (s *shiftServiceImpl) ClaimShift(ctx context.Context, req shift.ClaimShiftRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	hostName := strings.TrimSpace(req.HostName)

	return s.withTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, postgresql.TxKey, tx)

		existing, err := s.shiftRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}
		if existing.Claimed() {
			return shift.ErrShiftAlreadyClaimed
		}

		return s.shiftRepo.ClaimHost(txCtx, req.ID, hostName)
	})
}

// GetClaimQueue implements shift.ShiftService: unclaimed future occurrences
// within the six-week window, earliest first, rendered in the caller's zone.
func (s *shiftServiceImpl) GetClaimQueue(ctx context.Context, timeZoneID string) ([]shift.OccurrenceResponse, error) {
	shifts, err := s.shiftRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	tz := timezone.Lookup(timeZoneID)
	now := s.now()
	horizon := QueueHorizon(now)

	queue := ClaimQueue(Window(ExpandAll(shifts, horizon), now, horizon))

	responses := make([]shift.OccurrenceResponse, 0, len(queue))
	for _, occ := range queue {
		responses = append(responses, shift.NewOccurrenceResponse(occ, tz))
	}
	return responses, nil
}

// GetCalendar implements shift.ShiftService.
func (s *shiftServiceImpl) GetCalendar(ctx context.Context, req shift.CalendarRequest) (shift.CalendarResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.CalendarResponse{}, err
	}

	shifts, err := s.shiftRepo.List(ctx)
	if err != nil {
		return shift.CalendarResponse{}, fmt.Errorf("failed to list shifts: %w", err)
	}
	return s.projectCalendar(shifts, req), nil
}

// GetPublicCalendar implements shift.ShiftService over the claimed-only set.
func (s *shiftServiceImpl) GetPublicCalendar(ctx context.Context, req shift.CalendarRequest) (shift.CalendarResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.CalendarResponse{}, err
	}

	shifts, err := s.shiftRepo.ListClaimed(ctx)
	if err != nil {
		return shift.CalendarResponse{}, fmt.Errorf("failed to list public shifts: %w", err)
	}
	return s.projectCalendar(shifts, req), nil
}

// PublicFeed implements shift.ShiftService.
func (s *shiftServiceImpl) PublicFeed(ctx context.Context) (string, error) {
	shifts, err := s.shiftRepo.ListClaimed(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list public shifts: %w", err)
	}
	return BuildFeed(shifts, s.now()), nil
}

// GetAdminSummary implements shift.ShiftService: claim statistics over the
// same six-week window the claim queue uses.
func (s *shiftServiceImpl) GetAdminSummary(ctx context.Context) (shift.AdminSummaryResponse, error) {
	shifts, err := s.shiftRepo.List(ctx)
	if err != nil {
		return shift.AdminSummaryResponse{}, fmt.Errorf("failed to list shifts: %w", err)
	}

	now := s.now()
	horizon := QueueHorizon(now)

	return Summarize(Window(ExpandAll(shifts, horizon), now, horizon)), nil
}

func (s *shiftServiceImpl) projectCalendar(shifts []shift.Shift, req shift.CalendarRequest) shift.CalendarResponse {
	tz := timezone.Lookup(req.TimeZoneID)
	grid := ProjectMonth(shifts, tz, req.Year, time.Month(req.Month), s.now())

	days := make([]shift.CalendarDayResponse, 0, len(grid.Cells))
	for _, cell := range grid.Cells {
		day := shift.CalendarDayResponse{Day: cell.Day}
		for _, occ := range cell.Occurrences {
			day.Occurrences = append(day.Occurrences, shift.NewOccurrenceResponse(occ, tz))
		}
		days = append(days, day)
	}

	return shift.CalendarResponse{
		Year:     grid.Year,
		Month:    int(grid.Month),
		TimeZone: tz,
		Days:     days,
	}
}

func toShiftResponses(shifts []shift.Shift) []shift.ShiftResponse {
	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, shift.NewShiftResponse(sh))
	}
	return responses
}

// callerPrincipal pulls the authenticated principal from the JWT claims, or
// returns "" for unauthenticated contexts.
func callerPrincipal(ctx context.Context) string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return ""
	}
	principal, _ := claims["principal"].(string)
	return principal
}
