package shift

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamhours/officehours-backend-go/internal/domain/shift"
	"github.com/teamhours/officehours-backend-go/internal/pkg/validator"
)

// fakeShiftRepo is an in-memory shift.ShiftRepository for service tests.
type fakeShiftRepo struct {
	shifts []shift.Shift
	nextID int64
}

func (f *fakeShiftRepo) Create(_ context.Context, s shift.Shift) (shift.Shift, error) {
	f.nextID++
	s.ID = f.nextID
	f.shifts = append(f.shifts, s)
	return s, nil
}

func (f *fakeShiftRepo) GetByID(_ context.Context, id int64) (shift.Shift, error) {
	for _, s := range f.shifts {
		if s.ID == id {
			return s, nil
		}
	}
	return shift.Shift{}, shift.ErrShiftNotFound
}

func (f *fakeShiftRepo) List(_ context.Context) ([]shift.Shift, error) {
	return f.shifts, nil
}

func (f *fakeShiftRepo) ListClaimed(_ context.Context) ([]shift.Shift, error) {
	var claimed []shift.Shift
	for _, s := range f.shifts {
		if s.Claimed() {
			claimed = append(claimed, s)
		}
	}
	return claimed, nil
}

func (f *fakeShiftRepo) Update(_ context.Context, s shift.Shift) error {
	for i := range f.shifts {
		if f.shifts[i].ID == s.ID {
			f.shifts[i] = s
			return nil
		}
	}
	return shift.ErrShiftNotFound
}

func (f *fakeShiftRepo) ClaimHost(_ context.Context, id int64, hostName string) error {
	for i := range f.shifts {
		if f.shifts[i].ID == id {
			if f.shifts[i].Claimed() {
				return shift.ErrShiftAlreadyClaimed
			}
			f.shifts[i].HostName = hostName
			return nil
		}
	}
	return shift.ErrShiftAlreadyClaimed
}

func (f *fakeShiftRepo) Delete(_ context.Context, id int64) error {
	for i := range f.shifts {
		if f.shifts[i].ID == id {
			f.shifts = append(f.shifts[:i], f.shifts[i+1:]...)
			return nil
		}
	}
	return shift.ErrShiftNotFound
}

var testNow = time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)

func newTestService(repo shift.ShiftRepository) *shiftServiceImpl {
	return &shiftServiceImpl{
		shiftRepo: repo,
		withTx: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return fn(nil)
		},
		now: func() time.Time { return testNow },
	}
}

func seedShift(repo *fakeShiftRepo, start time.Time, recurrence shift.Recurrence, host string) shift.Shift {
	s, _ := repo.Create(context.Background(), shift.Shift{
		StartTime:  nanosAt(start),
		EndTime:    nanosAt(start.Add(time.Hour)),
		Recurrence: recurrence,
		HostName:   host,
	})
	return s
}

func TestShiftService_CreateShift_InvalidTimeRange(t *testing.T) {
	svc := newTestService(&fakeShiftRepo{})

	_, err := svc.CreateShift(context.Background(), shift.CreateShiftRequest{
		StartTime: nanosAt(testNow),
		EndTime:   nanosAt(testNow) - 1,
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "end_time")
}

func TestShiftService_CreateShift_DefaultsToNoRecurrence(t *testing.T) {
	repo := &fakeShiftRepo{}
	svc := newTestService(repo)

	created, err := svc.CreateShift(context.Background(), shift.CreateShiftRequest{
		StartTime: nanosAt(testNow.Add(24 * time.Hour)),
		EndTime:   nanosAt(testNow.Add(25 * time.Hour)),
	})

	require.NoError(t, err)
	assert.Equal(t, string(shift.RecurrenceNone), created.Recurrence)
	assert.False(t, created.Claimed)
}

func TestShiftService_ListPublicShifts_ClaimedOnly(t *testing.T) {
	repo := &fakeShiftRepo{}
	seedShift(repo, testNow.Add(24*time.Hour), shift.RecurrenceNone, "Alice")
	seedShift(repo, testNow.Add(48*time.Hour), shift.RecurrenceNone, "")
	svc := newTestService(repo)

	public, err := svc.ListPublicShifts(context.Background())

	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "Alice", public[0].HostName)
}

func TestShiftService_GetClaimQueue_UnclaimedFutureOnly(t *testing.T) {
	repo := &fakeShiftRepo{}
	seedShift(repo, testNow.Add(-24*time.Hour), shift.RecurrenceNone, "")        // past
	seedShift(repo, testNow.Add(24*time.Hour), shift.RecurrenceNone, "Alice")   // claimed
	unclaimed := seedShift(repo, testNow.Add(48*time.Hour), shift.RecurrenceNone, "  ")
	seedShift(repo, testNow.Add(50*24*time.Hour), shift.RecurrenceNone, "")     // beyond six weeks
	svc := newTestService(repo)

	queue, err := svc.GetClaimQueue(context.Background(), "UTC")

	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, unclaimed.ID, queue[0].ShiftID)
	assert.False(t, queue[0].Claimed)
}

func TestShiftService_GetClaimQueue_RendersCallerZoneLabels(t *testing.T) {
	repo := &fakeShiftRepo{}
	// 17:00 UTC on Jan 7 is 9:00 AM in Los Angeles.
	seedShift(repo, time.Date(2025, 1, 7, 17, 0, 0, 0, time.UTC), shift.RecurrenceNone, "")
	svc := newTestService(repo)

	queue, err := svc.GetClaimQueue(context.Background(), "America/Los_Angeles")

	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, "9:00 AM", queue[0].StartLabel)
	assert.Equal(t, "Tue, Jan 7, 9:00 AM", queue[0].DateLabel)
}

func TestShiftService_GetAdminSummary_WindowedStats(t *testing.T) {
	repo := &fakeShiftRepo{}
	seedShift(repo, testNow.Add(24*time.Hour), shift.RecurrenceNone, "Alice")
	seedShift(repo, testNow.Add(48*time.Hour), shift.RecurrenceNone, "Alice")
	seedShift(repo, testNow.Add(72*time.Hour), shift.RecurrenceNone, "Bob")
	seedShift(repo, testNow.Add(96*time.Hour), shift.RecurrenceNone, "")
	svc := newTestService(repo)

	summary, err := svc.GetAdminSummary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), summary.ShiftStats.TotalShifts)
	assert.Equal(t, int64(3), summary.ShiftStats.ClaimedShifts)
	assert.Equal(t, int64(1), summary.ShiftStats.UnclaimedShifts)
	require.Len(t, summary.AssociateSummaries, 2)
	assert.Equal(t, "Alice", summary.AssociateSummaries[0].Name)
	assert.Equal(t, int64(2), summary.AssociateSummaries[0].ClaimedShifts)
}

func TestShiftService_EditOccurrence_DetachesStandaloneShift(t *testing.T) {
	repo := &fakeShiftRepo{}
	base := seedShift(repo, testNow.Add(24*time.Hour), shift.RecurrenceWeekly, "Alice")
	svc := newTestService(repo)

	newStart := testNow.Add(26 * time.Hour)
	detached, err := svc.EditOccurrence(context.Background(), shift.EditOccurrenceRequest{
		ShiftID:   base.ID,
		StartTime: nanosAt(newStart),
		EndTime:   nanosAt(newStart.Add(time.Hour)),
		Notes:     "moved this week only",
	})

	require.NoError(t, err)
	assert.NotEqual(t, base.ID, detached.ID)
	assert.Equal(t, string(shift.RecurrenceNone), detached.Recurrence)
	assert.Equal(t, "Alice", detached.HostName)

	// The original series is untouched.
	original, err := repo.GetByID(context.Background(), base.ID)
	require.NoError(t, err)
	assert.Equal(t, shift.RecurrenceWeekly, original.Recurrence)
}

func TestShiftService_EditShift_NotFound(t *testing.T) {
	svc := newTestService(&fakeShiftRepo{})

	err := svc.EditShift(context.Background(), shift.EditShiftRequest{
		ID:        99,
		StartTime: nanosAt(testNow),
		EndTime:   nanosAt(testNow.Add(time.Hour)),
	})

	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
}

func TestShiftService_GetCalendar_UnknownZoneFallsBackToUTC(t *testing.T) {
	repo := &fakeShiftRepo{}
	seedShift(repo, time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC), shift.RecurrenceNone, "Alice")
	svc := newTestService(repo)

	calendar, err := svc.GetCalendar(context.Background(), shift.CalendarRequest{
		Year:       2025,
		Month:      1,
		TimeZoneID: "Mars/Olympus_Mons",
	})

	require.NoError(t, err)
	assert.Equal(t, "UTC", calendar.TimeZone.ID)
	// January 2025 starts on a Wednesday: three padding cells.
	require.Len(t, calendar.Days, 3+31)
	assert.Equal(t, 0, calendar.Days[0].Day)
	assert.Equal(t, 1, calendar.Days[3].Day)
}

func TestShiftService_GetPublicCalendar_ExcludesUnclaimed(t *testing.T) {
	repo := &fakeShiftRepo{}
	seedShift(repo, time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC), shift.RecurrenceNone, "Alice")
	seedShift(repo, time.Date(2025, 1, 15, 11, 0, 0, 0, time.UTC), shift.RecurrenceNone, "")
	svc := newTestService(repo)

	req := shift.CalendarRequest{Year: 2025, Month: 1, TimeZoneID: "UTC"}

	full, err := svc.GetCalendar(context.Background(), req)
	require.NoError(t, err)
	public, err := svc.GetPublicCalendar(context.Background(), req)
	require.NoError(t, err)

	day15Full := full.Days[3+14]
	day15Public := public.Days[3+14]
	assert.Len(t, day15Full.Occurrences, 2)
	require.Len(t, day15Public.Occurrences, 1)
	assert.Equal(t, "Alice", day15Public.Occurrences[0].HostName)
}

// staleReadRepo simulates a read-committed race: GetByID reports the shift as
// unclaimed even after another claimer has written a host.
type staleReadRepo struct {
	*fakeShiftRepo
}

func (r *staleReadRepo) GetByID(ctx context.Context, id int64) (shift.Shift, error) {
	s, err := r.fakeShiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.Shift{}, err
	}
	s.HostName = ""
	return s, nil
}

func TestShiftService_ClaimShift_Success(t *testing.T) {
	repo := &fakeShiftRepo{}
	s := seedShift(repo, testNow.Add(24*time.Hour), shift.RecurrenceNone, "")
	svc := newTestService(repo)

	err := svc.ClaimShift(context.Background(), shift.ClaimShiftRequest{ID: s.ID, HostName: "  Alice  "})

	require.NoError(t, err)
	claimed, err := repo.GetByID(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", claimed.HostName)
}

func TestShiftService_ClaimShift_AlreadyClaimed(t *testing.T) {
	repo := &fakeShiftRepo{}
	s := seedShift(repo, testNow.Add(24*time.Hour), shift.RecurrenceNone, "Alice")
	svc := newTestService(repo)

	err := svc.ClaimShift(context.Background(), shift.ClaimShiftRequest{ID: s.ID, HostName: "Bob"})

	assert.ErrorIs(t, err, shift.ErrShiftAlreadyClaimed)
}

func TestShiftService_ClaimShift_StaleReadCannotOverwriteWinner(t *testing.T) {
	repo := &fakeShiftRepo{}
	s := seedShift(repo, testNow.Add(24*time.Hour), shift.RecurrenceNone, "Alice")
	// The pre-check read sees the row as still unclaimed; only the conditional
	// write decides the race.
	svc := newTestService(&staleReadRepo{fakeShiftRepo: repo})

	err := svc.ClaimShift(context.Background(), shift.ClaimShiftRequest{ID: s.ID, HostName: "Bob"})

	assert.ErrorIs(t, err, shift.ErrShiftAlreadyClaimed)
	current, getErr := repo.GetByID(context.Background(), s.ID)
	require.NoError(t, getErr)
	assert.Equal(t, "Alice", current.HostName)
}

func TestShiftService_ClaimShift_NotFound(t *testing.T) {
	svc := newTestService(&fakeShiftRepo{})

	err := svc.ClaimShift(context.Background(), shift.ClaimShiftRequest{ID: 99, HostName: "Bob"})

	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
}

func TestShiftService_DeleteShift_RemovesShift(t *testing.T) {
	repo := &fakeShiftRepo{}
	s := seedShift(repo, testNow.Add(24*time.Hour), shift.RecurrenceNone, "")
	svc := newTestService(repo)

	require.NoError(t, svc.DeleteShift(context.Background(), s.ID))
	assert.ErrorIs(t, svc.DeleteShift(context.Background(), s.ID), shift.ErrShiftNotFound)
}
