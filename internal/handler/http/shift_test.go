package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamhours/officehours-backend-go/internal/domain/shift"
)

// fakeShiftService stubs shift.ShiftService for handler tests.
type fakeShiftService struct {
	shifts   []shift.ShiftResponse
	queue    []shift.OccurrenceResponse
	calendar shift.CalendarResponse
	summary  shift.AdminSummaryResponse
	feed     string
	claimErr error
}

func (f *fakeShiftService) ListShifts(context.Context) ([]shift.ShiftResponse, error) {
	return f.shifts, nil
}

func (f *fakeShiftService) ListPublicShifts(context.Context) ([]shift.ShiftResponse, error) {
	return f.shifts, nil
}

func (f *fakeShiftService) CreateShift(_ context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}
	return shift.ShiftResponse{ID: 1, StartTime: req.StartTime, EndTime: req.EndTime}, nil
}

func (f *fakeShiftService) EditShift(_ context.Context, req shift.EditShiftRequest) error {
	if req.ID == 404 {
		return shift.ErrShiftNotFound
	}
	return nil
}

func (f *fakeShiftService) EditOccurrence(_ context.Context, req shift.EditOccurrenceRequest) (shift.ShiftResponse, error) {
	return shift.ShiftResponse{ID: req.ShiftID + 1}, nil
}

func (f *fakeShiftService) DeleteShift(context.Context, int64) error { return nil }

func (f *fakeShiftService) ClaimShift(context.Context, shift.ClaimShiftRequest) error {
	return f.claimErr
}

func (f *fakeShiftService) GetClaimQueue(context.Context, string) ([]shift.OccurrenceResponse, error) {
	return f.queue, nil
}

func (f *fakeShiftService) GetCalendar(context.Context, shift.CalendarRequest) (shift.CalendarResponse, error) {
	return f.calendar, nil
}

func (f *fakeShiftService) GetPublicCalendar(context.Context, shift.CalendarRequest) (shift.CalendarResponse, error) {
	return f.calendar, nil
}

func (f *fakeShiftService) PublicFeed(context.Context) (string, error) { return f.feed, nil }

func (f *fakeShiftService) GetAdminSummary(context.Context) (shift.AdminSummaryResponse, error) {
	return f.summary, nil
}

func newShiftTestRouter(svc shift.ShiftService) *chi.Mux {
	handler := NewShiftHandler(svc)
	r := chi.NewRouter()
	r.Get("/shifts", handler.List)
	r.Post("/shifts", handler.Create)
	r.Post("/shifts/{shiftID}/claim", handler.Claim)
	r.Get("/shifts/queue", handler.ClaimQueue)
	r.Get("/calendar", handler.Calendar)
	r.Get("/feed.ics", handler.PublicFeed)
	return r
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestShiftHandler_List_Success(t *testing.T) {
	svc := &fakeShiftService{shifts: []shift.ShiftResponse{{ID: 1, HostName: "Alice"}}}
	router := newShiftTestRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/shifts", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, true, body["success"])
	require.NotNil(t, body["data"])
}

func TestShiftHandler_Create_ValidationError(t *testing.T) {
	router := newShiftTestRouter(&fakeShiftService{})

	payload, _ := json.Marshal(map[string]interface{}{
		"start_time": 100,
		"end_time":   50,
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/shifts", bytes.NewReader(payload)))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, false, body["success"])
}

func TestShiftHandler_Create_InvalidJSON(t *testing.T) {
	router := newShiftTestRouter(&fakeShiftService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/shifts", bytes.NewReader([]byte("{not json"))))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShiftHandler_Claim_AlreadyClaimedConflict(t *testing.T) {
	router := newShiftTestRouter(&fakeShiftService{claimErr: shift.ErrShiftAlreadyClaimed})

	payload, _ := json.Marshal(map[string]string{"host_name": "Bob"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/shifts/7/claim", bytes.NewReader(payload)))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestShiftHandler_Claim_InvalidID(t *testing.T) {
	router := newShiftTestRouter(&fakeShiftService{})

	payload, _ := json.Marshal(map[string]string{"host_name": "Bob"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/shifts/abc/claim", bytes.NewReader(payload)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShiftHandler_Calendar_MissingParams(t *testing.T) {
	router := newShiftTestRouter(&fakeShiftService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/calendar", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShiftHandler_Calendar_Success(t *testing.T) {
	svc := &fakeShiftService{calendar: shift.CalendarResponse{Year: 2025, Month: 1}}
	router := newShiftTestRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/calendar?year=2025&month=1&tz=UTC", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestShiftHandler_PublicFeed_ContentType(t *testing.T) {
	svc := &fakeShiftService{feed: "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"}
	router := newShiftTestRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/feed.ics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/calendar; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "BEGIN:VCALENDAR")
}
