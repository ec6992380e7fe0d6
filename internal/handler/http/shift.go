package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/teamhours/officehours-backend-go/internal/domain/shift"
	"github.com/teamhours/officehours-backend-go/internal/handler/http/response"
)

type ShiftHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListPublic(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Edit(w http.ResponseWriter, r *http.Request)
	EditOccurrence(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Claim(w http.ResponseWriter, r *http.Request)
	ClaimQueue(w http.ResponseWriter, r *http.Request)
	Calendar(w http.ResponseWriter, r *http.Request)
	PublicCalendar(w http.ResponseWriter, r *http.Request)
	PublicFeed(w http.ResponseWriter, r *http.Request)
	AdminSummary(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &ShiftHandlerImpl{shiftService: shiftService}
}

// List implements ShiftHandler.
func (h *ShiftHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.shiftService.ListShifts(r.Context())
	if err != nil {
		slog.Error("List shifts service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, shifts)
}

// ListPublic implements ShiftHandler. Only claimed shifts are exposed.
func (h *ShiftHandlerImpl) ListPublic(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.shiftService.ListPublicShifts(r.Context())
	if err != nil {
		slog.Error("List public shifts service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, shifts)
}

// Create implements ShiftHandler.
func (h *ShiftHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq shift.CreateShiftRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create shift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		slog.Error("Create shift validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.shiftService.CreateShift(r.Context(), createReq)
	if err != nil {
		slog.Error("Create shift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Shift created successfully", "shift_id", created.ID)
	response.Created(w, "Shift created successfully", created)
}

// Edit implements ShiftHandler.
func (h *ShiftHandlerImpl) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := shiftIDParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid shift id", nil)
		return
	}

	var editReq shift.EditShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&editReq); err != nil {
		slog.Error("Edit shift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	editReq.ID = id

	if err := editReq.Validate(); err != nil {
		slog.Error("Edit shift validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := h.shiftService.EditShift(r.Context(), editReq); err != nil {
		slog.Error("Edit shift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Shift updated successfully", "shift_id", id)
	response.SuccessWithMessage(w, "Shift updated successfully", nil)
}

// EditOccurrence implements ShiftHandler. It detaches a single instance of a
// recurring shift into a standalone one-off shift.
func (h *ShiftHandlerImpl) EditOccurrence(w http.ResponseWriter, r *http.Request) {
	id, err := shiftIDParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid shift id", nil)
		return
	}

	var occReq shift.EditOccurrenceRequest
	if err := json.NewDecoder(r.Body).Decode(&occReq); err != nil {
		slog.Error("Edit occurrence decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	occReq.ShiftID = id

	if err := occReq.Validate(); err != nil {
		slog.Error("Edit occurrence validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	detached, err := h.shiftService.EditOccurrence(r.Context(), occReq)
	if err != nil {
		slog.Error("Edit occurrence service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Occurrence detached successfully", "shift_id", id, "new_shift_id", detached.ID)
	response.Created(w, "Occurrence updated successfully", detached)
}

// Delete implements ShiftHandler.
func (h *ShiftHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := shiftIDParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid shift id", nil)
		return
	}

	if err := h.shiftService.DeleteShift(r.Context(), id); err != nil {
		slog.Error("Delete shift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Shift deleted successfully", "shift_id", id)
	response.SuccessWithMessage(w, "Shift deleted successfully", nil)
}

// Claim implements ShiftHandler.
func (h *ShiftHandlerImpl) Claim(w http.ResponseWriter, r *http.Request) {
	id, err := shiftIDParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid shift id", nil)
		return
	}

	var claimReq shift.ClaimShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&claimReq); err != nil {
		slog.Error("Claim shift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	claimReq.ID = id

	if err := claimReq.Validate(); err != nil {
		slog.Error("Claim shift validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := h.shiftService.ClaimShift(r.Context(), claimReq); err != nil {
		slog.Error("Claim shift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Shift claimed successfully", "shift_id", id)
	response.SuccessWithMessage(w, "Shift claimed successfully", nil)
}

// ClaimQueue implements ShiftHandler.
func (h *ShiftHandlerImpl) ClaimQueue(w http.ResponseWriter, r *http.Request) {
	queue, err := h.shiftService.GetClaimQueue(r.Context(), r.URL.Query().Get("tz"))
	if err != nil {
		slog.Error("Claim queue service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, queue)
}

// Calendar implements ShiftHandler.
func (h *ShiftHandlerImpl) Calendar(w http.ResponseWriter, r *http.Request) {
	req, err := calendarRequest(r)
	if err != nil {
		response.BadRequest(w, "year and month query parameters are required", nil)
		return
	}

	if err := req.Validate(); err != nil {
		slog.Error("Calendar validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	calendar, err := h.shiftService.GetCalendar(r.Context(), req)
	if err != nil {
		slog.Error("Calendar service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, calendar)
}

// PublicCalendar implements ShiftHandler. Same grid, claimed shifts only.
func (h *ShiftHandlerImpl) PublicCalendar(w http.ResponseWriter, r *http.Request) {
	req, err := calendarRequest(r)
	if err != nil {
		response.BadRequest(w, "year and month query parameters are required", nil)
		return
	}

	if err := req.Validate(); err != nil {
		slog.Error("Public calendar validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	calendar, err := h.shiftService.GetPublicCalendar(r.Context(), req)
	if err != nil {
		slog.Error("Public calendar service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, calendar)
}

// PublicFeed implements ShiftHandler. Serves the iCalendar feed for calendar
// app subscriptions.
func (h *ShiftHandlerImpl) PublicFeed(w http.ResponseWriter, r *http.Request) {
	feed, err := h.shiftService.PublicFeed(r.Context())
	if err != nil {
		slog.Error("Public feed service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="office-hours.ics"`)
	_, _ = w.Write([]byte(feed))
}

// AdminSummary implements ShiftHandler.
func (h *ShiftHandlerImpl) AdminSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.shiftService.GetAdminSummary(r.Context())
	if err != nil {
		slog.Error("Admin summary service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}

func shiftIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "shiftID"), 10, 64)
}

func calendarRequest(r *http.Request) (shift.CalendarRequest, error) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return shift.CalendarRequest{}, err
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		return shift.CalendarRequest{}, err
	}
	return shift.CalendarRequest{
		Year:       year,
		Month:      month,
		TimeZoneID: r.URL.Query().Get("tz"),
	}, nil
}
