package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/teamhours/officehours-backend-go/internal/domain/profile"
	"github.com/teamhours/officehours-backend-go/internal/handler/http/response"
)

type ProfileHandler interface {
	GetMe(w http.ResponseWriter, r *http.Request)
	SaveMe(w http.ResponseWriter, r *http.Request)
	GetByPrincipal(w http.ResponseWriter, r *http.Request)
}

type ProfileHandlerImpl struct {
	profileService profile.ProfileService
}

func NewProfileHandler(profileService profile.ProfileService) ProfileHandler {
	return &ProfileHandlerImpl{profileService: profileService}
}

// GetMe implements ProfileHandler. A null data payload means the caller has
// not saved a profile yet.
func (h *ProfileHandlerImpl) GetMe(w http.ResponseWriter, r *http.Request) {
	p, err := h.profileService.GetCallerProfile(r.Context())
	if err != nil {
		slog.Error("Get profile service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, p)
}

// SaveMe implements ProfileHandler.
func (h *ProfileHandlerImpl) SaveMe(w http.ResponseWriter, r *http.Request) {
	var saveReq profile.SaveProfileRequest

	if err := json.NewDecoder(r.Body).Decode(&saveReq); err != nil {
		slog.Error("Save profile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := saveReq.Validate(); err != nil {
		slog.Error("Save profile validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	saved, err := h.profileService.SaveCallerProfile(r.Context(), saveReq)
	if err != nil {
		slog.Error("Save profile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Profile saved successfully")
	response.SuccessWithMessage(w, "Profile saved successfully", saved)
}

// GetByPrincipal implements ProfileHandler (admin lookup).
func (h *ProfileHandlerImpl) GetByPrincipal(w http.ResponseWriter, r *http.Request) {
	principal := chi.URLParam(r, "principal")
	if principal == "" {
		response.BadRequest(w, "Principal is required", nil)
		return
	}

	p, err := h.profileService.GetProfile(r.Context(), principal)
	if err != nil {
		slog.Error("Get profile by principal service error", "error", err)
		response.HandleError(w, err)
		return
	}
	if p == nil {
		response.HandleError(w, profile.ErrProfileNotFound)
		return
	}
	response.Success(w, p)
}
