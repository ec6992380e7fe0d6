package response

import (
	"errors"
	"net/http"

	"github.com/teamhours/officehours-backend-go/internal/domain/auth"
	"github.com/teamhours/officehours-backend-go/internal/domain/profile"
	"github.com/teamhours/officehours-backend-go/internal/domain/shift"
	"github.com/teamhours/officehours-backend-go/internal/domain/user"
	"github.com/teamhours/officehours-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftAlreadyClaimed):
		Conflict(w, "Shift is already claimed")
	case errors.Is(err, shift.ErrHostNameRequired):
		BadRequest(w, "Host name is required to claim a shift", nil)
	case errors.Is(err, shift.ErrInvalidTimeRange):
		BadRequest(w, "End time must be after start time", nil)
	case errors.Is(err, shift.ErrInvalidRecurrence):
		BadRequest(w, "Unknown recurrence", nil)
	case errors.Is(err, shift.ErrInvalidRequestData):
		BadRequest(w, "Invalid request data", nil)

	// Profile domain errors
	case errors.Is(err, profile.ErrProfileNotFound):
		NotFound(w, "Profile not found")

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidPassphrase):
		Unauthorized(w, "Invalid team passphrase")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		BadRequest(w, "OAuth state mismatch", nil)
	case errors.Is(err, auth.ErrEmailNotVerified):
		Forbidden(w, "Email not verified")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Unknown role", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
