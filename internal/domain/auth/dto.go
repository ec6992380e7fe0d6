package auth

import (
	"strings"

	"github.com/teamhours/officehours-backend-go/internal/domain/user"
	"github.com/teamhours/officehours-backend-go/internal/pkg/validator"
)

// LoginRequest authenticates with the shared team passphrase. Identity is a
// stable handle (usually an email) that identifies the caller across logins.
type LoginRequest struct {
	Identity   string `json:"identity"`
	Passphrase string `json:"passphrase"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Identity) {
		errs = append(errs, validator.ValidationError{
			Field:   "identity",
			Message: "identity is required",
		})
	}
	if validator.IsEmpty(r.Passphrase) {
		errs = append(errs, validator.ValidationError{
			Field:   "passphrase",
			Message: "passphrase is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignRoleRequest struct {
	Principal string `json:"principal"`
	Role      string `json:"role"`
}

func (r *AssignRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Principal) {
		errs = append(errs, validator.ValidationError{
			Field:   "principal",
			Message: "principal is required",
		})
	}
	if !validator.IsInSlice(r.Role, user.RoleValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: " + strings.Join(user.RoleValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	ExpiresAt    int64  `json:"expires_at"`
	Principal    string `json:"principal"`
	Role         string `json:"role"`
	RefreshToken string `json:"-"`
	RefreshExp   int64  `json:"-"`
}

type RoleResponse struct {
	Role string `json:"role"`
}
