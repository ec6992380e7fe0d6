package profile

import (
	"github.com/teamhours/officehours-backend-go/internal/pkg/timezone"
	"github.com/teamhours/officehours-backend-go/internal/pkg/validator"
)

type SaveProfileRequest struct {
	Name           string `json:"name"`
	HomeTimeZoneID string `json:"home_time_zone_id"`
}

func (r *SaveProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !timezone.IsSupported(r.HomeTimeZoneID) {
		errs = append(errs, validator.ValidationError{
			Field:   "home_time_zone_id",
			Message: "home_time_zone_id must be a supported time zone",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProfileResponse struct {
	Principal    string            `json:"principal"`
	Name         string            `json:"name"`
	HomeTimeZone timezone.TimeZone `json:"home_time_zone"`
}

func NewProfileResponse(p UserProfile) ProfileResponse {
	return ProfileResponse{
		Principal:    p.Principal,
		Name:         p.Name,
		HomeTimeZone: timezone.Lookup(p.HomeTimeZoneID),
	}
}
