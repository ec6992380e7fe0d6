package profile

import "context"

type ProfileService interface {
	// GetCallerProfile returns nil when the caller has not set up a profile yet.
	GetCallerProfile(ctx context.Context) (*ProfileResponse, error)
	SaveCallerProfile(ctx context.Context, req SaveProfileRequest) (ProfileResponse, error)
	GetProfile(ctx context.Context, principal string) (*ProfileResponse, error)
}
