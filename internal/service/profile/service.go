package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/teamhours/officehours-backend-go/internal/domain/profile"
	"github.com/teamhours/officehours-backend-go/internal/pkg/database"
)

type profileServiceImpl struct {
	db          *database.DB
	profileRepo profile.ProfileRepository
}

func NewProfileService(db *database.DB, profileRepo profile.ProfileRepository) profile.ProfileService {
	return &profileServiceImpl{
		db:          db,
		profileRepo: profileRepo,
	}
}

// GetCallerProfile implements profile.ProfileService. A missing profile is
// not an error: it returns nil so the frontend can open profile setup.
func (s *profileServiceImpl) GetCallerProfile(ctx context.Context) (*profile.ProfileResponse, error) {
	principal, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.lookup(ctx, principal)
}

// SaveCallerProfile implements profile.ProfileService.
func (s *profileServiceImpl) SaveCallerProfile(ctx context.Context, req profile.SaveProfileRequest) (profile.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return profile.ProfileResponse{}, err
	}

	principal, err := principalFromContext(ctx)
	if err != nil {
		return profile.ProfileResponse{}, err
	}

	saved, err := s.profileRepo.Upsert(ctx, profile.UserProfile{
		Principal:      principal,
		Name:           req.Name,
		HomeTimeZoneID: req.HomeTimeZoneID,
	})
	if err != nil {
		return profile.ProfileResponse{}, fmt.Errorf("failed to save profile: %w", err)
	}

	return profile.NewProfileResponse(saved), nil
}

// GetProfile implements profile.ProfileService (admin lookup by principal).
func (s *profileServiceImpl) GetProfile(ctx context.Context, principal string) (*profile.ProfileResponse, error) {
	return s.lookup(ctx, principal)
}

func (s *profileServiceImpl) lookup(ctx context.Context, principal string) (*profile.ProfileResponse, error) {
	p, err := s.profileRepo.GetByPrincipal(ctx, principal)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	resp := profile.NewProfileResponse(p)
	return &resp, nil
}

func principalFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	principal, ok := claims["principal"].(string)
	if !ok || principal == "" {
		return "", fmt.Errorf("principal claim is missing or invalid")
	}
	return principal, nil
}
