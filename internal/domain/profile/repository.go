package profile

import "context"

type ProfileRepository interface {
	GetByPrincipal(ctx context.Context, principal string) (UserProfile, error)
	Upsert(ctx context.Context, p UserProfile) (UserProfile, error)
}
