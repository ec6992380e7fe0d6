package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByPrincipal(ctx context.Context, principal string) (User, error)
	Count(ctx context.Context) (int64, error)
	UpdateRole(ctx context.Context, principal string, role Role) error
}
