package auth

import (
	"context"

	"github.com/teamhours/officehours-backend-go/internal/domain/user"
)

type AuthService interface {
	// Passphrase flow
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Google OAuth flow
	GoogleLoginURL(userAgent string) (url string, state string)
	GoogleCallback(ctx context.Context, state string, code string) (TokenResponse, error)

	// Session maintenance
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error

	// Roles
	GetCallerRole(ctx context.Context) (user.Role, error)
	AssignRole(ctx context.Context, req AssignRoleRequest) error
}
