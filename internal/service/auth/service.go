package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/teamhours/officehours-backend-go/internal/domain/auth"
	"github.com/teamhours/officehours-backend-go/internal/domain/user"
	"github.com/teamhours/officehours-backend-go/internal/pkg/database"
	"github.com/teamhours/officehours-backend-go/internal/pkg/jwt"
	"github.com/teamhours/officehours-backend-go/internal/pkg/oauth"
	"github.com/teamhours/officehours-backend-go/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

type authServiceImpl struct {
	db             *database.DB
	userRepo       user.UserRepository
	tokenRepo      auth.TokenRepository
	jwtService     jwt.Service
	googleService  oauth.GoogleService
	passphraseHash string
}

func NewAuthService(
	db *database.DB,
	userRepo user.UserRepository,
	tokenRepo auth.TokenRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
	passphraseHash string,
) auth.AuthService {
	return &authServiceImpl{
		db:             db,
		userRepo:       userRepo,
		tokenRepo:      tokenRepo,
		jwtService:     jwtService,
		googleService:  googleService,
		passphraseHash: passphraseHash,
	}
}

// Login implements auth.AuthService. Access is gated by the shared team
// passphrase; the identity only distinguishes who is logging in.
func (s *authServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.passphraseHash), []byte(req.Passphrase)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidPassphrase
	}

	u, err := s.provisionUser(ctx, req.Identity)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return s.issueTokens(ctx, u)
}

// GoogleLoginURL implements auth.AuthService. The state is returned so the
// handler can pin it in a cookie and verify it on callback.
func (s *authServiceImpl) GoogleLoginURL(userAgent string) (string, string) {
	state := s.googleService.GenerateState(userAgent)
	return s.googleService.RedirectURL(state), state
}

// GoogleCallback implements auth.AuthService. The Google account's verified
// email becomes the principal.
func (s *authServiceImpl) GoogleCallback(ctx context.Context, state string, code string) (auth.TokenResponse, error) {
	if state == "" || code == "" {
		return auth.TokenResponse{}, auth.ErrOAuthStateMismatch
	}

	token, err := s.googleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to exchange oauth code: %w", err)
	}

	info, err := s.googleService.VerifyUser(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to fetch google user info: %w", err)
	}
	if !info.VerifiedEmail {
		return auth.TokenResponse{}, auth.ErrEmailNotVerified
	}

	u, err := s.provisionUser(ctx, info.Email)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return s.issueTokens(ctx, u)
}

// Refresh implements auth.AuthService with refresh-token rotation.
func (s *authServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	decoded, err := s.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	tokenType, _ := decoded.Get("type")
	if tokenType != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	revoked, err := s.tokenRepo.IsRevoked(ctx, refreshToken)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to check token revocation: %w", err)
	}
	if revoked {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	principalVal, _ := decoded.Get("principal")
	principal, ok := principalVal.(string)
	if !ok || principal == "" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	u, err := s.userRepo.GetByPrincipal(ctx, principal)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	if err := s.tokenRepo.Revoke(ctx, refreshToken); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return s.issueTokens(ctx, u)
}

// Logout implements auth.AuthService.
func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	s.jwtService.RevokeToken(refreshToken)
	return s.tokenRepo.Revoke(ctx, refreshToken)
}

// GetCallerRole implements auth.AuthService. No valid token means guest.
func (s *authServiceImpl) GetCallerRole(ctx context.Context) (user.Role, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.RoleGuest, nil
	}
	role, ok := claims["role"].(string)
	if !ok || !validator.IsInSlice(role, user.RoleValues) {
		return user.RoleGuest, nil
	}
	return user.Role(role), nil
}

// AssignRole implements auth.AuthService. Admin gating happens in middleware.
func (s *authServiceImpl) AssignRole(ctx context.Context, req auth.AssignRoleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.userRepo.UpdateRole(ctx, req.Principal, user.Role(req.Role))
}

// provisionUser fetches the user for a principal, creating it on first login.
// The very first user in the system becomes the admin.
func (s *authServiceImpl) provisionUser(ctx context.Context, principal string) (user.User, error) {
	existing, err := s.userRepo.GetByPrincipal(ctx, principal)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return user.User{}, fmt.Errorf("failed to look up user: %w", err)
	}

	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to count users: %w", err)
	}

	role := user.RoleUser
	if count == 0 {
		role = user.RoleAdmin
	}

	newUser := user.User{
		ID:        uuid.NewString(),
		Principal: principal,
		Role:      role,
	}
	if validator.IsValidEmail(principal) {
		email := principal
		newUser.Email = &email
	}

	created, err := s.userRepo.Create(ctx, newUser)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

func (s *authServiceImpl) issueTokens(ctx context.Context, u user.User) (auth.TokenResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Principal, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID, u.Principal)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.tokenRepo.Store(ctx, refreshToken, u.ID, time.Unix(refreshExp, 0)); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:  accessToken,
		ExpiresAt:    accessExp,
		Principal:    u.Principal,
		Role:         string(u.Role),
		RefreshToken: refreshToken,
		RefreshExp:   refreshExp,
	}, nil
}
