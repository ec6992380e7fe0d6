package auth

import "errors"

var (
	ErrInvalidPassphrase   = errors.New("invalid team passphrase")
	ErrInvalidToken        = errors.New("invalid or missing token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")
	ErrOAuthStateMismatch  = errors.New("oauth state mismatch")
	ErrEmailNotVerified    = errors.New("google account email not verified")
)
