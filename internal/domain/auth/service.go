package auth

import (
	"context"
)

type AuthService interface {
	// Login compares the credentials against the stored user list and issues
	// an access token
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Logout revokes the access token until it would have expired anyway
	Logout(ctx context.Context, accessToken string, expiresAt int64) error
}
