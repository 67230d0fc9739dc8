package auth

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/nexus-os/office-backend/internal/domain/auth"
	"github.com/nexus-os/office-backend/internal/domain/user"
	"github.com/nexus-os/office-backend/internal/pkg/jwt"
	"github.com/nexus-os/office-backend/internal/pkg/latency"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
	latency latency.Simulator
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service, lat latency.Simulator) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
		latency:        lat,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest) (auth.TokenResponse, error) {
	if err := loginReq.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}
	if err := a.latency.Wait(ctx, latency.Login); err != nil {
		return auth.TokenResponse{}, err
	}

	users, err := a.UserRepository.List(ctx)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to list users: %w", err)
	}

	// emails are not unique, the first user whose secret matches wins
	var userData *user.User
	for i := range users {
		if users[i].Email != loginReq.Email || users[i].PasswordHash == "" {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(users[i].PasswordHash), []byte(loginReq.Password)) == nil {
			userData = &users[i]
			break
		}
	}
	if userData == nil {
		slog.Warn("login failed", "email", loginReq.Email)
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	var tokenResponse auth.TokenResponse
	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userData.ID, userData.Name, userData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	tokenResponse.User = user.NewUserResponse(*userData)

	slog.Info("login", "user_id", userData.ID, "role", userData.Role)
	return tokenResponse, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, accessToken string, expiresAt int64) error {
	if accessToken == "" {
		return auth.ErrInvalidToken
	}
	a.Service.RevokeToken(accessToken, expiresAt)
	return nil
}
