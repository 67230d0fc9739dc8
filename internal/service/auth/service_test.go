package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-os/office-backend/internal/domain/auth"
	"github.com/nexus-os/office-backend/internal/domain/user"
	"github.com/nexus-os/office-backend/internal/fixtures"
	"github.com/nexus-os/office-backend/internal/pkg/jwt"
	"github.com/nexus-os/office-backend/internal/pkg/kv"
	"github.com/nexus-os/office-backend/internal/pkg/latency"
	"github.com/nexus-os/office-backend/internal/pkg/store"
	"github.com/nexus-os/office-backend/internal/pkg/validator"
	"github.com/nexus-os/office-backend/internal/repository/kvstore"
)

const (
	testAccessExp = "1h"
	testSecret    = "test-secret-key-for-jwt"
)

func newService() (auth.AuthService, jwt.Service, user.UserRepository) {
	s := store.New(kv.NewMemory())
	repo := kvstore.NewUserRepository(s)
	jwtService := jwt.NewJWTService(testSecret, testAccessExp)
	return NewAuthService(repo, jwtService, latency.Simulator{}), jwtService, repo
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, jwtService, _ := newService()

	response, err := svc.Login(context.Background(), auth.LoginRequest{Email: "admin@company.com", Password: fixtures.DefaultPassword})
	require.NoError(t, err)
	assert.NotEmpty(t, response.AccessToken)
	assert.Greater(t, response.AccessTokenExpiresIn, time.Now().Unix())
	assert.Equal(t, "u1", response.User.ID)
	assert.Equal(t, user.RoleAdmin, response.User.Role)

	token, err := jwtService.JWTAuth().Decode(response.AccessToken)
	require.NoError(t, err)
	role, _ := token.Get("role")
	assert.Equal(t, "ADMIN", role)
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "john@company.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "ghost@company.com", Password: fixtures.DefaultPassword})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_Validation(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "", Password: ""})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
}

func TestAuthService_Login_DuplicateEmailMatchesBySecret(t *testing.T) {
	ctx := context.Background()
	svc, _, repo := newService()

	// same email as u2 but without a secret
	require.NoError(t, repo.Add(ctx, user.User{ID: "dup", Name: "Imposter", Email: "john@company.com", Role: user.RoleAdmin}))

	response, err := svc.Login(ctx, auth.LoginRequest{Email: "john@company.com", Password: fixtures.DefaultPassword})
	require.NoError(t, err)
	assert.Equal(t, "u2", response.User.ID)
}

func TestAuthService_Logout(t *testing.T) {
	svc, jwtService, _ := newService()

	response, err := svc.Login(context.Background(), auth.LoginRequest{Email: "jane@company.com", Password: fixtures.DefaultPassword})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), response.AccessToken, response.AccessTokenExpiresIn))
	assert.True(t, jwtService.IsTokenRevoked(response.AccessToken))

	assert.ErrorIs(t, svc.Logout(context.Background(), "", 0), auth.ErrInvalidToken)
}
