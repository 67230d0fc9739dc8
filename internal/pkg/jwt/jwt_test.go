package jwt

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-os/office-backend/internal/domain/user"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", "15m")

	token, expiresAt, err := svc.GenerateAccessToken("u2", "John Doe", user.RoleEmployee)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.InDelta(t, time.Now().Add(15*time.Minute).Unix(), expiresAt, 5)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)
	claims, err := decoded.AsMap(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "u2", claims["user_id"])
	assert.Equal(t, "John Doe", claims["name"])
	assert.Equal(t, "EMPLOYEE", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateAccessToken_BadDuration(t *testing.T) {
	svc := NewJWTService("test-secret", "soon")
	_, _, err := svc.GenerateAccessToken("u2", "John Doe", user.RoleEmployee)
	assert.Error(t, err)
}

func TestSSEToken(t *testing.T) {
	svc := NewJWTService("test-secret", "15m")

	token, expiresIn, err := svc.GenerateSSEToken("u3")
	require.NoError(t, err)
	assert.Equal(t, 300, expiresIn)

	userID, err := svc.ValidateSSEToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u3", userID)
}

func TestValidateSSEToken_RejectsAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", "15m")
	access, _, err := svc.GenerateAccessToken("u2", "John Doe", user.RoleEmployee)
	require.NoError(t, err)

	_, err = svc.ValidateSSEToken(access)
	assert.Error(t, err)
}

func TestValidateSSEToken_RejectsForeignSignature(t *testing.T) {
	other := jwtauth.New("HS256", []byte("other-secret"), nil)
	_, forged, err := other.Encode(map[string]interface{}{
		"user_id": "u1",
		"type":    "sse",
		"exp":     time.Now().Add(time.Minute).Unix(),
	})
	require.NoError(t, err)

	_, err = NewJWTService("test-secret", "15m").ValidateSSEToken(forged)
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	svc := NewJWTService("test-secret", "15m")
	assert.False(t, svc.IsTokenRevoked("abc"))

	svc.RevokeToken("abc", time.Now().Add(time.Minute).Unix())
	assert.True(t, svc.IsTokenRevoked("abc"))

	// expired entries are pruned on the next revocation
	svc.RevokeToken("old", time.Now().Add(-time.Minute).Unix())
	svc.RevokeToken("def", time.Now().Add(time.Minute).Unix())
	assert.False(t, svc.IsTokenRevoked("old"))
	assert.True(t, svc.IsTokenRevoked("abc"))
}
