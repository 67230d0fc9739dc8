package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/jwtauth/v5"

	"github.com/nexus-os/office-backend/internal/domain/user"
)

// session is the caller as described by the verified access token
type session struct {
	UserID    string
	Name      string
	Role      user.Role
	ExpiresAt int64
}

func sessionFromRequest(r *http.Request) (session, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return session{}, false
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return session{}, false
	}
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)

	s := session{UserID: userID, Name: name, Role: user.Role(role)}
	if exp, ok := claims["exp"]; ok {
		switch v := exp.(type) {
		case interface{ Unix() int64 }:
			s.ExpiresAt = v.Unix()
		case float64:
			s.ExpiresAt = int64(v)
		}
	}
	return s, true
}

// getIntQueryParam gets an int query parameter with a default value
func getIntQueryParam(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}

// getStringQueryParam returns nil when the parameter is absent or empty
func getStringQueryParam(r *http.Request, key string) *string {
	val := r.URL.Query().Get(key)
	if val == "" {
		return nil
	}
	return &val
}
