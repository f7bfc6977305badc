package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Rambadrinathan/vatika-studio/config"
	"github.com/Rambadrinathan/vatika-studio/util"
)

type contextKey string

const UserContextKey contextKey = "user_id"

// JWTSecret returns the signing key shared by token issuance and validation.
func JWTSecret() []byte {
	return []byte(config.GetEnv("JWT_SECRET", "dev-secret-change-me"))
}

// AuthMiddleware validates a Bearer JWT and injects the user id into the
// request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Unauthorized: No Authorization header", http.StatusUnauthorized)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			http.Error(w, "Unauthorized: Invalid Authorization format", http.StatusUnauthorized)
			return
		}

		claims, err := util.ValidateJWT(parts[1], JWTSecret())
		if err != nil {
			http.Error(w, "Unauthorized: Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID extracts the authenticated user id set by AuthMiddleware.
func UserID(r *http.Request) (uint, bool) {
	id, ok := r.Context().Value(UserContextKey).(uint)
	return id, ok
}
