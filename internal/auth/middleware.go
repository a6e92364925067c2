package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type contextKey string

// UserClaimsKey is the context key for the decoded token claims.
const UserClaimsKey = contextKey("userClaims")

// ClaimsFromContext retrieves the decoded claims a RequireAuth middleware
// attached to the request, or nil for an unguarded route.
func ClaimsFromContext(ctx context.Context) *Claims {
	claims, ok := ctx.Value(UserClaimsKey).(*Claims)
	if !ok {
		return nil
	}
	return claims
}

// RequireAuth creates a middleware for protecting routes. A request with no
// bearer token never reaches the handler; one with an invalid or expired
// token is rejected the same way.
func RequireAuth(tm *TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var tokenStr string
			authHeader := r.Header.Get("Authorization")
			if after, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
				tokenStr = after
			}

			if tokenStr == "" {
				unauthorized(w, "Authorization token is required")
				return
			}

			claims, err := tm.Verify(tokenStr)
			if err != nil {
				unauthorized(w, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
