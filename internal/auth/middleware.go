package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"calculator-service/internal/models"
)

type contextKey string

const userKey = contextKey("currentUser")

// Middleware guards protected routes. It extracts the bearer token, verifies
// it, resolves the asserted user id to a live user and stores the user in the
// request context. Missing header, bad token and deleted user all get the
// same 401 body so the failure mode is not leaked.
func (s *Service) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(w)
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := s.ParseToken(tokenStr)
		if err != nil {
			unauthorized(w)
			return
		}

		// The user may have been deleted after the token was issued.
		user, err := s.GetUser(r.Context(), claims.UserID)
		if err != nil {
			unauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": ErrInvalidToken.Error()})
}

func ContextWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the user resolved by Middleware.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}
