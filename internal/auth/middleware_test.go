package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"calculator-service/internal/models"
)

func guardedEcho(svc *Service, captured **models.User) http.Handler {
	return svc.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			http.Error(w, "no user in context", http.StatusInternalServerError)
			return
		}
		*captured = user
		w.WriteHeader(http.StatusOK)
	}))
}

func TestMiddlewareValidToken(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "mwuser", "mw@example.com", "password123")
	if err != nil {
		t.Fatalf("failed to register: %v", err)
	}
	token, err := svc.Authenticate(ctx, "mwuser", "password123")
	if err != nil {
		t.Fatalf("failed to authenticate: %v", err)
	}

	var captured *models.User
	handler := guardedEcho(svc, &captured)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if captured == nil || captured.ID != user.ID {
		t.Fatalf("expected user %d in context, got %+v", user.ID, captured)
	}
}

func TestMiddlewareRejects(t *testing.T) {
	svc := newTestService(t)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not-a-token"},
	}

	for _, tc := range cases {
		var captured *models.User
		handler := guardedEcho(svc, &captured)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", tc.name, w.Code)
		}
		if captured != nil {
			t.Fatalf("%s: handler ran despite rejection", tc.name)
		}
	}
}

func TestMiddlewareExpiredToken(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, "test-secret", 30*time.Minute)
	expired := NewService(db, "test-secret", -time.Minute)
	ctx := context.Background()

	user, err := svc.Register(ctx, "expuser", "exp@example.com", "password123")
	if err != nil {
		t.Fatalf("failed to register: %v", err)
	}
	// correctly signed but already past its expiry
	token, err := expired.issueToken(user.ID)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	var captured *models.User
	handler := guardedEcho(svc, &captured)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", w.Code)
	}
}

func TestMiddlewareDeletedUser(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "goneuser", "gone@example.com", "password123")
	if err != nil {
		t.Fatalf("failed to register: %v", err)
	}
	token, err := svc.Authenticate(ctx, "goneuser", "password123")
	if err != nil {
		t.Fatalf("failed to authenticate: %v", err)
	}
	if err := svc.DeleteUser(ctx, user.ID); err != nil {
		t.Fatalf("failed to delete user: %v", err)
	}

	var captured *models.User
	handler := guardedEcho(svc, &captured)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for deleted user, got %d", w.Code)
	}
}
