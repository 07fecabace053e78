package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/careerbuilder24/e-commerce-project/structs/tables"
	"github.com/google/uuid"
)

func TestRequireUserRejectsAnonymous(t *testing.T) {
	mw := &Middleware{}

	called := false
	handler := mw.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	r, _ := http.NewRequest(http.MethodGet, "/auth/me", nil)
	handler.ServeHTTP(rec, r)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if called {
		t.Error("handler ran without a session user")
	}
}

func TestRequireUserPassesSessionUser(t *testing.T) {
	mw := &Middleware{}
	user := &tables.User{ID: uuid.New(), Email: "user@example.com"}

	var seen *tables.User
	handler := mw.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = UserFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	r, _ := http.NewRequest(http.MethodGet, "/auth/me", nil)
	r = r.WithContext(context.WithValue(r.Context(), UserContextKey, user))
	handler.ServeHTTP(rec, r)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if seen == nil || seen.ID != user.ID {
		t.Error("session user not available to the handler")
	}
}
