package lib

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func sessionCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestSetSessionCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	SetSessionCookie("tokenvalue", time.Now().Add(7*24*time.Hour), rec)

	cookie := sessionCookieFrom(t, rec)

	if cookie.Value != "tokenvalue" {
		t.Errorf("value = %q", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Error("cookie must be HttpOnly")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Errorf("samesite = %v, want Lax", cookie.SameSite)
	}
	if cookie.Path != "/" {
		t.Errorf("path = %q, want /", cookie.Path)
	}
	// Secure only in production; tests run in development.
	if cookie.Secure {
		t.Error("cookie should not be Secure outside production")
	}
	if cookie.MaxAge < 6*24*60*60 {
		t.Errorf("max age %d too short for a 7 day session", cookie.MaxAge)
	}
}

func TestClearSessionCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	ClearSessionCookie(rec)

	cookie := sessionCookieFrom(t, rec)

	if cookie.Value != "" {
		t.Errorf("value = %q, want empty", cookie.Value)
	}
	if cookie.MaxAge >= 0 {
		t.Errorf("max age = %d, want negative to delete", cookie.MaxAge)
	}
	if !cookie.HttpOnly {
		t.Error("cleared cookie must keep HttpOnly")
	}
}
