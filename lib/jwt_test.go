package lib

import (
	"net/http"
	"testing"
	"time"

	"github.com/careerbuilder24/e-commerce-project/structs/tables"
	"github.com/google/uuid"
)

const testSecret = "test-secret-do-not-use"

func testUser() *tables.User {
	return &tables.User{
		ID:    uuid.New(),
		Email: "vendor@example.com",
		Name:  "Test Vendor",
	}
}

func TestSignAndParseSessionToken(t *testing.T) {
	user := testUser()

	token, claims, err := SignSessionToken(user, testSecret, 7*24*time.Hour)
	if err != nil {
		t.Fatalf("SignSessionToken: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	parsed, err := ParseSessionToken(token, testSecret)
	if err != nil {
		t.Fatalf("ParseSessionToken: %v", err)
	}

	if parsed.Sub != user.ID {
		t.Errorf("sub = %s, want %s", parsed.Sub, user.ID)
	}
	if parsed.Email != user.Email {
		t.Errorf("email = %s, want %s", parsed.Email, user.Email)
	}
	if parsed.Jti != claims.Jti {
		t.Errorf("jti = %s, want %s", parsed.Jti, claims.Jti)
	}
	if time.Until(parsed.Exp) < 6*24*time.Hour {
		t.Errorf("expiry %v too soon for a 7 day session", parsed.Exp)
	}
}

func TestParseSessionTokenWrongSecret(t *testing.T) {
	token, _, err := SignSessionToken(testUser(), testSecret, time.Hour)
	if err != nil {
		t.Fatalf("SignSessionToken: %v", err)
	}

	if _, err := ParseSessionToken(token, "a different secret"); err == nil {
		t.Error("token signed with another secret was accepted")
	}
}

func TestParseSessionTokenExpired(t *testing.T) {
	token, _, err := SignSessionToken(testUser(), testSecret, -time.Hour)
	if err != nil {
		t.Fatalf("SignSessionToken: %v", err)
	}

	if _, err := ParseSessionToken(token, testSecret); err == nil {
		t.Error("expired token was accepted")
	}
}

func TestParseSessionTokenGarbage(t *testing.T) {
	if _, err := ParseSessionToken("not.a.token", testSecret); err == nil {
		t.Error("garbage token was accepted")
	}
}

func TestExtractSessionClaims(t *testing.T) {
	user := testUser()
	token, _, err := SignSessionToken(user, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("SignSessionToken: %v", err)
	}

	r, _ := http.NewRequest(http.MethodGet, "/auth/me", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})

	claims, err := ExtractSessionClaims(r, testSecret)
	if err != nil {
		t.Fatalf("ExtractSessionClaims: %v", err)
	}
	if claims.Sub != user.ID {
		t.Errorf("sub = %s, want %s", claims.Sub, user.ID)
	}
}

func TestExtractSessionClaimsNoCookie(t *testing.T) {
	r, _ := http.NewRequest(http.MethodGet, "/auth/me", nil)
	if _, err := ExtractSessionClaims(r, testSecret); err == nil {
		t.Error("expected error without a session cookie")
	}
}
