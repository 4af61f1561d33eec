package auth

import (
	"testing"
	"time"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := SignSessionToken("admin", "secret", time.Now())
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	username, err := VerifySessionToken(token, "secret")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if username != "admin" {
		t.Fatalf("username = %q, want admin", username)
	}
}

func TestVerifySessionToken_WrongSecret(t *testing.T) {
	token, err := SignSessionToken("admin", "secret", time.Now())
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := VerifySessionToken(token, "other-secret"); err == nil {
		t.Fatalf("expected verification failure with wrong secret")
	}
}

func TestVerifySessionToken_Expired(t *testing.T) {
	token, err := SignSessionToken("admin", "secret", time.Now().Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := VerifySessionToken(token, "secret"); err == nil {
		t.Fatalf("expected verification failure for expired token")
	}
}

func TestVerifySessionToken_Garbage(t *testing.T) {
	if _, err := VerifySessionToken("not-a-token", "secret"); err == nil {
		t.Fatalf("expected verification failure")
	}
}
