package auth

import (
	"strings"
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), "taskapi-test")

	token, err := issuer.IssueAccessToken("user-123", 60)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("not a compact JWT: %q", token)
	}

	userID, err := issuer.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("subject = %q, want user-123", userID)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), "taskapi-test")

	token, err := issuer.IssueAccessToken("user-123", -60)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := issuer.ValidateAccessToken(token); err == nil {
		t.Error("expired token must not validate")
	}
}

func TestWrongSecretRejected(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), "taskapi-test")
	other := NewTokenIssuer([]byte("another-secret"), "taskapi-test")

	token, err := issuer.IssueAccessToken("user-123", 60)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := other.ValidateAccessToken(token); err == nil {
		t.Error("token signed with a different secret must not validate")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), "taskapi-test")

	for _, token := range []string{"", "not-a-jwt", "aaa.bbb.ccc"} {
		if _, err := issuer.ValidateAccessToken(token); err == nil {
			t.Errorf("token %q must not validate", token)
		}
	}
}
