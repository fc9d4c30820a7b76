package services

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	ts := NewTokenService("test-secret")

	token, err := ts.Generate("user-42", "user@example.com")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	userID, err := ts.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if userID != "user-42" {
		t.Fatalf("expected user-42, got %q", userID)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	ts := NewTokenService("test-secret")
	if _, err := ts.Verify("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a")
	verifier := NewTokenService("secret-b")

	token, err := issuer.Generate("user-42", "user@example.com")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if _, err := verifier.Verify(token); err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
}
