package helpers

import (
	"testing"
	"time"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	m := &JWTManager{Secret: []byte("super-secret"), TTL: time.Hour}
	userID := "user-123"

	tok, exp, err := m.GenerateToken(userID)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if !exp.After(time.Now()) {
		t.Fatalf("expiry not in the future: %v", exp)
	}

	claims, err := m.ParseToken(tok)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("userID mismatch: got %q want %q", claims.UserID, userID)
	}
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	m := &JWTManager{Secret: []byte("secret"), TTL: -1 * time.Second}

	tok, _, err := m.GenerateToken("u1")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := m.ParseToken(tok); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	signer := &JWTManager{Secret: []byte("right-secret"), TTL: time.Hour}
	verifier := &JWTManager{Secret: []byte("wrong-secret"), TTL: time.Hour}

	tok, _, err := signer.GenerateToken("u2")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := verifier.ParseToken(tok); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestParseToken_Malformed(t *testing.T) {
	t.Parallel()

	m := &JWTManager{Secret: []byte("k"), TTL: time.Hour}
	if _, err := m.ParseToken("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}
