package token

import (
	"testing"
	"time"
)

func TestGenerateParseRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	signed, err := Generate(secret, 42, "ada@example.com", "Ada Lovelace", time.Hour)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	claims, err := Parse(secret, signed)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "ada@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.Name != "Ada Lovelace" {
		t.Errorf("Name = %q", claims.Name)
	}
}

func TestParseRejectsBadTokens(t *testing.T) {
	secret := []byte("test-secret")
	signed, err := Generate(secret, 1, "a@b.c", "A", time.Hour)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := Parse([]byte("other-secret"), signed); err != ErrInvalidToken {
		t.Errorf("wrong secret: err = %v, want ErrInvalidToken", err)
	}
	if _, err := Parse(secret, "not.a.token"); err != ErrInvalidToken {
		t.Errorf("garbage: err = %v, want ErrInvalidToken", err)
	}

	expired, err := Generate(secret, 1, "a@b.c", "A", -time.Minute)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := Parse(secret, expired); err != ErrInvalidToken {
		t.Errorf("expired: err = %v, want ErrInvalidToken", err)
	}
}
