package auth

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"testing"
)

func generateKey(t *testing.T) *ecdsa.PrivateKey {
	t.Helper()
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("failed to generate ECDSA key: %v", err)
	}
	return priv
}

func TestCreateAndVerifyToken(t *testing.T) {
	key := generateKey(t)

	token, err := CreateToken("kakashi", key)
	if err != nil {
		t.Fatalf("CreateToken() unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("CreateToken() returned empty token")
	}

	claims, err := VerifyToken(token, &key.PublicKey)
	if err != nil {
		t.Fatalf("VerifyToken() unexpected error: %v", err)
	}
	if claims.UserID != "kakashi" {
		t.Errorf("claims.UserID = %q, want kakashi", claims.UserID)
	}
	if claims.Issuer != Issuer {
		t.Errorf("claims.Issuer = %q, want %q", claims.Issuer, Issuer)
	}
	if claims.ID == "" {
		t.Error("claims.ID should carry a token UUID")
	}
}

func TestVerifyToken_WrongKey(t *testing.T) {
	token, err := CreateToken("kakashi", generateKey(t))
	if err != nil {
		t.Fatalf("CreateToken() unexpected error: %v", err)
	}

	otherKey := generateKey(t)
	if _, err := VerifyToken(token, &otherKey.PublicKey); err == nil {
		t.Error("VerifyToken() expected error for mismatched key, got nil")
	}
}

func TestVerifyToken_Garbage(t *testing.T) {
	key := generateKey(t)
	if _, err := VerifyToken("not.a.token", &key.PublicKey); err == nil {
		t.Error("VerifyToken() expected error for malformed token, got nil")
	}
}
