// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestGenerateSessionToken(t *testing.T) {
	token, err := GenerateSessionToken()
	if err != nil {
		t.Fatalf("GenerateSessionToken() error = %v", err)
	}

	// Should be URL-safe (no padding)
	if strings.Contains(token, "=") {
		t.Error("GenerateSessionToken() contains padding characters")
	}

	// 32 bytes encoded
	if len(token) < 40 {
		t.Errorf("GenerateSessionToken() too short: %d chars", len(token))
	}

	// Must not contain the signature separator
	if strings.Contains(token, ".") {
		t.Error("GenerateSessionToken() contains '.'")
	}

	tokens := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateSessionToken()
		if err != nil {
			t.Fatalf("GenerateSessionToken() error on iteration %d: %v", i, err)
		}
		if tokens[token] {
			t.Errorf("GenerateSessionToken() produced duplicate token: %s", token)
		}
		tokens[token] = true
	}
}

func TestSignature(t *testing.T) {
	sig := Signature("value", "secret")
	if sig == "" {
		t.Fatal("Signature() returned empty string")
	}
	if sig != Signature("value", "secret") {
		t.Error("Signature() is not deterministic")
	}
	if sig == Signature("value", "other-secret") {
		t.Error("Signature() ignores the secret")
	}
	if sig == Signature("value2", "secret") {
		t.Error("Signature() ignores the value")
	}
	if strings.Contains(sig, "=") {
		t.Error("Signature() contains padding characters")
	}
}

func TestUnsign(t *testing.T) {
	secret := "test-secret"
	signed := Sign("token123", secret)

	tests := []struct {
		name    string
		signed  string
		secret  string
		want    string
		wantErr bool
	}{
		{"valid", signed, secret, "token123", false},
		{"wrong secret", signed, "other", "", true},
		{"tampered value", "token124" + signed[len("token123"):], secret, "", true},
		{"no separator", "token123", secret, "", true},
		{"empty signature", "token123.", secret, "", true},
		{"empty value", "." + Signature("", secret), secret, "", true},
		{"empty", "", secret, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unsign(tt.signed, tt.secret)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unsign() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidSignature) {
				t.Errorf("Unsign() error = %v, want %v", err, ErrInvalidSignature)
			}
			if got != tt.want {
				t.Errorf("Unsign() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("changeme")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash == "changeme" {
		t.Fatal("HashPassword() returned the plaintext")
	}

	if err := CheckPassword(hash, "changeme"); err != nil {
		t.Errorf("CheckPassword() with correct password error = %v", err)
	}

	err = CheckPassword(hash, "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("CheckPassword() with wrong password error = %v, want %v", err, ErrInvalidCredentials)
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	err := CheckPassword("not-a-bcrypt-hash", "changeme")
	if err == nil {
		t.Fatal("CheckPassword() accepted a malformed hash")
	}
	if errors.Is(err, ErrInvalidCredentials) {
		t.Error("malformed hash should not be reported as a credential mismatch")
	}
}

func TestConstantTimeEqual(t *testing.T) {
	if !ConstantTimeEqual("abc", "abc") {
		t.Error("ConstantTimeEqual() = false for equal strings")
	}
	if ConstantTimeEqual("abc", "abd") {
		t.Error("ConstantTimeEqual() = true for different strings")
	}
	if ConstantTimeEqual("abc", "") {
		t.Error("ConstantTimeEqual() = true against empty string")
	}
}
