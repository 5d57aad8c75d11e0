package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := int64(123)
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, userID, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}

	// Verify claims
	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != "123" {
		t.Errorf("expected subject '123', got %s", claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Roundtrip(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", 42, time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "secret-key", "test-issuer")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.UserID != 42 {
		t.Errorf("expected UserID=42, got %d", parsed.UserID)
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", 42, time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	_, err = ValidateAndParseJWTToken(token.SignedString, "other-key", "test-issuer")
	if err == nil {
		t.Error("expected error for wrong sign key, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", 42, time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	_, err = ValidateAndParseJWTToken(token.SignedString, "secret-key", "another-issuer")
	if err == nil {
		t.Error("expected error for wrong issuer, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", 42, -time.Minute, "secret-key")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	_, err = ValidateAndParseJWTToken(token.SignedString, "secret-key", "test-issuer")
	if err == nil {
		t.Error("expected error for expired token, got nil")
	}
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	_, err := ValidateAndParseJWTToken("definitely.not.jwt", "secret-key", "test-issuer")
	if err == nil {
		t.Error("expected error for malformed token, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"missing token", "Bearer", "", true},
		{"empty token", "Bearer ", "", true},
		{"extra token parts", "Bearer one two", "", true},
		{"empty header", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAuthorizationHeader) {
					t.Errorf("expected ErrInvalidAuthorizationHeader, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
