package auth

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-signing-secret"

func TestTokenRoundTrip(t *testing.T) {
	codec := NewTokenCodec(testSecret)

	token, err := codec.Sign(42, "alice")
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	identity, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if identity.UserID != 42 {
		t.Errorf("identity.UserID = %d, want 42", identity.UserID)
	}
	if identity.Username != "alice" {
		t.Errorf("identity.Username = %q, want %q", identity.Username, "alice")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenCodec(testSecret).Sign(1, "alice")
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	if _, err := NewTokenCodec("a-different-secret").Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify() with wrong secret error = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsTamperedPayload(t *testing.T) {
	codec := NewTokenCodec(testSecret)
	token, err := codec.Sign(1, "alice")
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("token has %d segments, want 3", len(parts))
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		t.Fatalf("failed to decode payload: %v", err)
	}

	// Rewrite the username claim while keeping the JSON valid; the
	// signature no longer covers the mutated payload.
	mutated := strings.Replace(string(payload), `"alice"`, `"mallory"`, 1)
	if mutated == string(payload) {
		t.Fatalf("payload mutation did not apply")
	}
	parts[1] = base64.RawURLEncoding.EncodeToString([]byte(mutated))

	if _, err := codec.Verify(strings.Join(parts, ".")); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify() of tampered token error = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsSingleByteFlips(t *testing.T) {
	codec := NewTokenCodec(testSecret)
	token, err := codec.Sign(1, "alice")
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	parts := strings.Split(token, ".")
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		t.Fatalf("failed to decode payload: %v", err)
	}

	for i := 0; i < len(payload); i += 7 {
		flipped := make([]byte, len(payload))
		copy(flipped, payload)
		flipped[i] ^= 0x01

		parts[1] = base64.RawURLEncoding.EncodeToString(flipped)
		if _, err := codec.Verify(strings.Join(parts, ".")); err == nil {
			t.Errorf("Verify() accepted a token with payload byte %d flipped", i)
		}
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	// Sign an already-expired claim set with the real secret: the
	// signature is valid, only the embedded expiry is in the past.
	claims := sessionClaims{
		UserID:   1,
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign expired token: %v", err)
	}

	if _, err := NewTokenCodec(testSecret).Verify(expired); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify() of expired token error = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsMissingExpiry(t *testing.T) {
	claims := sessionClaims{
		UserID:   1,
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if _, err := NewTokenCodec(testSecret).Verify(noExp); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify() of token without expiry error = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsUnsignedToken(t *testing.T) {
	claims := sessionClaims{
		UserID:   1,
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to build unsigned token: %v", err)
	}

	if _, err := NewTokenCodec(testSecret).Verify(unsigned); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify() of alg=none token error = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not a jwt", token: "definitely-not-a-token"},
		{name: "two segments", token: "aaaa.bbbb"},
	}

	codec := NewTokenCodec(testSecret)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := codec.Verify(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Verify(%q) error = %v, want ErrInvalidToken", tt.token, err)
			}
		})
	}
}
