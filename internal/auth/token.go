package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenLifetime is how long a minted session token stays valid. Expiry
// lives inside the signed claims, so validity never depends on transport
// metadata.
const TokenLifetime = 24 * time.Hour

// ErrInvalidToken covers every verification failure: malformed token,
// wrong signing method, bad signature, expired claims. Callers must not
// distinguish between them.
var ErrInvalidToken = errors.New("invalid session token")

// Identity is the authenticated principal recovered from a verified
// session token.
type Identity struct {
	UserID   int64
	Username string
}

type sessionClaims struct {
	UserID   int64  `json:"uid"`
	Username string `json:"un"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies self-contained session tokens. There is
// no server-side session table; the HMAC signature plus the embedded
// expiry are the only integrity mechanism, so a leaked secret compromises
// every outstanding session.
type TokenCodec struct {
	secret []byte
}

// NewTokenCodec creates a codec bound to the server signing secret.
func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret)}
}

// Sign mints a token for the given identity, valid for TokenLifetime.
func (tc *TokenCodec) Sign(userID int64, username string) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tc.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature over the whole payload and the embedded
// expiry, and returns the identity the token carries. Any mutation of any
// claim invalidates the signature.
func (tc *TokenCodec) Verify(tokenString string) (*Identity, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tc.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return &Identity{UserID: claims.UserID, Username: claims.Username}, nil
}
