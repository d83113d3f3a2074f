package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the work factor the account base was hashed with.
// Raising it only affects newly created digests.
const bcryptCost = 10

// HashPassword derives a salted bcrypt digest from the plaintext. The
// salt and work factor are embedded in the digest itself. Length policy
// is registration validation's job, not the hasher's.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword reports whether the plaintext matches the digest using a
// constant-time comparison. A malformed digest compares as false; the
// caller never sees an error from here.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
