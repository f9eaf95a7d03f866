package password

import (
	"crypto/sha256"
	"encoding/hex"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const (
	// HashCost is the bcrypt cost used for utilisateur passwords
	HashCost = 12

	// MinLength is the minimum password length accepted at account
	// creation and on password change
	MinLength = 8
)

// Hash hashes a plaintext password with bcrypt at HashCost
func Hash(plaintext string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), HashCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify reports whether plaintext matches the stored bcrypt hash
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// HashToken hashes a refresh token with SHA256 for at-rest storage.
// Refresh tokens are high-entropy random strings, so a plain digest
// keeps lookups cheap.
func HashToken(token string) string {
	digest := sha256.Sum256([]byte(token))
	return hex.EncodeToString(digest[:])
}

// ValidatePassword reports whether a candidate password satisfies the
// cabinet's policy: at least MinLength characters with at least one
// letter and one digit
func ValidatePassword(candidate string) bool {
	if len(candidate) < MinLength {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range candidate {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}
