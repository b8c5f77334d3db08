package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns a bcrypt hash of the password.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether password matches stored, which is either a
// bcrypt hash or, for records written by earlier versions, the plaintext
// password itself. Plaintext comparison is constant-time; new writes always
// store hashes.
func CheckPassword(stored, password string) bool {
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)); err == nil {
		return true
	}
	if !strings.HasPrefix(stored, "$2") {
		return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
	}
	return false
}
