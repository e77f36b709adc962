package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt hash of the plaintext. Two calls on
// the same input yield different hashes.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored bcrypt hash.
// A malformed hash returns false, never an error or panic.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
