package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes plain with bcrypt at the given cost. The salt is
// generated per call, so hashing the same password twice yields different
// strings.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether plain matches the bcrypt hash. A malformed
// hash is treated as a non-match.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
