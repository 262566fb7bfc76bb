package utils

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost is the bcrypt work factor used when the configuration
// does not specify one. A cost of 12 keeps hashing time reasonable while
// staying well above the library default.
const DefaultBcryptCost = 12

// HashPassword produces a salted, algorithm-tagged bcrypt digest of the
// given plaintext password. The salt is generated per call, so hashing the
// same password twice yields different digests.
//
// If cost is outside the valid bcrypt range, DefaultBcryptCost is used.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}

	return string(digest), nil
}

// VerifyPassword recomputes the digest of password against the salt embedded
// in hash and compares the results in constant time.
//
// It fails closed: a malformed or truncated stored hash yields false, never
// a panic or a partial match.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
