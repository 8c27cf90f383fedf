package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the fixed work factor used for all password hashes.
const BcryptCost = 13

// Hasher is the one-way password hashing capability. It is injected into the
// auth service so tests can substitute a deterministic implementation.
type Hasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) bool
}

// BcryptHasher implements Hasher using bcrypt with a randomly generated salt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher with the fixed work factor.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: BcryptCost}
}

// Hash hashes a plaintext password
func (h *BcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Compare verifies a plaintext password against a stored hash
func (h *BcryptHasher) Compare(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
