package security

import "golang.org/x/crypto/bcrypt"

// BcryptHasher implements ports.PasswordHasher using bcrypt. The salt is
// generated per call and embedded in the returned hash string.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the given cost factor; values
// outside bcrypt's range fall back to the library default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
