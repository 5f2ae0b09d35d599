package shell

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrHashingPasswordFailed is returned when bcrypt cannot hash a password.
var ErrHashingPasswordFailed = errors.New("hashing password failed")

// PasswordHasher hashes passwords with bcrypt. Plaintext passwords are never stored.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher uses bcrypt.DefaultCost if cost is out of bcrypt's range.
func NewPasswordHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return PasswordHasher{cost: cost}
}

// Hash fails for passwords longer than 72 bytes.
func (h PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Join(ErrHashingPasswordFailed, err)
	}

	return string(hash), nil
}

// Matches compares in constant time.
func (h PasswordHasher) Matches(passwordHash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) == nil
}
