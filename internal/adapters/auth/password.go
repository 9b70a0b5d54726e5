package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"campuscalendar/internal/domain"
)

type bcryptChecker struct{}

// NewBcryptChecker returns a PasswordChecker for bcrypt hashes.
func NewBcryptChecker() domain.PasswordChecker {
	return bcryptChecker{}
}

func (bcryptChecker) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// HashPassword returns the bcrypt hash of password. A cost of zero uses bcrypt.DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
