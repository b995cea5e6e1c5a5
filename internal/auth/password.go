package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/lexical-decision/internal/domain"
)

// HashPassword returns the bcrypt hash of password at the default cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares password with a bcrypt hash.
// Returns domain.ErrUnauthorized on mismatch or when no hash is configured.
func CheckPassword(hash, password string) error {
	if hash == "" {
		return fmt.Errorf("admin login disabled: %w", domain.ErrUnauthorized)
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return domain.ErrUnauthorized
	default:
		return fmt.Errorf("compare password: %w", err)
	}
}
