// Package passwords hashes and checks user passwords with bcrypt.
package passwords

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	dErrors "holocron/pkg/domain-errors"
)

// MinLength is the shortest password Hash accepts.
const MinLength = 8

// Hasher hashes with a fixed bcrypt cost. The zero value uses bcrypt.DefaultCost.
type Hasher struct {
	Cost int
}

// Hash returns the bcrypt hash of password.
func (h Hasher) Hash(password string) (string, error) {
	if len(password) < MinLength {
		return "", dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("password must be at least %d characters", MinLength))
	}
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", dErrors.New(dErrors.CodeInvalidInput, "password is too long")
		}
		return "", fmt.Errorf("could not hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports a CodeUnauthorized error when password does not match hash.
func Verify(password, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
	default:
		return fmt.Errorf("could not verify password: %w", err)
	}
}

// Generate returns a random URL-safe password for seeded accounts.
func Generate() (string, error) {
	buf := make([]byte, 18)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("could not generate password: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
