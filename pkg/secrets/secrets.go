// Package secrets generates and verifies API keys for the mock ACTA backend.
package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/bcrypt"

	dErrors "github.com/acta-build/acta-go/pkg/domain-errors"
)

// GenerateAPIKey creates a random URL-safe API key.
func GenerateAPIKey() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "could not generate api key")
	}
	return "acta_" + base64.RawURLEncoding.EncodeToString(buf), nil
}

// HashAPIKey returns a bcrypt hash of key. A cost of zero uses
// bcrypt.DefaultCost.
func HashAPIKey(key string, cost int) ([]byte, error) {
	if key == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "api key cannot be empty")
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(key), cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, dErrors.New(dErrors.CodeValidation, "api key is too long")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not hash api key")
	}
	return hashed, nil
}

// VerifyAPIKey checks key against a hash from HashAPIKey.
func VerifyAPIKey(hash []byte, key string) error {
	if key == "" {
		return dErrors.New(dErrors.CodeUnauthorized, "api key required")
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(key)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return dErrors.New(dErrors.CodeUnauthorized, "invalid api key")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not verify api key")
	}
	return nil
}
