// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/grocery-tracker/backend/internal/application/adapter"
)

const (
	// bcryptCost is the cost factor for bcrypt hashing.
	bcryptCost = 12
	// minPassphraseLength is the minimum required passphrase length.
	minPassphraseLength = 8
)

// passphraseService implements the adapter.PassphraseService interface.
type passphraseService struct{}

// NewPassphraseService creates a new passphrase service instance.
func NewPassphraseService() adapter.PassphraseService {
	return &passphraseService{}
}

// HashPassphrase hashes a plain text passphrase using bcrypt with cost 12.
func (s *passphraseService) HashPassphrase(passphrase string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// VerifyPassphrase compares a plain text passphrase with a hashed passphrase.
func (s *passphraseService) VerifyPassphrase(hashedPassphrase, passphrase string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassphrase), []byte(passphrase))
}

// ValidatePassphraseStrength validates if a passphrase meets minimum requirements.
func (s *passphraseService) ValidatePassphraseStrength(passphrase string) error {
	if len(passphrase) < minPassphraseLength {
		return errors.New("passphrase must be at least 8 characters long")
	}
	return nil
}
