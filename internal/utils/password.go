package utils

import (
	"fmt"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/apperrors"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt cannot hash more than 72 bytes.
const maxPasswordBytes = 72

// HashPassword returns the bcrypt hash of password. Empty and over-long passwords
// fail with apperrors.ErrValidation.
func HashPassword(password string) (string, error) {
	if password == "" || len(password) > maxPasswordBytes {
		return "", fmt.Errorf("%w: password must be between 1 and %d bytes", apperrors.ErrValidation, maxPasswordBytes)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether password matches hash. Users without a stored
// hash never match.
func CheckPasswordHash(password, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
