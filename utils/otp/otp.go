package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateCode returns a cryptographically random 4-digit code (1000-9999).
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", fmt.Errorf("failed to generate random number: %w", err)
	}
	return fmt.Sprintf("%04d", n.Int64()+1000), nil
}
