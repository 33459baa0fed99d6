package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateResetCode возвращает шестизначный код восстановления пароля
func GenerateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate reset code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
