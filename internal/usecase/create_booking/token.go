package create_booking

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// confirmTokenBytes количество байт энтропии токена подтверждения
const confirmTokenBytes = 24

// generateConfirmToken генерирует криптографически случайный токен подтверждения
// 24 байта энтропии в hex — 48 символов
func generateConfirmToken() (string, error) {
	buf := make([]byte, confirmTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%w: failed to generate confirm token: %v", ErrInternal, err)
	}
	return hex.EncodeToString(buf), nil
}
