package redemption

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
)

var ErrInvalidTokenValue = errors.New("invalid token value")

// tokenBytes gives 256 bits of randomness, comfortably above the 122-bit
// floor needed to make guessing within the validity window unrealistic.
const tokenBytes = 32

// TokenValue is the opaque URL-safe credential embedded in the QR URL. It is
// pure randomness, never derived from member or campaign identifiers, so it
// cannot be forged or replay-guessed.
type TokenValue string

func NewTokenValue() (TokenValue, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return TokenValue(base64.RawURLEncoding.EncodeToString(buf)), nil
}

func ParseTokenValue(s string) (TokenValue, error) {
	if s == "" {
		return "", ErrInvalidTokenValue
	}
	if _, err := base64.RawURLEncoding.DecodeString(s); err != nil {
		return "", ErrInvalidTokenValue
	}
	return TokenValue(s), nil
}

func (v TokenValue) String() string {
	return string(v)
}
