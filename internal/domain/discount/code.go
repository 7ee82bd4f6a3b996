package discount

import (
	"crypto/rand"
	"fmt"
)

const (
	CodePrefix   = "MB-"
	codeLength   = 6
	codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// DefaultValidityDays is the window between minting and expiry.
const DefaultValidityDays = 30

// GenerateCode samples 6 uppercase base-36 characters. Collisions are left to
// the unique index on discount_codes.code; callers retry on duplicate key.
func GenerateCode() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate discount code: %w", err)
	}

	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}

	return CodePrefix + string(buf), nil
}
