package helpers

import (
	"crypto/rand"
	"encoding/base64"
)

// GenToken returns n random bytes, URL-safe base64 encoded.
// Used for opaque session and flash tokens.
func GenToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
