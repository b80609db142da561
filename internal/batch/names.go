package batch

import (
	"encoding/base64"
	"fmt"

	"file-encrypt/internal/xtea"
)

// EncryptName encrypts a file base name. The stream is encoded with unpadded
// URL-safe base64 so the result never contains a path separator.
func EncryptName(e *xtea.Engine, name string) string {
	return base64.RawURLEncoding.EncodeToString(e.Seal([]byte(name)))
}

// DecryptName reverses EncryptName.
func DecryptName(e *xtea.Engine, name string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(name)
	if err != nil {
		return "", fmt.Errorf("%w: file name %q: %v", xtea.ErrMalformedInput, name, err)
	}
	plain, err := e.Open(raw)
	if err != nil {
		return "", fmt.Errorf("file name %q: %w", name, err)
	}
	return string(plain), nil
}
