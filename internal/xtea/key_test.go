package xtea

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey(t *testing.T) {
	tests := []struct {
		salt string
		want Key
	}{
		{"", Key{}},
		// Only the empty string means "no salt".
		{"0", Key{0x30303030, 0x30303030, 0x30303030, 0x30303030}},
		{"dave", Key{0x64617665, 0x64617665, 0x64617665, 0x64617665}},
		// "abcdeabcdeabcdea"
		{"abcde", Key{0x61626364, 0x65616263, 0x64656162, 0x63646561}},
		{"0123456789abcdefXYZ", Key{0x30313233, 0x34353637, 0x38396162, 0x63646566}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DeriveKey(tt.salt), "salt %q", tt.salt)
	}
}

func TestDeriveKeyIsDeterministic(t *testing.T) {
	assert.Equal(t, DeriveKey("dave"), DeriveKey("dave"))
}

func TestKeyFromWords(t *testing.T) {
	w := [4]uint32{0x00010203, 0x04050607, 0x08090a0b, 0x0c0d0e0f}
	k := KeyFromWords(w)
	assert.Equal(t, Key(w), k)
	assert.Equal(t, []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, k.Bytes())
}

func TestBytesToWords(t *testing.T) {
	words, err := BytesToWords([]byte{0xed, 0x23, 0x37, 0x5a, 0x82, 0x1a, 0x8c, 0x2d})
	require.NoError(t, err)
	assert.Equal(t, []uint32{0xed23375a, 0x821a8c2d}, words)

	_, err = BytesToWords([]byte{1, 2, 3})
	assert.True(t, errors.Is(err, ErrMalformedInput))

	assert.Equal(t, [4]byte{0x49, 0x7d, 0xf3, 0xd0}, WordToBytes(0x497df3d0))
}
