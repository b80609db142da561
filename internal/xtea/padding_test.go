package xtea

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPad(t *testing.T) {
	assert.Empty(t, Pad(nil))
	assert.Equal(t, []byte("abc     "), Pad([]byte("abc")))
	assert.Equal(t, []byte("exactly8"), Pad([]byte("exactly8")))
	assert.Equal(t, []byte("123456789       "), Pad([]byte("123456789")))
}

func TestPadDoesNotAlias(t *testing.T) {
	in := make([]byte, 3, 8)
	copy(in, "abc")
	out := Pad(in)
	out[0] = 'z'
	assert.Equal(t, byte('a'), in[0])
}

func TestUnpad(t *testing.T) {
	assert.Equal(t, []byte("abc"), Unpad([]byte("abc     ")))
	assert.Equal(t, []byte("abc"), Unpad([]byte("abc\t\r\n\x00\x0b ")))
	assert.Equal(t, []byte(" abc"), Unpad([]byte(" abc")))
	assert.Empty(t, Unpad([]byte("        ")))
}
