package xtea

import (
	"crypto/cipher"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	refxtea "golang.org/x/crypto/xtea"
)

func TestEncryptBlockKnownAnswers(t *testing.T) {
	for _, ka := range knownAnswers {
		assert.Equal(t, ka.cipher, EncryptBlock(ka.key, ka.plain))
		assert.Equal(t, ka.plain, DecryptBlock(ka.key, ka.cipher))
	}
}

func TestDecryptBlockInvertsEncrypt(t *testing.T) {
	keys := []Key{
		{},
		{0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff},
		DeriveKey("dave"),
		{0x01234567, 0x89abcdef, 0xfedcba98, 0x76543210},
	}
	blocks := []Block{
		{},
		{0xffffffff, 0xffffffff},
		{0x80000000, 0x00000001},
		{0xdeadbeef, 0xcafebabe},
	}
	for _, k := range keys {
		for _, b := range blocks {
			assert.Equal(t, b, DecryptBlock(k, EncryptBlock(k, b)), "key %08x block %08x", k, b)
		}
	}
}

func TestCipherMatchesReference(t *testing.T) {
	for _, salt := range []string{"", "dave", "a much longer salt than sixteen bytes", "k3y!"} {
		k := DeriveKey(salt)
		ref, err := refxtea.NewCipher(k.Bytes())
		require.NoError(t, err)

		c := NewCipher(k)
		src := []byte("\x00\x11\x22\x33\x44\x55\x66\x77")
		got := make([]byte, BlockSize)
		want := make([]byte, BlockSize)

		c.Encrypt(got, src)
		ref.Encrypt(want, src)
		assert.Equal(t, want, got, "salt %q", salt)

		c.Decrypt(got, want)
		assert.Equal(t, src, got, "salt %q", salt)
	}
}

func TestBoundedArithmeticWraps(t *testing.T) {
	assert.Equal(t, uint32(0), add32(0xffffffff, 1))
	assert.Equal(t, uint32(0x7ffffffe), add32(0xffffffff, 0x7fffffff))
	assert.Equal(t, uint32(0x07ffffff), rshift32(0xffffffff, 5))
	assert.Equal(t, uint32(1), rshift32(0x80000000, 31))
}

func TestCipherInStdlibCBC(t *testing.T) {
	k := DeriveKey("dave")
	iv := Block{0x01020304, 0x05060708}
	plain := []byte("sixteen byte msg")

	ct := make([]byte, len(plain))
	cipher.NewCBCEncrypter(NewCipher(k), BlocksToBytes([]Block{iv})).CryptBlocks(ct, plain)

	blocks, err := BlocksFromBytes(plain)
	require.NoError(t, err)
	want := BlocksToBytes(EncryptStream(k, iv, blocks)[1:])
	assert.Equal(t, want, ct)
}
