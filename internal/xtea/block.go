package xtea

import (
	"crypto/cipher"
	"encoding/binary"
)

// BlockSize is the cipher block size in bytes.
const BlockSize = 8

const (
	rounds = 32
	delta  = uint32(0x9E3779B9)
	// decryptSum is rounds*delta mod 2^32.
	decryptSum = uint32(0xC6EF3720)
)

// Block is one 64-bit cipher block as two words.
type Block struct {
	Y, Z uint32
}

// mix is the Feistel round function: ((v<<4 ^ v>>5) + v) ^ (sum + k).
func mix(v, sum, k uint32) uint32 {
	return add32(v<<4^rshift32(v, 5), v) ^ add32(sum, k)
}

// EncryptBlock runs the 32 XTEA rounds over b.
func EncryptBlock(k Key, b Block) Block {
	y, z := b.Y, b.Z
	sum := uint32(0)
	for i := 0; i < rounds; i++ {
		y = add32(y, mix(z, sum, k[sum&3]))
		sum = add32(sum, delta)
		z = add32(z, mix(y, sum, k[rshift32(sum, 11)&3]))
	}
	return Block{y, z}
}

// DecryptBlock inverts EncryptBlock. A wrong key gives garbage, not an error.
func DecryptBlock(k Key, b Block) Block {
	y, z := b.Y, b.Z
	sum := decryptSum
	for i := 0; i < rounds; i++ {
		z -= mix(y, sum, k[rshift32(sum, 11)&3])
		sum -= delta
		y -= mix(z, sum, k[sum&3])
	}
	return Block{y, z}
}

// Cipher adapts the block functions to crypto/cipher.Block.
type Cipher struct {
	key Key
}

// NewCipher returns a Cipher bound to k.
func NewCipher(k Key) *Cipher {
	return &Cipher{key: k}
}

var _ cipher.Block = (*Cipher)(nil)

// BlockSize returns the cipher block size in bytes.
func (c *Cipher) BlockSize() int { return BlockSize }

// Encrypt encrypts the first block of src into dst.
func (c *Cipher) Encrypt(dst, src []byte) {
	putBlock(dst, EncryptBlock(c.key, loadBlock(src)))
}

// Decrypt decrypts the first block of src into dst.
func (c *Cipher) Decrypt(dst, src []byte) {
	putBlock(dst, DecryptBlock(c.key, loadBlock(src)))
}

func loadBlock(src []byte) Block {
	return Block{binary.BigEndian.Uint32(src[0:]), binary.BigEndian.Uint32(src[4:])}
}

func putBlock(dst []byte, b Block) {
	binary.BigEndian.PutUint32(dst[0:], b.Y)
	binary.BigEndian.PutUint32(dst[4:], b.Z)
}
