package xtea

import (
	"encoding/binary"
	"fmt"
)

// BytesToWords splits buf into big-endian 32-bit words.
func BytesToWords(buf []byte) ([]uint32, error) {
	if len(buf)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of words", ErrMalformedInput, len(buf))
	}
	words := make([]uint32, len(buf)/4)
	for i := range words {
		words[i] = binary.BigEndian.Uint32(buf[i*4:])
	}
	return words, nil
}

// WordToBytes returns the big-endian encoding of w.
func WordToBytes(w uint32) [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], w)
	return b
}

// AppendWords appends the big-endian encoding of each word to dst.
func AppendWords(dst []byte, words ...uint32) []byte {
	for _, w := range words {
		dst = binary.BigEndian.AppendUint32(dst, w)
	}
	return dst
}
