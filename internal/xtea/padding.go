package xtea

import "bytes"

const padByte = ' '

// trimSet is the whitespace removed from the end of decrypted data.
const trimSet = " \t\n\r\x00\x0b"

// Pad appends spaces to p until its length is a multiple of BlockSize.
// Aligned input, including empty input, is returned unchanged.
func Pad(p []byte) []byte {
	n := len(p) % BlockSize
	if n == 0 {
		return p
	}
	out := make([]byte, len(p), len(p)+BlockSize-n)
	copy(out, p)
	return append(out, bytes.Repeat([]byte{padByte}, BlockSize-n)...)
}

// Unpad strips all trailing whitespace. Padding is not length-prefixed, so
// whitespace that ended the original plaintext is lost as well.
func Unpad(p []byte) []byte {
	return bytes.TrimRight(p, trimSet)
}
