package xtea

import "errors"

var (
	// ErrMalformedInput is returned for ciphertext that is not valid base64
	// or whose byte length does not split into whole words.
	ErrMalformedInput = errors.New("xtea: malformed input")

	// ErrTruncatedInput is returned when a chained stream is missing its IV
	// block or ends in the middle of a block.
	ErrTruncatedInput = errors.New("xtea: truncated input")
)
