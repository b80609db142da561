package xtea

import (
	"fmt"
	"time"
)

// IVSource produces the IV block for a chained encryption.
type IVSource func() Block

// TimeIV builds the IV from wall-clock time: Unix seconds in the first word
// and microseconds within the second in the second word.
//
// This IV is predictable. Two encryptions within the same microsecond get the
// same IV and, for the same plaintext, the same ciphertext.
func TimeIV(t time.Time) Block {
	return Block{uint32(t.Unix()), uint32(t.Nanosecond() / 1000)}
}

// EncryptStream CBC-encrypts blocks. The result starts with iv, followed by
// one ciphertext block per input block.
func EncryptStream(k Key, iv Block, blocks []Block) []Block {
	out := make([]Block, 0, len(blocks)+1)
	out = append(out, iv)
	prev := iv
	for _, b := range blocks {
		prev = EncryptBlock(k, Block{b.Y ^ prev.Y, b.Z ^ prev.Z})
		out = append(out, prev)
	}
	return out
}

// DecryptStream reverses EncryptStream. The first block is taken as the IV
// and dropped from the output.
func DecryptStream(k Key, blocks []Block) ([]Block, error) {
	if len(blocks) < 2 {
		return nil, fmt.Errorf("%w: chained stream needs an IV and at least one block, got %d blocks",
			ErrTruncatedInput, len(blocks))
	}
	out := make([]Block, 0, len(blocks)-1)
	for i := 1; i < len(blocks); i++ {
		d := DecryptBlock(k, blocks[i])
		out = append(out, Block{d.Y ^ blocks[i-1].Y, d.Z ^ blocks[i-1].Z})
	}
	return out, nil
}

// EncryptBlocks encrypts each block independently with no IV. It exists for
// known-answer tests and for showing what chaining hides; do not use it for
// data.
func EncryptBlocks(k Key, blocks []Block) []Block {
	out := make([]Block, len(blocks))
	for i, b := range blocks {
		out[i] = EncryptBlock(k, b)
	}
	return out
}

// DecryptBlocks is the inverse of EncryptBlocks.
func DecryptBlocks(k Key, blocks []Block) []Block {
	out := make([]Block, len(blocks))
	for i, b := range blocks {
		out[i] = DecryptBlock(k, b)
	}
	return out
}

// BlocksFromBytes splits buf into blocks.
func BlocksFromBytes(buf []byte) ([]Block, error) {
	words, err := BytesToWords(buf)
	if err != nil {
		return nil, err
	}
	if len(words)%2 != 0 {
		return nil, fmt.Errorf("%w: %d words do not form whole blocks", ErrTruncatedInput, len(words))
	}
	blocks := make([]Block, len(words)/2)
	for i := range blocks {
		blocks[i] = Block{words[2*i], words[2*i+1]}
	}
	return blocks, nil
}

// BlocksToBytes serializes blocks big-endian, 8 bytes per block.
func BlocksToBytes(blocks []Block) []byte {
	buf := make([]byte, 0, len(blocks)*BlockSize)
	for _, b := range blocks {
		buf = AppendWords(buf, b.Y, b.Z)
	}
	return buf
}
