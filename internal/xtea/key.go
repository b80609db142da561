package xtea

// KeySize is the size of a key in bytes.
const KeySize = 16

// Key is the 128-bit cipher key as four words. It is a value type; re-keying
// means building a new Key.
type Key [4]uint32

// DeriveKey builds a key from an arbitrary salt. The salt is repeated until
// it fills KeySize bytes and the excess of the last repetition is dropped.
// Salts longer than KeySize contribute only their first KeySize bytes. An
// empty salt gives the all-zero key.
//
// The salt is used directly as key material with no stretching.
func DeriveKey(salt string) Key {
	if salt == "" {
		return Key{}
	}
	buf := make([]byte, 0, KeySize+len(salt))
	for len(buf) < KeySize {
		buf = append(buf, salt...)
	}
	// Length is a multiple of four here, so the error is unreachable.
	words, _ := BytesToWords(buf[:KeySize])
	return Key{words[0], words[1], words[2], words[3]}
}

// KeyFromWords uses w as the key unchanged.
func KeyFromWords(w [4]uint32) Key {
	return Key(w)
}

// Bytes returns the key as KeySize big-endian bytes.
func (k Key) Bytes() []byte {
	return AppendWords(make([]byte, 0, KeySize), k[:]...)
}
