package xtea

// Word arithmetic. uint32 already wraps modulo 2^32 and >> on an unsigned
// operand is a logical shift, so these are plain operators.

func add32(a, b uint32) uint32 { return a + b }

func rshift32(v uint32, n uint) uint32 { return v >> n }
