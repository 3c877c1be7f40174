// Package bitslice implements a bit-major, 64-lane DES encryption and
// decryption kernel: each of the 64 bits of a uint64 is a lane, and a
// single 64-bit value holds one bit position for 64 independent DES
// computations at once. One bitwise instruction therefore advances all 64
// computations by one gate.
package bitslice

// BlockLanes holds a 64-bit DES block (plaintext or ciphertext) in bit-major
// form: BlockLanes[i] packs bit i of the block across 64 parallel lanes.
// Lane index 0 is the block's most significant bit.
type BlockLanes [64]uint64

// HalfLanes holds one 32-bit Feistel half in bit-major form.
type HalfLanes [32]uint64

// KeyLanes holds the 56-bit effective key (the raw key with its 8 parity
// bits dropped, MSB-first) in bit-major form. KeyLanes[i] packs
// effective-key bit i across 64 parallel lanes.
type KeyLanes [56]uint64

// MatchMask is a 64-bit lane mask, lanes numbered from the most
// significant bit: bit i (MSB-first) clear means lane i's computation
// matched on every bit position; set means it differed somewhere (see
// Compare).
type MatchMask = uint64

// NumRounds is the number of DES Feistel rounds.
const NumRounds = 16
