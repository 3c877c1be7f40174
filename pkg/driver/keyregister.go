// Package driver runs the bitsliced DES kernel over a key-space search:
// it walks successive 64-key batches, checks each batch's ciphertexts
// against a target, and reports any lane that matches.
package driver

import "github.com/oisee/desbitslice/pkg/bitslice"

// NumParallelBits is log2(64): the kernel always explores 64 independent
// keys per Encrypt/Decrypt call, so KeyRegister dedicates that many
// low-order effective-key bits to a fixed counting pattern that makes the
// 64 lanes of a single call cover all 64 combinations of those bits.
const NumParallelBits = 6

// parallelCounterLanes are the bit-major patterns that give the low
// NumParallelBits effective-key bits all 64 combinations across the 64
// lanes of one kernel call. Ported verbatim from
// original_source/crack/check_keys.c's keys_zipped initializer.
var parallelCounterLanes = [NumParallelBits]uint64{
	0x00000000ffffffff,
	0x0000ffff0000ffff,
	0x00ff00ff00ff00ff,
	0x0f0f0f0f0f0f0f0f,
	0x3333333333333333,
	0x5555555555555555,
}

// KeyRegister holds the 56-bit effective-key search state across 64
// parallel lanes. Lane indices 0..55-NumParallelBits carry a shared
// prefix — identical across all 64 lanes — that Advance increments one
// batch at a time; the bottom NumParallelBits lane indices hold the fixed
// counter above, so a single Encrypt/Decrypt call checks 64 distinct
// candidates sharing that prefix.
type KeyRegister struct {
	lanes bitslice.KeyLanes
}

// NewKeyRegister builds a KeyRegister with the counter lanes installed and
// the prefix zeroed.
func NewKeyRegister() *KeyRegister {
	kr := &KeyRegister{}
	copy(kr.lanes[56-NumParallelBits:], parallelCounterLanes[:])
	return kr
}

// SeedPrefix sets the shared prefix bits (lane indices
// 0..len(prefix)-1) from a slice of 0/1 values, broadcasting each bit
// across all 64 lanes. len(prefix) must not exceed 56-NumParallelBits.
func (kr *KeyRegister) SeedPrefix(prefix []uint8) {
	for i, bit := range prefix {
		if bit != 0 {
			kr.lanes[i] = ^uint64(0)
		} else {
			kr.lanes[i] = 0
		}
	}
}

// Lanes returns the current 64-lane effective-key state, ready to pass to
// bitslice.Encrypt/Decrypt.
func (kr *KeyRegister) Lanes() bitslice.KeyLanes {
	return kr.lanes
}

// Advance increments the shared prefix by one, ripple-carrying from the
// bit adjacent to the fixed counter toward the most significant prefix
// bit. It reports false once the carry propagates past bit 0 — the whole
// prefix range below that point is exhausted. Ported from check_keys.c's
// advance loop.
func (kr *KeyRegister) Advance() bool {
	for j := 56 - NumParallelBits - 1; j >= 0; j-- {
		kr.lanes[j] = ^kr.lanes[j]
		if kr.lanes[j] != 0 {
			return true
		}
	}
	return false
}
