package driver

import (
	"testing"

	"github.com/oisee/desbitslice/pkg/bitslice"
)

// TestKeyRegisterCounterCoversAllLanes checks that, with a zero prefix,
// the 64 lanes of a KeyRegister's low NumParallelBits bits enumerate
// every value 0..63 exactly once — the lane at bit position b (LSB-first)
// holds counter value 63-b by construction (see parallelCounterLanes).
func TestKeyRegisterCounterCoversAllLanes(t *testing.T) {
	kr := NewKeyRegister()
	lanes := kr.Lanes()

	seen := make(map[uint64]bool)
	for lane := 0; lane < 64; lane++ {
		var v uint64
		for i := 56 - NumParallelBits; i < 56; i++ {
			v = v<<1 | (lanes[i]>>uint(lane))&1
		}
		if seen[v] {
			t.Fatalf("counter value %d seen twice", v)
		}
		seen[v] = true
	}
	if len(seen) != 64 {
		t.Fatalf("counter covers %d distinct values, want 64", len(seen))
	}
}

// TestKeyRegisterAdvanceIncrementsPrefix checks that Advance behaves like
// a binary counter over the prefix bits: after k calls starting from
// zero, the shared prefix equals k.
func TestKeyRegisterAdvanceIncrementsPrefix(t *testing.T) {
	kr := NewKeyRegister()
	for want := uint64(1); want < 300; want++ {
		if ok := kr.Advance(); !ok {
			t.Fatalf("Advance reported overflow unexpectedly at step %d", want)
		}
		if got := prefixValue(kr); got != want {
			t.Fatalf("after %d Advance calls, prefix = %d, want %d", want, got, want)
		}
	}
}

// prefixValue reads the shared prefix back out of a KeyRegister. Each
// prefix lane is either all-zero or all-ones, so any single bit of the
// lane word reflects the shared value.
func prefixValue(kr *KeyRegister) uint64 {
	lanes := kr.Lanes()
	var v uint64
	for i := 0; i < PrefixBits; i++ {
		v = v<<1 | lanes[i]&1
	}
	return v
}

// TestPartitionCoversWholeSpaceExactlyOnce checks that Partition's shards
// tile [0, 2^PrefixBits) without gaps or overlaps.
func TestPartitionCoversWholeSpaceExactlyOnce(t *testing.T) {
	shards := Partition(7)
	var next uint64
	for _, s := range shards {
		if s.Start != next {
			t.Fatalf("shard %d starts at %d, want %d", s.Index, s.Start, next)
		}
		if s.End <= s.Start {
			t.Fatalf("shard %d is empty", s.Index)
		}
		next = s.End
	}
	if want := uint64(1) << uint(PrefixBits); next != want {
		t.Fatalf("shards cover up to %d, want %d", next, want)
	}
}

// TestRunFindsKnownKeyInFirstBatch plants a known effective key (< 64, so
// it lands in the prefix-0 batch's counter sweep), builds its ciphertext
// with the kernel itself, and checks Run recovers exactly that key from a
// one-batch shard.
func TestRunFindsKnownKeyInFirstBatch(t *testing.T) {
	const effectiveKey = uint64(37)
	const plaintext = 0x02468aceeca86420

	plainLanes := bitslice.Zip64(bitslice.Broadcast64(bitslice.PackBlock(plaintext)))
	keyLanes := bitslice.Zip56(bitslice.Broadcast64(effectiveKey))
	ciphertext := bitslice.UnpackBlock(bitslice.Unzip64(bitslice.Encrypt(plainLanes, keyLanes))[0])

	matches := Run(Config{
		Plaintext:  plaintext,
		Ciphertext: ciphertext,
		Shard:      Shard{Start: 0, End: 1},
	})

	found := false
	for _, m := range matches {
		if m.EffectiveKey == effectiveKey {
			found = true
		}
	}
	if !found {
		t.Fatalf("Run did not recover effective key %d; matches=%v", effectiveKey, matches)
	}
}

// TestRunEmptyShardFindsNothing checks Run on an empty shard range
// returns no matches.
func TestRunEmptyShardFindsNothing(t *testing.T) {
	matches := Run(Config{
		Plaintext:  0x0123456789abcdef,
		Ciphertext: 0xfedcba9876543210,
		Shard:      Shard{Start: 5, End: 5},
	})
	if len(matches) != 0 {
		t.Fatalf("empty shard produced %d matches, want 0", len(matches))
	}
}
