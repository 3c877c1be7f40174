package bitslice

import (
	"testing"

	"github.com/oisee/desbitslice/pkg/desref"
)

// packAndZip prepares the kernel's bit-major inputs for a batch of 64
// plaintext/key pairs: each pair is independently pre-permuted with
// PackBlock/PackEffectiveKey, then the batch is zipped into lanes.
func packAndZip(blocks, keys [64]uint64) (BlockLanes, KeyLanes) {
	var packedBlocks, packedKeys [64]uint64
	for i := range blocks {
		packedBlocks[i] = PackBlock(blocks[i])
		packedKeys[i] = PackEffectiveKey(keys[i])
	}
	return Zip64(packedBlocks), Zip56(packedKeys)
}

// TestEncryptMatchesScalarOracleBroadcast runs all 64 lanes with the same
// NIST test-vector plaintext/key and checks every lane against desref.
func TestEncryptMatchesScalarOracleBroadcast(t *testing.T) {
	const plaintext = 0x02468aceeca86420
	const key = 0x0f1571c947d9e859

	want := desref.Encrypt(plaintext, key)

	blockLanes, keyLanes := packAndZip(Broadcast64(plaintext), Broadcast64(key))
	got := Encrypt(blockLanes, keyLanes)
	outBlocks := Unzip64(got)

	for lane := 0; lane < 64; lane++ {
		if UnpackBlock(outBlocks[lane]) != want {
			t.Fatalf("lane %d: got 0x%016x, want 0x%016x", lane, UnpackBlock(outBlocks[lane]), want)
		}
	}
}

// TestEncryptMatchesScalarOracleDistinctKeys sweeps 64 distinct keys (one
// per lane, differing in their low 6 bits) against the same plaintext, and
// checks each lane's result independently against desref.
func TestEncryptMatchesScalarOracleDistinctKeys(t *testing.T) {
	const plaintext = 0x123456789abcdef0
	const baseKey = 0xfedcba9876543210

	var blocks, keys [64]uint64
	for i := range keys {
		blocks[i] = plaintext
		keys[i] = baseKey ^ uint64(i)
	}

	blockLanes, keyLanes := packAndZip(blocks, keys)
	got := Unzip64(Encrypt(blockLanes, keyLanes))

	for i := range keys {
		want := desref.Encrypt(plaintext, keys[i])
		if UnpackBlock(got[i]) != want {
			t.Errorf("lane %d (key 0x%016x): got 0x%016x, want 0x%016x", i, keys[i], UnpackBlock(got[i]), want)
		}
	}
}

// TestDecryptMatchesScalarOracle checks the decrypt direction the same way,
// starting from ciphertexts produced by the scalar oracle.
func TestDecryptMatchesScalarOracle(t *testing.T) {
	const key = 0x133457799bbcdff1
	plaintexts := []uint64{0, 0xffffffffffffffff, 0x0123456789abcdef, 0x0f1571c947d9e859}

	var blocks, keys [64]uint64
	for i := range blocks {
		src := plaintexts[i%len(plaintexts)]
		blocks[i] = desref.Encrypt(src, key)
		keys[i] = key
	}

	blockLanes, keyLanes := packAndZip(blocks, keys)
	got := Unzip64(Decrypt(blockLanes, keyLanes))

	for i := range blocks {
		want := plaintexts[i%len(plaintexts)]
		if UnpackBlock(got[i]) != want {
			t.Errorf("lane %d: got 0x%016x, want 0x%016x", i, UnpackBlock(got[i]), want)
		}
	}
}

// TestCompareFindsMatchingLane checks that Compare flags exactly the lanes
// whose ciphertext equals the target, among a batch where only one key is
// correct. The wrong keys differ from the correct one in non-parity bits
// only, and lane c is mask bit c counted from the most significant bit.
func TestCompareFindsMatchingLane(t *testing.T) {
	const plaintext = 0x02468aceeca86420
	const correctKey = 0x0f1571c947d9e859
	const correctLane = 17

	target := desref.Encrypt(plaintext, correctKey)

	var blocks, keys [64]uint64
	for i := range keys {
		blocks[i] = plaintext
		if i == correctLane {
			keys[i] = correctKey
		} else {
			keys[i] = correctKey ^ uint64(i+1)<<1
		}
	}

	blockLanes, keyLanes := packAndZip(blocks, keys)
	got := Encrypt(blockLanes, keyLanes)

	// Encrypt leaves L16||R16 in place; PackBlock(ciphertext) is R16||L16,
	// so the halves are swapped to compare like with like.
	packedTarget := PackBlock(target)
	targetBlocks := Broadcast64(packedTarget<<32 | packedTarget>>32)
	targetLanes := Zip64(targetBlocks)

	mask := Compare(got, targetLanes)
	want := ^MatchMask(0) &^ (MatchMask(1) << uint(63-correctLane))
	if mask != want {
		t.Fatalf("Compare mask = 0x%016x, want 0x%016x (only lane %d clear)", mask, want, correctLane)
	}
}

// TestZip64IsSelfInverse checks the property the spec actually names
// (§8 property 1): Zip64(Zip64(x)) == x.
func TestZip64IsSelfInverse(t *testing.T) {
	var blocks [64]uint64
	for i := range blocks {
		blocks[i] = uint64(i) * 0x0101010101010101
	}
	once := Zip64(blocks)
	twice := Zip64([64]uint64(once))
	if [64]uint64(twice) != blocks {
		t.Fatalf("Zip64(Zip64(x)) != x")
	}
}

// TestUnzip64RoundTrip checks Zip64/Unzip64 are mutual inverses on
// arbitrary data.
func TestUnzip64RoundTrip(t *testing.T) {
	var blocks [64]uint64
	for i := range blocks {
		blocks[i] = uint64(i) * 0x0101010101010101
	}
	got := Unzip64(Zip64(blocks))
	if got != blocks {
		t.Fatalf("Zip64/Unzip64 round trip mismatch")
	}
}
