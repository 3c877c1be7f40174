package desref

import "testing"

// TestEncryptNISTVector checks against the plaintext/key/ciphertext used
// throughout original_source/des.c and original_source/des_64.c's mains.
func TestEncryptNISTVector(t *testing.T) {
	const plaintext = 0x02468aceeca86420
	const key = 0x0f1571c947d9e859

	const ciphertext = uint64(0xda02ce3a89ecac3b)

	got := Encrypt(plaintext, key)
	if got != ciphertext {
		t.Fatalf("Encrypt(P) = 0x%016x, want 0x%016x", got, ciphertext)
	}
	back := Decrypt(got, key)
	if back != plaintext {
		t.Fatalf("Decrypt(Encrypt(P)) = 0x%016x, want 0x%016x", back, plaintext)
	}
}

// TestEncryptDecryptRoundTrip checks the round-trip property across a
// handful of arbitrary block/key pairs.
func TestEncryptDecryptRoundTrip(t *testing.T) {
	cases := []struct {
		name       string
		block, key uint64
	}{
		{"zero", 0, 0},
		{"all-ones", 0xffffffffffffffff, 0xffffffffffffffff},
		{"mixed-a", 0x123456789abcdef0, 0xfedcba9876543210},
		{"mixed-b", 0xdeadbeefcafef00d, 0x0011223344556677},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ct := Encrypt(c.block, c.key)
			pt := Decrypt(ct, c.key)
			if pt != c.block {
				t.Errorf("round trip failed: block=0x%016x key=0x%016x got=0x%016x", c.block, c.key, pt)
			}
		})
	}
}

// TestEncryptKeySensitivity checks that changing a single non-parity key
// bit changes the ciphertext, and that changing one of the 8 parity bits
// (the low bit of each byte, which PC1 drops) does not (a basic sanity
// check, not a full avalanche test).
func TestEncryptKeySensitivity(t *testing.T) {
	const block = 0x0123456789abcdef
	const key = 0x133457799bbcdff1

	base := Encrypt(block, key)
	for bit := 0; bit < 64; bit++ {
		flipped := key ^ (uint64(1) << uint(bit))
		changed := Encrypt(block, flipped) != base
		if bit%8 == 0 {
			if changed {
				t.Errorf("flipping parity key bit %d changed ciphertext", bit)
			}
		} else if !changed {
			t.Errorf("flipping key bit %d did not change ciphertext", bit)
		}
	}
}

// TestEffectiveKeyDropsEightBits checks EffectiveKey only ever returns
// values within 56 bits.
func TestEffectiveKeyDropsEightBits(t *testing.T) {
	for _, key := range []uint64{0, 0xffffffffffffffff, 0x0f1571c947d9e859} {
		got := EffectiveKey(key)
		if got&^uint64(0x00ffffffffffffff) != 0 {
			t.Errorf("EffectiveKey(0x%016x) = 0x%016x, has bits set above position 55", key, got)
		}
	}
}
