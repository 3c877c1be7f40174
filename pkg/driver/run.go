package driver

import "github.com/oisee/desbitslice/pkg/bitslice"

// Config describes one search: a known plaintext/ciphertext pair and the
// shard of the effective-key prefix space to cover.
type Config struct {
	Plaintext  uint64
	Ciphertext uint64
	Shard      Shard
	// OnBatch, if set, is called once per 64-key batch with the number of
	// keys just checked (always 64) — used to drive progress reporting.
	OnBatch func(checked uint64)
}

// Match is one effective key, found within a shard, that encrypts
// Config.Plaintext to Config.Ciphertext.
type Match struct {
	EffectiveKey uint64
	Lane         int
}

// Run walks cfg.Shard's prefix range one 64-key batch at a time and
// returns every effective key that reproduces Config.Ciphertext. It never
// stops early on a match: a single known plaintext/ciphertext pair can be
// satisfied by more than one 56-bit key, and a shard's caller needs all of
// them, not just the first.
func Run(cfg Config) []Match {
	plainLanes := bitslice.Zip64(bitslice.Broadcast64(bitslice.PackBlock(cfg.Plaintext)))
	// Encrypt leaves L16||R16 in place; PackBlock(ciphertext) is R16||L16,
	// so the target's halves are swapped to match the kernel's output.
	packedTarget := bitslice.PackBlock(cfg.Ciphertext)
	targetLanes := bitslice.Zip64(bitslice.Broadcast64(packedTarget<<32 | packedTarget>>32))

	var matches []Match
	kr := NewKeyRegister()
	kr.SeedPrefix(PrefixBitsOf(cfg.Shard.Start))
	for n := cfg.Shard.Start; n < cfg.Shard.End; n++ {
		got := bitslice.Encrypt(plainLanes, kr.Lanes())
		if mask := bitslice.Compare(got, targetLanes); mask != ^bitslice.MatchMask(0) {
			matches = append(matches, extractMatches(kr, mask)...)
		}
		if cfg.OnBatch != nil {
			cfg.OnBatch(64)
		}
		kr.Advance()
	}
	return matches
}

// extractMatches reconstructs the scalar 56-bit effective key carried by
// each lane clear in mask (a clear bit means that lane matched).
func extractMatches(kr *KeyRegister, mask bitslice.MatchMask) []Match {
	lanes := kr.Lanes()
	var out []Match
	for lane := 0; lane < 64; lane++ {
		if mask&(uint64(1)<<uint(lane)) != 0 {
			continue
		}
		var key uint64
		for bitPos := 0; bitPos < 56; bitPos++ {
			key = key<<1 | (lanes[bitPos]>>uint(lane))&1
		}
		out = append(out, Match{EffectiveKey: key, Lane: lane})
	}
	return out
}
