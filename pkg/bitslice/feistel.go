package bitslice

// blockStart returns the offset into a fused 64-lane block where the half
// read by this round's expansion starts. Ported from check_keys.c's
// BLOCK_START macro: rounds alternate which half they read, starting with
// the right half (lanes 32..63) on round 0.
func blockStart(round int) int {
	return ((round + 1) % 2) * 32
}

// expanded returns expansion-permutation output bit i (0..5) of S-box
// snum's input, for the given round, read out of the fused block. Ported
// from check_keys.c's EXPANDED macro: expansion and the per-S-box 6-bit
// grouping are fused into one index computation rather than built as a
// separate 48-bit permutation step.
func expanded(block *BlockLanes, snum, i, round int) uint64 {
	idx := (snum*4+(i+31)%32)%32 + blockStart(round)
	return block[idx]
}

// feistelRound computes one round's 32-bit output (still in bit-major
// lanes), ready to be XORed into the half the round writes. subkeyOrder is
// this round's 48-entry key-bit table (see tables.go); which table to pass
// is what distinguishes encryption from decryption.
func feistelRound(block *BlockLanes, key *KeyLanes, subkeyOrder *[48]uint8, round int) [32]uint64 {
	var out [32]uint64
	for snum := 0; snum < 8; snum++ {
		var in [6]uint64
		for i := 0; i < 6; i++ {
			in[i] = expanded(block, snum, i, round) ^ key[subkeyOrder[snum*6+i]]
		}
		o1, o2, o3, o4 := sboxes[snum](in[0], in[1], in[2], in[3], in[4], in[5])
		outs := [4]uint64{o1, o2, o3, o4}
		for j := 0; j < 4; j++ {
			out[feistelOutPerm[snum*4+j]] = outs[j]
		}
	}
	return out
}
