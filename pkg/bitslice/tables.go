package bitslice

// feistelOutPerm scatters each S-box's 4 output bits to their final
// position in the 32-bit Feistel output, ported from
// original_source/crack/check_keys.c's feistel_output_order.
var feistelOutPerm = [32]uint8{
	8, 16, 22, 30, 12, 27, 1, 17,
	23, 15, 29, 5, 25, 19, 9, 0,
	7, 13, 24, 2, 3, 28, 10, 18,
	31, 11, 21, 6, 4, 26, 14, 20,
}

// subkeyOrderDecrypt[r][i] names which of the 56 KeyLanes lines supplies
// subkey bit i of round r, in decrypt (ciphertext-to-plaintext) order.
// Ported verbatim from check_keys.c's key_bit_orders, whose array order —
// "Subkey 15" down to "Subkey 0" — is already the decrypt round order.
var subkeyOrderDecrypt = [16][48]uint8{
	{ // round 0 ("Subkey 15")
		15, 51, 36, 2, 49, 21,
		35, 31, 8, 14, 23, 43,
		9, 37, 29, 28, 45, 0,
		1, 7, 38, 30, 22, 42,
		26, 4, 41, 54, 39, 10,
		48, 33, 11, 53, 27, 32,
		5, 25, 40, 3, 20, 24,
		46, 19, 18, 6, 55, 34,
	},
	{ // round 1 ("Subkey 14")
		22, 1, 43, 9, 31, 28,
		42, 38, 15, 21, 30, 50,
		16, 44, 36, 35, 52, 7,
		8, 14, 45, 37, 29, 49,
		33, 11, 48, 6, 46, 17,
		55, 40, 18, 5, 34, 39,
		12, 32, 47, 10, 27, 4,
		53, 26, 25, 13, 3, 41,
	},
	{ // round 2 ("Subkey 13")
		36, 15, 0, 23, 45, 42,
		31, 52, 29, 35, 44, 7,
		30, 1, 50, 49, 9, 21,
		22, 28, 2, 51, 43, 38,
		47, 25, 3, 20, 5, 4,
		10, 54, 32, 19, 48, 53,
		26, 46, 6, 24, 41, 18,
		12, 40, 39, 27, 17, 55,
	},
	{ // round 3 ("Subkey 12")
		50, 29, 14, 37, 2, 31,
		45, 9, 43, 49, 1, 21,
		44, 15, 7, 38, 23, 35,
		36, 42, 16, 8, 0, 52,
		6, 39, 17, 34, 19, 18,
		24, 13, 46, 33, 3, 12,
		40, 5, 20, 11, 55, 32,
		26, 54, 53, 41, 4, 10,
	},
	{ // round 4 ("Subkey 11")
		7, 43, 28, 51, 16, 45,
		2, 23, 0, 38, 15, 35,
		1, 29, 21, 52, 37, 49,
		50, 31, 30, 22, 14, 9,
		20, 53, 4, 48, 33, 32,
		11, 27, 5, 47, 17, 26,
		54, 19, 34, 25, 10, 46,
		40, 13, 12, 55, 18, 24,
	},
	{ // round 5 ("Subkey 10")
		21, 0, 42, 8, 30, 2,
		16, 37, 14, 52, 29, 49,
		15, 43, 35, 9, 51, 38,
		7, 45, 44, 36, 28, 23,
		34, 12, 18, 3, 47, 46,
		25, 41, 19, 6, 4, 40,
		13, 33, 48, 39, 24, 5,
		54, 27, 26, 10, 32, 11,
	},
	{ // round 6 ("Subkey 9")
		35, 14, 31, 22, 44, 16,
		30, 51, 28, 9, 43, 38,
		29, 0, 49, 23, 8, 52,
		21, 2, 1, 50, 42, 37,
		48, 26, 32, 17, 6, 5,
		39, 55, 33, 20, 18, 54,
		27, 47, 3, 53, 11, 19,
		13, 41, 40, 24, 46, 25,
	},
	{ // round 7 ("Subkey 8")
		49, 28, 45, 36, 1, 30,
		44, 8, 42, 23, 0, 52,
		43, 14, 38, 37, 22, 9,
		35, 16, 15, 7, 31, 51,
		3, 40, 46, 4, 20, 19,
		53, 10, 47, 34, 32, 13,
		41, 6, 17, 12, 25, 33,
		27, 55, 54, 11, 5, 39,
	},
	{ // round 8 ("Subkey 7")
		31, 35, 52, 43, 8, 37,
		51, 15, 49, 30, 7, 2,
		50, 21, 45, 44, 29, 16,
		42, 23, 22, 14, 38, 1,
		10, 47, 53, 11, 27, 26,
		5, 17, 54, 41, 39, 20,
		48, 13, 24, 19, 32, 40,
		34, 3, 6, 18, 12, 46,
	},
	{ // round 9 ("Subkey 6")
		45, 49, 9, 0, 22, 51,
		8, 29, 38, 44, 21, 16,
		7, 35, 2, 1, 43, 30,
		31, 37, 36, 28, 52, 15,
		24, 6, 12, 25, 41, 40,
		19, 4, 13, 55, 53, 34,
		3, 27, 11, 33, 46, 54,
		48, 17, 20, 32, 26, 5,
	},
	{ // round 10 ("Subkey 5")
		2, 38, 23, 14, 36, 8,
		22, 43, 52, 1, 35, 30,
		21, 49, 16, 15, 0, 44,
		45, 51, 50, 42, 9, 29,
		11, 20, 26, 39, 55, 54,
		33, 18, 27, 10, 12, 48,
		17, 41, 25, 47, 5, 13,
		3, 4, 34, 46, 40, 19,
	},
	{ // round 11 ("Subkey 4")
		16, 52, 37, 28, 50, 22,
		36, 0, 9, 15, 49, 44,
		35, 38, 30, 29, 14, 1,
		2, 8, 7, 31, 23, 43,
		25, 34, 40, 53, 10, 13,
		47, 32, 41, 24, 26, 3,
		4, 55, 39, 6, 19, 27,
		17, 18, 48, 5, 54, 33,
	},
	{ // round 12 ("Subkey 3")
		30, 9, 51, 42, 7, 36,
		50, 14, 23, 29, 38, 1,
		49, 52, 44, 43, 28, 15,
		16, 22, 21, 45, 37, 0,
		39, 48, 54, 12, 24, 27,
		6, 46, 55, 11, 40, 17,
		18, 10, 53, 20, 33, 41,
		4, 32, 3, 19, 13, 47,
	},
	{ // round 13 ("Subkey 2")
		44, 23, 8, 31, 21, 50,
		7, 28, 37, 43, 52, 15,
		38, 9, 1, 0, 42, 29,
		30, 36, 35, 2, 51, 14,
		53, 3, 13, 26, 11, 41,
		20, 5, 10, 25, 54, 4,
		32, 24, 12, 34, 47, 55,
		18, 46, 17, 33, 27, 6,
	},
	{ // round 14 ("Subkey 1")
		1, 37, 22, 45, 35, 7,
		21, 42, 51, 0, 9, 29,
		52, 23, 15, 14, 31, 43,
		44, 50, 49, 16, 8, 28,
		12, 17, 27, 40, 25, 55,
		34, 19, 24, 39, 13, 18,
		46, 11, 26, 48, 6, 10,
		32, 5, 4, 47, 41, 20,
	},
	{ // round 15 ("Subkey 0")
		8, 44, 29, 52, 42, 14,
		28, 49, 1, 7, 16, 36,
		2, 30, 22, 21, 38, 50,
		51, 0, 31, 23, 15, 35,
		19, 24, 34, 47, 32, 3,
		41, 26, 4, 46, 20, 25,
		53, 18, 33, 55, 13, 17,
		39, 12, 11, 54, 48, 27,
	},
}

// subkeyOrderEncrypt is subkeyOrderDecrypt with round order reversed — per
// spec's §4.4 framing, encryption and decryption share one circuit and
// differ only in which order the 16 per-round key-bit tables are applied.
var subkeyOrderEncrypt = func() [16][48]uint8 {
	var out [16][48]uint8
	for r := 0; r < 16; r++ {
		out[r] = subkeyOrderDecrypt[15-r]
	}
	return out
}()

// permutedChoice1 reduces a raw 64-bit key (with parity bits, MSB-first
// bit numbering) to its 56-bit PC1 form, split left half then right half.
// Ported from original_source/des.c. The kernel does not apply it: the
// subkey tables above index the key with only its parity bits dropped (see
// PackEffectiveKey), with PC1 and PC2 already folded into them.
var permutedChoice1 = [56]uint8{
	56, 48, 40, 32, 24, 16, 8,
	0, 57, 49, 41, 33, 25, 17,
	9, 1, 58, 50, 42, 34, 26,
	18, 10, 2, 59, 51, 43, 35,
	62, 54, 46, 38, 30, 22, 14,
	6, 61, 53, 45, 37, 29, 21,
	13, 5, 60, 52, 44, 36, 28,
	20, 12, 4, 27, 19, 11, 3,
}

// initialPermutationLeft/Right split the classical DES initial permutation
// into the two 32-bit halves the bitsliced kernel expects pre-applied (the
// kernel itself treats IP/FP as fused no-ops, so the caller must apply IP
// before handing a block to the kernel; see PackBlock).
var initialPermutationLeft = [32]uint8{
	57, 49, 41, 33, 25, 17, 9, 1,
	59, 51, 43, 35, 27, 19, 11, 3,
	61, 53, 45, 37, 29, 21, 13, 5,
	63, 55, 47, 39, 31, 23, 15, 7,
}

var initialPermutationRight = [32]uint8{
	56, 48, 40, 32, 24, 16, 8, 0,
	58, 50, 42, 34, 26, 18, 10, 2,
	60, 52, 44, 36, 28, 20, 12, 4,
	62, 54, 46, 38, 30, 22, 14, 6,
}

// finalPermutation is the inverse of the initial permutation, folded to
// absorb the last-round half swap. UnpackBlock applies it once to the
// output of Encrypt or Decrypt to recover the real block bits.
var finalPermutation = [64]uint8{
	7, 39, 15, 47, 23, 55, 31, 63,
	6, 38, 14, 46, 22, 54, 30, 62,
	5, 37, 13, 45, 21, 53, 29, 61,
	4, 36, 12, 44, 20, 52, 28, 60,
	3, 35, 11, 43, 19, 51, 27, 59,
	2, 34, 10, 42, 18, 50, 26, 58,
	1, 33, 9, 41, 17, 49, 25, 57,
	0, 32, 8, 40, 16, 48, 24, 56,
}
