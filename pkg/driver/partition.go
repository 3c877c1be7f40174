package driver

// PrefixBits is the number of effective-key bits covered by a
// KeyRegister's shared, Advance-incremented prefix.
const PrefixBits = 56 - NumParallelBits

// Shard is a contiguous, half-open slice [Start, End) of the prefix
// space, assigned as one unit of work to a worker or a remote shard.
type Shard struct {
	Index int
	Start uint64
	End   uint64
}

// Partition splits the full PrefixBits-bit prefix space into n
// contiguous, near-equal shards. This generalizes the teacher's
// EnumerateFirstOp, which partitioned a small instruction space by
// explicit enumeration, to a range split: the prefix space here
// (2^50 values) is far too large to enumerate into a slice.
func Partition(n int) []Shard {
	if n <= 0 {
		n = 1
	}
	total := uint64(1) << uint(PrefixBits)
	shards := make([]Shard, n)
	base := total / uint64(n)
	rem := total % uint64(n)
	var start uint64
	for i := 0; i < n; i++ {
		size := base
		if uint64(i) < rem {
			size++
		}
		shards[i] = Shard{Index: i, Start: start, End: start + size}
		start += size
	}
	return shards
}

// PrefixBitsOf decomposes a prefix value into its PrefixBits-long,
// most-significant-bit-first slice, suitable for KeyRegister.SeedPrefix.
func PrefixBitsOf(value uint64) []uint8 {
	bits := make([]uint8, PrefixBits)
	for i := range bits {
		bits[i] = uint8((value >> uint(PrefixBits-1-i)) & 1)
	}
	return bits
}
