package driver

import (
	"encoding/binary"
	"fmt"

	"github.com/dchest/siphash"
	"github.com/google/uuid"
)

// shardTagKey is a fixed siphash key: the tag only needs to be stable and
// collision-resistant within one run's log output, not secret.
var shardTagKey = [16]byte{0xde, 0x5c, 0x0b, 0x17, 0xa5, 0x16, 0x00, 0xff, 0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xf0}

// ShardTag derives a short, stable log-correlation tag for a shard from
// its prefix range, so grep-ing a run's interleaved worker output for one
// shard's lines is unambiguous.
func ShardTag(s Shard) string {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[0:8], s.Start)
	binary.BigEndian.PutUint64(buf[8:16], s.End)
	h := siphash.Hash(
		binary.LittleEndian.Uint64(shardTagKey[0:8]),
		binary.LittleEndian.Uint64(shardTagKey[8:16]),
		buf[:],
	)
	return fmt.Sprintf("shard-%04x", h&0xffff)
}

// NewRunID returns a fresh identifier for one invocation of the search,
// used to correlate log lines and any --jobs batch output across workers
// and, eventually, across machines.
func NewRunID() string {
	return uuid.New().String()
}
