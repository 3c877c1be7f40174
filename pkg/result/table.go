// Package result collects key-search matches found across shards, for the
// batch/fan-out runner's summary, which cmd/deskrack prints to stdout. Adapted from the teacher's
// pkg/result/table.go (Rule/Table), shaped around the one value a DES
// search produces — a matching key — instead of an instruction rewrite.
package result

import "sync"

// Match records one effective key that reproduced a target ciphertext,
// and which shard found it.
type Match struct {
	EffectiveKey uint64
	ShardIndex   int
	ShardTag     string
}

// Table stores discovered matches across concurrently running shards.
type Table struct {
	mu      sync.Mutex
	matches []Match
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{}
}

// Add inserts a match into the table.
func (t *Table) Add(m Match) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.matches = append(t.matches, m)
}

// Matches returns a copy of all matches found so far.
func (t *Table) Matches() []Match {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Match, len(t.matches))
	copy(out, t.matches)
	return out
}

// Len returns the number of matches found so far.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.matches)
}
