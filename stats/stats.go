// Package stats defines the per-value statistics collector consumed by
// column builders.
//
// A builder forwards every appended value (nulls included) to its collector
// during accumulation; the collector is read-only after the builder
// finalizes. The transition count it reports drives the builder's
// RLE-versus-plain scheme heuristic.
package stats

import "github.com/arloliu/colenc/internal/hash"

// Collector receives every value appended to a column and reports
// aggregate statistics after accumulation.
//
// Implementations are not required to be safe for concurrent use; a
// collector is owned and mutated by exactly one builder.
type Collector interface {
	// Record observes one non-null value.
	Record(value []byte)

	// RecordNull observes one null value.
	RecordNull()

	// Transitions returns the number of positions where the appended value
	// differed from its immediate predecessor. The first appended value has
	// no predecessor and is not a transition, so for a non-empty column
	// Transitions is the run count minus one.
	Transitions() int

	// RowCount returns the number of values observed, nulls included.
	RowCount() int
}

// Basic is the default Collector. Beyond the transition count it tracks
// null count and the minimum and maximum non-null value lengths, the
// inputs a batch planner wants when sizing reads.
//
// Value identity uses xxHash64, the same approximate equality the run
// encoder uses: two distinct values with colliding hashes are counted as
// equal, which can undercount transitions.
type Basic struct {
	rows        int
	transitions int
	nulls       int
	minLen      int
	maxLen      int

	prevHash uint64
	prevNull bool
}

var _ Collector = (*Basic)(nil)

// NewBasic creates an empty collector.
func NewBasic() *Basic {
	return &Basic{minLen: -1}
}

// Record observes one non-null value.
func (b *Basic) Record(value []byte) {
	h := hash.Value(value)

	if b.rows > 0 && (b.prevNull || b.prevHash != h) {
		b.transitions++
	}
	b.prevHash = h
	b.prevNull = false
	b.rows++

	if b.minLen < 0 || len(value) < b.minLen {
		b.minLen = len(value)
	}
	if len(value) > b.maxLen {
		b.maxLen = len(value)
	}
}

// RecordNull observes one null value.
func (b *Basic) RecordNull() {
	if b.rows > 0 && !b.prevNull {
		b.transitions++
	}
	b.prevNull = true
	b.rows++
	b.nulls++
}

// Transitions returns the number of adjacent-value changes observed.
func (b *Basic) Transitions() int {
	return b.transitions
}

// RowCount returns the number of values observed, nulls included.
func (b *Basic) RowCount() int {
	return b.rows
}

// NullCount returns the number of null values observed.
func (b *Basic) NullCount() int {
	return b.nulls
}

// MinLen returns the smallest non-null value length observed, or -1 if no
// non-null value has been recorded.
func (b *Basic) MinLen() int {
	return b.minLen
}

// MaxLen returns the largest non-null value length observed, or 0 if no
// non-null value has been recorded.
func (b *Basic) MaxLen() int {
	return b.maxLen
}
