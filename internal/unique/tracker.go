// Package unique tracks the number of distinct values observed by a column
// builder, capped at a fixed size.
//
// The count is collected for a future dictionary encoding scheme and is not
// consumed by any current compression path. It is exposed read-only after
// finalize so a dictionary selector can be wired in without changing the
// accumulation path.
package unique

// MaxTrackedValues is the cap on distinct values tracked per column. Once
// the cap is reached the tracker saturates and stops observing; a saturated
// column is too high-cardinality for dictionary encoding anyway.
const MaxTrackedValues = 4096

// Tracker is a bounded set of value hashes.
//
// Values are identified by hash, so two distinct values with colliding
// hashes count once. That is acceptable for a cardinality estimate feeding
// a scheme heuristic.
type Tracker struct {
	seen      map[uint64]struct{}
	limit     int
	saturated bool
}

// NewTracker creates a tracker capped at limit distinct hashes.
func NewTracker(limit int) *Tracker {
	return &Tracker{
		seen:  make(map[uint64]struct{}),
		limit: limit,
	}
}

// Observe records one value hash. Once the tracker has saturated, Observe
// is a no-op.
func (t *Tracker) Observe(h uint64) {
	if t.saturated {
		return
	}

	if _, exists := t.seen[h]; exists {
		return
	}

	if len(t.seen) >= t.limit {
		t.saturated = true
		return
	}

	t.seen[h] = struct{}{}
}

// Count returns the number of distinct hashes observed so far. If Saturated
// reports true the count is a lower bound, not an exact cardinality.
func (t *Tracker) Count() int {
	return len(t.seen)
}

// Saturated reports whether the tracker hit its cap and stopped observing.
func (t *Tracker) Saturated() bool {
	return t.saturated
}
