package column

import "bytes"

// Equality decides whether an incoming value continues the run encoder's
// open run. rep is the run's representative value and repHash its xxHash64;
// v and vHash describe the incoming value. Nulls never reach an Equality
// policy: the run encoder matches null against null itself.
type Equality func(rep []byte, repHash uint64, v []byte, vHash uint64) bool

// HashEquality treats two values as equal when their xxHash64 values match,
// without touching the value bytes.
//
// This is the default policy and a documented approximation: two distinct
// values with colliding hashes are merged into one run, silently dropping
// the later value from the encoded column. The collision probability is
// negligible for most workloads, but callers that cannot tolerate it should
// use ByteEquality, which trades a full byte comparison per row for
// exactness.
func HashEquality(_ []byte, repHash uint64, _ []byte, vHash uint64) bool {
	return repHash == vHash
}

// ByteEquality compares the full value bytes. Exact, at the cost of reading
// the representative value on every append.
func ByteEquality(rep []byte, _ uint64, v []byte, _ uint64) bool {
	return bytes.Equal(rep, v)
}
