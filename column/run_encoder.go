package column

// run is one maximal sequence of consecutive equal values in a column.
type run struct {
	length int32
	null   bool
	value  []byte // representative value, nil when null
}

// runEncoder is a streaming run-length encoder fed in lockstep with the
// accumulator during Append. It keeps O(1) state between calls: the open
// run's representative value, its hash, and its length. It never sorts or
// groups after the fact.
type runEncoder struct {
	eq      Equality
	runs    []run
	cur     run
	curHash uint64
	open    bool
}

func newRunEncoder(eq Equality) *runEncoder {
	return &runEncoder{eq: eq}
}

// encodeSingle merges one value into the open run when it matches the run's
// representative under the equality policy, otherwise flushes the open run
// and starts a new one of length 1. Null only ever matches null.
func (r *runEncoder) encodeSingle(v []byte, isNull bool, h uint64) {
	if r.open {
		if isNull == r.cur.null && (isNull || r.eq(r.cur.value, r.curHash, v, h)) {
			r.cur.length++
			return
		}
		r.runs = append(r.runs, r.cur)
	}

	r.open = true
	r.curHash = h
	r.cur = run{length: 1, null: isNull}
	if !isNull {
		// The caller may reuse v's backing array between appends.
		r.cur.value = append([]byte(nil), v...)
	}
}

// coded flushes the final open run and returns the complete run stream.
// Call once, after accumulation is done.
func (r *runEncoder) coded() []run {
	if r.open {
		r.runs = append(r.runs, r.cur)
		r.open = false
	}

	return r.runs
}
