package column

import (
	"fmt"

	"github.com/arloliu/colenc/compress"
	"github.com/arloliu/colenc/errs"
	"github.com/arloliu/colenc/format"
	"github.com/arloliu/colenc/internal/hash"
	"github.com/arloliu/colenc/internal/options"
	"github.com/arloliu/colenc/internal/pool"
	"github.com/arloliu/colenc/internal/unique"
	"github.com/arloliu/colenc/section"
	"github.com/arloliu/colenc/stats"
)

const (
	// avgValueSizeEstimate pre-sizes the raw-byte buffer from the row count
	// hint: hint rows at an assumed 16 bytes per value.
	avgValueSizeEstimate = 16

	// BlockRows is the number of rows serialized into each window of the
	// block-compressed scheme. Windows are compressed independently, so a
	// decoder never needs more than one window's plain layout in flight.
	BlockRows = 4096

	// rleTransitionRatio is the transitions-per-row threshold below which
	// the auto scheme picks RLE over plain. The cost-benefit crossover also
	// depends on average bytes per row; 0.30 is a conservative tunable that
	// favors predictable decode cost over marginal size wins, not a law.
	rleTransitionRatio = 0.30
)

type builderState uint8

const (
	stateEmpty builderState = iota
	stateAccumulating
	stateFinalized
)

// StringBuilder encodes one column of nullable byte strings.
//
// It accumulates values in an append-only representation (a contiguous
// raw-byte buffer plus a parallel signed-length array, -1 marking null)
// while feeding a streaming run encoder, the statistics collector, and a
// capped distinct-value tracker. Build resolves the scheme and serializes
// the column into an exactly pre-sized buffer; there is no grow-and-copy
// step at serialization time.
//
// Note: The StringBuilder is NOT thread-safe. Each builder instance must be
// used by a single goroutine.
//
// Note: The StringBuilder is NOT reusable. After calling Build, create a
// new builder for the next column.
type StringBuilder struct {
	*StringBuilderConfig

	state   builderState
	data    []byte  // concatenated non-null value bytes, in append order
	lengths []int32 // one entry per row; section.NullLength marks null
	runs    *runEncoder
	uniques *unique.Tracker
}

var _ Builder[[]byte] = (*StringBuilder)(nil)

// NewStringBuilder creates a StringBuilder with the given options. The
// builder must be initialized with Init before appending.
func NewStringBuilder(opts ...StringBuilderOption) (*StringBuilder, error) {
	config := newStringBuilderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	return &StringBuilder{StringBuilderConfig: config}, nil
}

// Init prepares the builder for accumulation, pre-sizing the raw-byte
// buffer to rowCountHint*avgValueSizeEstimate and the length array to
// rowCountHint. It must be called exactly once before any append.
func (b *StringBuilder) Init(rowCountHint int) error {
	switch b.state {
	case stateAccumulating:
		return errs.ErrAlreadyInitialized
	case stateFinalized:
		return errs.ErrFinalized
	case stateEmpty:
	}

	if rowCountHint < 0 {
		rowCountHint = 0
	}

	b.data = make([]byte, 0, rowCountHint*avgValueSizeEstimate)
	b.lengths = make([]int32, 0, rowCountHint)
	if b.collector == nil {
		b.collector = stats.NewBasic()
	}
	b.runs = newRunEncoder(b.equality)
	b.uniques = unique.NewTracker(unique.MaxTrackedValues)
	b.state = stateAccumulating

	return nil
}

// Append adds one non-null value. A zero-length value is valid and distinct
// from null. The value bytes are copied; the caller may reuse the slice.
func (b *StringBuilder) Append(value []byte) error {
	if err := b.checkAccumulating(); err != nil {
		return err
	}

	b.lengths = append(b.lengths, int32(len(value))) //nolint:gosec
	b.data = append(b.data, value...)

	h := hash.Value(value)
	b.collector.Record(value)
	b.runs.encodeSingle(value, false, h)
	b.uniques.Observe(h)

	return nil
}

// AppendNull adds one null value.
func (b *StringBuilder) AppendNull() error {
	if err := b.checkAccumulating(); err != nil {
		return err
	}

	b.lengths = append(b.lengths, section.NullLength)
	b.collector.RecordNull()
	b.runs.encodeSingle(nil, true, 0)

	return nil
}

func (b *StringBuilder) checkAccumulating() error {
	switch b.state {
	case stateEmpty:
		return errs.ErrNotInitialized
	case stateFinalized:
		return errs.ErrFinalized
	default:
		return nil
	}
}

// Build resolves the effective scheme and returns the encoded column
// buffer. Build is terminal: any later Append, AppendNull or Build returns
// errs.ErrFinalized. On a configuration error (unknown scheme or codec) no
// buffer is produced and the builder state is left unchanged.
func (b *StringBuilder) Build() ([]byte, error) {
	if err := b.checkAccumulating(); err != nil {
		return nil, err
	}

	scheme, err := b.resolveScheme()
	if err != nil {
		return nil, err
	}

	var buf []byte
	switch scheme {
	case format.SchemePlain:
		buf = b.buildPlain()
	case format.SchemeRLE:
		buf = b.buildRLE()
	case format.SchemeCompressed:
		buf, err = b.buildCompressed()
		if err != nil {
			return nil, err
		}
	}

	b.state = stateFinalized

	return buf, nil
}

// resolveScheme substitutes the heuristic's pick for SchemeAuto and passes
// pinned concrete schemes through. Resolved exactly once per Build.
func (b *StringBuilder) resolveScheme() (format.Scheme, error) {
	switch b.scheme {
	case format.SchemeAuto:
		return b.pickScheme(), nil
	case format.SchemePlain, format.SchemeRLE, format.SchemeCompressed:
		return b.scheme, nil
	default:
		return 0, fmt.Errorf("%w: %v", errs.ErrInvalidScheme, b.scheme)
	}
}

// pickScheme chooses RLE when transitions are rare relative to the row
// count, plain otherwise. A ratio exactly at the threshold picks plain
// (strict less-than). An empty column picks plain without evaluating the
// ratio.
func (b *StringBuilder) pickScheme() format.Scheme {
	rows := b.collector.RowCount()
	if rows == 0 {
		return format.SchemePlain
	}

	if float64(b.collector.Transitions())/float64(rows) < rleTransitionRatio {
		return format.SchemeRLE
	}

	return format.SchemePlain
}

func (b *StringBuilder) buildPlain() []byte {
	size := section.TagSize + plainRangeSize(b.lengths)

	buf := make([]byte, 0, size)
	buf = section.NewTag(format.ColumnString, format.SchemePlain, 0).AppendTo(buf, b.engine)
	buf, _ = appendPlainRange(buf, b.engine, b.lengths, b.data, 0, len(b.lengths), 0)

	return buf
}

func (b *StringBuilder) buildRLE() []byte {
	runs := b.runs.coded()
	size := section.TagSize + len(runs)*section.LengthSize + runValuesSize(runs)

	buf := make([]byte, 0, size)
	buf = section.NewTag(format.ColumnString, format.SchemeRLE, 0).AppendTo(buf, b.engine)
	for i := range runs {
		buf = appendLength(buf, b.engine, runs[i].length)
	}
	buf = appendRunValues(buf, b.engine, runs)

	return buf
}

// buildCompressed walks the column in BlockRows windows, materializes each
// window's plain layout into a pooled scratch buffer, and feeds it to the
// block encoder, which appends one self-contained compressed frame per
// window to the output. The cumulative uncompressed byte count lands in the
// header so a decoder can pre-size its buffer.
func (b *StringBuilder) buildCompressed() ([]byte, error) {
	codec, err := compress.GetCodec(b.compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidCompression, b.compression)
	}

	tag := section.NewTag(format.ColumnString, format.SchemeCompressed, b.compression)

	if len(b.lengths) == 0 {
		return tag.AppendTo(make([]byte, 0, section.TagSize), b.engine), nil
	}

	enc := compress.NewBlockEncoder(codec, b.engine)
	scratch := pool.GetBlockBuffer()
	defer pool.PutBlockBuffer(scratch)

	var compressed []byte
	var uncompressed uint64
	byteOff := 0

	for start := 0; start < len(b.lengths); start += BlockRows {
		count := min(BlockRows, len(b.lengths)-start)
		winSize := plainRangeSize(b.lengths[start : start+count])

		scratch.Reset()
		scratch.Grow(winSize)

		var win []byte
		win, byteOff = appendPlainRange(scratch.Bytes(), b.engine, b.lengths, b.data, start, count, byteOff)
		uncompressed += uint64(winSize)

		compressed, err = enc.AppendEncoded(compressed, win)
		if err != nil {
			return nil, fmt.Errorf("failed to compress block at row %d: %w", start, err)
		}
	}

	size := section.TagSize + section.CompressedSizeFieldSize + len(compressed)
	buf := make([]byte, 0, size)
	buf = tag.AppendTo(buf, b.engine)
	buf = b.engine.AppendUint64(buf, uncompressed)
	buf = append(buf, compressed...)

	return buf, nil
}

// Stats returns the statistics collector fed during accumulation. Treat it
// as read-only once Build has run.
func (b *StringBuilder) Stats() stats.Collector {
	return b.collector
}

// RowCount returns the number of rows appended so far, nulls included.
func (b *StringBuilder) RowCount() int {
	return len(b.lengths)
}

// UniqueValues returns the capped distinct-value count observed during
// accumulation and whether the tracker saturated (making the count a lower
// bound). Collected for a future dictionary scheme; no current compression
// path consumes it.
func (b *StringBuilder) UniqueValues() (count int, saturated bool) {
	if b.uniques == nil {
		return 0, false
	}

	return b.uniques.Count(), b.uniques.Saturated()
}
