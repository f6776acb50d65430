package column

import "github.com/arloliu/colenc/stats"

// Builder is the capability contract implemented by every concrete column
// builder, one implementation per primitive value type. StringBuilder is
// the nullable byte-string implementation; sibling types plug in here with
// their own V.
//
// Lifecycle: Init exactly once, any number of Append/AppendNull calls, then
// one terminal Build. Builders are single-producer and non-reusable.
type Builder[V any] interface {
	// Init prepares the builder for accumulation, pre-sizing internal
	// buffers from the expected row count.
	Init(rowCountHint int) error

	// Append adds one non-null value.
	Append(value V) error

	// AppendNull adds one null value.
	AppendNull() error

	// Build resolves the compression scheme and returns the encoded buffer.
	Build() ([]byte, error)

	// Stats returns the statistics collector fed during accumulation.
	// Read-only after Build.
	Stats() stats.Collector
}
