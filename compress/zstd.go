package compress

// ZstdCompressor compresses payloads with Zstandard.
//
// Zstd trades compression speed for ratio, making it the right pick for
// cold columns that are written once and read rarely. Two implementations
// are provided: a cgo binding (build tag cgozstd) and a pure-Go default.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
