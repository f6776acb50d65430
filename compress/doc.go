// Package compress provides the compression codecs used by the
// block-compressed column scheme.
//
// Four codecs are available, selected by format.CompressionType:
//
//   - LZ4 (default): fast block compression with good ratios on plain-layout data
//   - S2: highest throughput, moderate ratio
//   - Zstd: best ratio, slower; cgo binding behind the cgozstd build tag
//   - None: pass-through, for benchmarking and incompressible data
//
// All codecs implement the Codec interface (Compress and Decompress over a
// complete payload). BlockEncoder adapts any Codec to the streaming
// block-append contract used by column builders, framing each compressed
// block with a length prefix so the concatenated stream remains decodable.
package compress
