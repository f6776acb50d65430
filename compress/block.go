package compress

import (
	"fmt"

	"github.com/arloliu/colenc/endian"
)

// blockFrameHeaderSize is the per-frame header prefix written by
// BlockEncoder.AppendEncoded. Raw compressed blocks carry no delimiters of
// their own, so the frame header is what lets a reader find block
// boundaries inside an otherwise opaque stream.
const blockFrameHeaderSize = 4

// rawBlockFlag marks a frame whose payload is stored uncompressed. LZ4's
// block form reports tiny or incompressible inputs by producing zero
// output, and any codec can expand such inputs; those frames are stored
// raw instead.
const rawBlockFlag = uint32(1) << 31

// BlockEncoder adapts a Codec to the streaming block-append contract used
// by column builders: compress one self-contained input block per call and
// append the result to a caller-owned output buffer.
//
// The output buffer and its write position are threaded explicitly through
// each call (the position is len(dst)); the encoder keeps no state across
// calls.
type BlockEncoder struct {
	codec  Codec
	engine endian.EndianEngine
}

// NewBlockEncoder creates a BlockEncoder over the given codec. Frame
// headers are written with the given endian engine, matching the byte order
// of the surrounding column buffer.
func NewBlockEncoder(codec Codec, engine endian.EndianEngine) BlockEncoder {
	return BlockEncoder{codec: codec, engine: engine}
}

// AppendEncoded compresses src as one self-contained block and appends a
// length-prefixed frame to dst, returning the grown slice. The new write
// position is len of the returned slice.
//
// Each frame is [uint32 header][payload bytes], where the header's low 31
// bits hold the payload length and the top bit marks a raw (uncompressed)
// payload. Frames are independent: decoding requires no state beyond the
// frame being read.
func (e BlockEncoder) AppendEncoded(dst, src []byte) ([]byte, error) {
	compressed, err := e.codec.Compress(src)
	if err != nil {
		return dst, err
	}

	// A block that came back empty (LZ4's incompressible signal) or no
	// smaller than its input is stored raw.
	if len(src) > 0 && (len(compressed) == 0 || len(compressed) >= len(src)) {
		dst = e.engine.AppendUint32(dst, rawBlockFlag|uint32(len(src))) //nolint:gosec
		dst = append(dst, src...)

		return dst, nil
	}

	dst = e.engine.AppendUint32(dst, uint32(len(compressed))) //nolint:gosec
	dst = append(dst, compressed...)

	return dst, nil
}

// Decode decompresses a sequence of frames produced by AppendEncoded and
// returns the concatenated original bytes. sizeHint, when positive,
// pre-sizes the output buffer; pass the uncompressed byte total recorded
// next to the stream.
func (e BlockEncoder) Decode(data []byte, sizeHint int) ([]byte, error) {
	var out []byte
	if sizeHint > 0 {
		out = make([]byte, 0, sizeHint)
	}

	for len(data) > 0 {
		if len(data) < blockFrameHeaderSize {
			return nil, fmt.Errorf("truncated block frame header: %d bytes left", len(data))
		}
		header := e.engine.Uint32(data[:blockFrameHeaderSize])
		data = data[blockFrameHeaderSize:]

		raw := header&rawBlockFlag != 0
		frameLen := int(header &^ rawBlockFlag)

		if frameLen > len(data) {
			return nil, fmt.Errorf("truncated block frame: need %d bytes, have %d", frameLen, len(data))
		}

		if raw {
			out = append(out, data[:frameLen]...)
		} else {
			block, err := e.codec.Decompress(data[:frameLen])
			if err != nil {
				return nil, fmt.Errorf("failed to decompress block: %w", err)
			}
			out = append(out, block...)
		}
		data = data[frameLen:]
	}

	return out, nil
}
