// Package section defines the fixed binary sections of an encoded column
// buffer: the 8-byte type tag and the layout constants shared by all
// compression schemes.
package section

import (
	"fmt"

	"github.com/arloliu/colenc/endian"
	"github.com/arloliu/colenc/errs"
	"github.com/arloliu/colenc/format"
)

// Tag is the 8-byte header at the start of every encoded column buffer.
// A decoder reads it first to learn the column type and the scheme the
// rest of the buffer was written with.
//
// Layout:
//   - Magic number (uint16), offset 0-1
//   - Column type (uint8), offset 2
//   - Scheme (uint8), offset 3
//   - Codec (uint8), offset 4 (zero unless scheme is SchemeCompressed)
//   - Reserved, must be zero, offset 5-7
type Tag struct {
	Magic  uint16
	Column format.ColumnType
	Scheme format.Scheme
	Codec  format.CompressionType
}

// NewTag creates a tag for the given column type and scheme. The codec is
// only meaningful for format.SchemeCompressed and is written as zero for
// every other scheme.
func NewTag(column format.ColumnType, scheme format.Scheme, codec format.CompressionType) Tag {
	if scheme != format.SchemeCompressed {
		codec = 0
	}

	return Tag{
		Magic:  MagicColumnV1,
		Column: column,
		Scheme: scheme,
		Codec:  codec,
	}
}

// AppendTo appends the tag's 8-byte encoding to dst and returns the grown slice.
func (t Tag) AppendTo(dst []byte, engine endian.EndianEngine) []byte {
	dst = engine.AppendUint16(dst, t.Magic)
	dst = append(dst, byte(t.Column), byte(t.Scheme), byte(t.Codec), 0, 0, 0)

	return dst
}

// ParseTag reads a tag from the first TagSize bytes of buf.
func ParseTag(buf []byte, engine endian.EndianEngine) (Tag, error) {
	if len(buf) < TagSize {
		return Tag{}, fmt.Errorf("%w: buffer too short: %d bytes", errs.ErrInvalidTag, len(buf))
	}

	magic := engine.Uint16(buf[0:2])
	if magic != MagicColumnV1 {
		return Tag{}, fmt.Errorf("%w: bad magic 0x%04x", errs.ErrInvalidTag, magic)
	}

	return Tag{
		Magic:  magic,
		Column: format.ColumnType(buf[2]),
		Scheme: format.Scheme(buf[3]),
		Codec:  format.CompressionType(buf[4]),
	}, nil
}
