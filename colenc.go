// Package colenc encodes single columns of nullable variable-length byte
// strings into compact, self-describing binary buffers.
//
// Each column is encoded independently by one builder; a columnar batch
// writer runs one builder per column, in parallel if it likes, since
// builders share no state. The builder accumulates values one at a time,
// then chooses among three compression schemes at build time:
//
//   - Plain: per-row length-prefixed raw bytes
//   - RLE: run lengths plus one representative value per run
//   - Compressed: block-compressed plain layout (LZ4/S2/Zstd)
//
// With the default format.SchemeAuto, the choice between plain and RLE is
// made from the column's observed transition ratio; any concrete scheme can
// be pinned instead.
//
// # Basic Usage
//
//	builder, _ := colenc.NewStringBuilder()
//	_ = builder.Init(len(rows))
//	for _, v := range rows {
//	    if v == nil {
//	        _ = builder.AppendNull()
//	    } else {
//	        _ = builder.Append(v)
//	    }
//	}
//	buf, err := builder.Build()
//
// The first 8 bytes of every buffer are a type tag (see the section
// package) identifying the column type, the chosen scheme and, for the
// compressed scheme, the codec. Buffers are written in the platform's
// native byte order by default; use column.WithEndianEngine when buffers
// cross machine boundaries.
//
// This package provides thin wrappers around the column package for the
// common cases. For fine-grained control, use the column package directly.
package colenc

import "github.com/arloliu/colenc/column"

// NewStringBuilder creates a builder for one column of nullable byte
// strings. See the column package for the available options.
func NewStringBuilder(opts ...column.StringBuilderOption) (*column.StringBuilder, error) {
	return column.NewStringBuilder(opts...)
}

// EncodeStrings encodes values as one column in a single call. A nil
// element is appended as null; an empty non-nil element is a valid
// zero-length value.
func EncodeStrings(values [][]byte, opts ...column.StringBuilderOption) ([]byte, error) {
	builder, err := column.NewStringBuilder(opts...)
	if err != nil {
		return nil, err
	}

	if err := builder.Init(len(values)); err != nil {
		return nil, err
	}

	for _, v := range values {
		if v == nil {
			err = builder.AppendNull()
		} else {
			err = builder.Append(v)
		}
		if err != nil {
			return nil, err
		}
	}

	return builder.Build()
}
