package column

import (
	"github.com/arloliu/colenc/endian"
	"github.com/arloliu/colenc/section"
)

// The plain layout is the wire format shared by every scheme: per item, a
// 4-byte signed length (section.NullLength for null, any value >= 0 for an
// explicit byte length) followed by exactly that many raw bytes. The two
// entry points below serialize an accumulator range and an explicit run
// list respectively; buildCompressed reuses the range entry point to
// materialize blocks.

func appendLength(dst []byte, engine endian.EndianEngine, length int32) []byte {
	return engine.AppendUint32(dst, uint32(length)) //nolint:gosec
}

// appendPlainRange appends the plain layout for count rows starting at row
// start. byteOff is the offset into data of row start's first byte; the
// updated offset is returned so callers can walk consecutive windows
// without rescanning lengths.
func appendPlainRange(dst []byte, engine endian.EndianEngine, lengths []int32, data []byte, start, count, byteOff int) ([]byte, int) {
	for _, length := range lengths[start : start+count] {
		dst = appendLength(dst, engine, length)
		if length > 0 {
			dst = append(dst, data[byteOff:byteOff+int(length)]...)
			byteOff += int(length)
		}
	}

	return dst, byteOff
}

// plainRangeSize returns the exact plain-layout size of the given lengths:
// one length field per row plus the non-null payload bytes.
func plainRangeSize(lengths []int32) int {
	size := len(lengths) * section.LengthSize
	for _, length := range lengths {
		if length > 0 {
			size += int(length)
		}
	}

	return size
}

// appendRunValues appends the plain layout over the representative values
// of runs. Run lengths are not written here; the RLE layout stores them in
// a separate array that a decoder zips with these values positionally.
func appendRunValues(dst []byte, engine endian.EndianEngine, runs []run) []byte {
	for i := range runs {
		if runs[i].null {
			dst = appendLength(dst, engine, section.NullLength)
			continue
		}
		dst = appendLength(dst, engine, int32(len(runs[i].value))) //nolint:gosec
		dst = append(dst, runs[i].value...)
	}

	return dst
}

// runValuesSize returns the exact size of appendRunValues' output.
func runValuesSize(runs []run) int {
	size := len(runs) * section.LengthSize
	for i := range runs {
		size += len(runs[i].value)
	}

	return size
}
