package column

// Test-local readers for the three buffer layouts. The production module
// deliberately ships no decoder; these helpers implement just enough of the
// read side to verify what the builder writes.

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/colenc/compress"
	"github.com/arloliu/colenc/endian"
	"github.com/arloliu/colenc/format"
	"github.com/arloliu/colenc/section"
)

// cell is one decoded row. A null cell has no value; a non-null cell's
// value may be empty.
type cell struct {
	null  bool
	value []byte
}

func nullCell() cell          { return cell{null: true} }
func valueCell(v string) cell { return cell{value: []byte(v)} }
func bytesCell(v []byte) cell { return cell{value: v} }

// decodeColumn parses the tag and reads the whole buffer back as rows.
// rowCount must be the original row count: the RLE layout stores no run
// count, so the reader accumulates run lengths until they sum to rowCount.
func decodeColumn(t *testing.T, buf []byte, rowCount int) (section.Tag, []cell) {
	t.Helper()

	engine := endian.GetNativeEngine()
	tag, err := section.ParseTag(buf, engine)
	require.NoError(t, err)

	payload := buf[section.TagSize:]

	switch tag.Scheme {
	case format.SchemePlain:
		return tag, decodePlainCells(t, payload, engine)
	case format.SchemeRLE:
		return tag, decodeRLECells(t, payload, engine, rowCount)
	case format.SchemeCompressed:
		if len(payload) == 0 {
			require.Zero(t, rowCount)
			return tag, nil
		}
		require.GreaterOrEqual(t, len(payload), section.CompressedSizeFieldSize)
		total := engine.Uint64(payload[:section.CompressedSizeFieldSize])

		codec, err := compress.GetCodec(tag.Codec)
		require.NoError(t, err)
		enc := compress.NewBlockEncoder(codec, engine)

		plain, err := enc.Decode(payload[section.CompressedSizeFieldSize:], int(total))
		require.NoError(t, err)
		require.Len(t, plain, int(total))

		return tag, decodePlainCells(t, plain, engine)
	}

	t.Fatalf("unexpected scheme in tag: %v", tag.Scheme)

	return tag, nil
}

func decodePlainCells(t *testing.T, payload []byte, engine endian.EndianEngine) []cell {
	t.Helper()

	var cells []cell
	for len(payload) > 0 {
		require.GreaterOrEqual(t, len(payload), section.LengthSize)
		length := int32(engine.Uint32(payload[:section.LengthSize])) //nolint:gosec
		payload = payload[section.LengthSize:]

		if length == section.NullLength {
			cells = append(cells, nullCell())
			continue
		}

		require.GreaterOrEqual(t, len(payload), int(length))
		cells = append(cells, bytesCell(payload[:length:length]))
		payload = payload[length:]
	}

	return cells
}

func decodeRLECells(t *testing.T, payload []byte, engine endian.EndianEngine, rowCount int) []cell {
	t.Helper()

	var runLengths []int32
	remaining := rowCount
	for remaining > 0 {
		require.GreaterOrEqual(t, len(payload), section.LengthSize)
		length := int32(engine.Uint32(payload[:section.LengthSize])) //nolint:gosec
		payload = payload[section.LengthSize:]

		require.Positive(t, length)
		runLengths = append(runLengths, length)
		remaining -= int(length)
	}
	require.Zero(t, remaining, "run lengths must sum to the row count")

	values := decodePlainCells(t, payload, engine)
	require.Len(t, values, len(runLengths), "one representative value per run")

	var cells []cell
	for i, runLength := range runLengths {
		for j := int32(0); j < runLength; j++ {
			cells = append(cells, values[i])
		}
	}

	return cells
}
