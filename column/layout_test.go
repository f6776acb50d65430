package column

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/colenc/endian"
	"github.com/arloliu/colenc/section"
)

func TestAppendPlainRange_FullColumn(t *testing.T) {
	engine := endian.GetNativeEngine()
	lengths := []int32{3, section.NullLength, 0, 2}
	data := []byte("abcxy")

	out, byteOff := appendPlainRange(nil, engine, lengths, data, 0, len(lengths), 0)
	require.Equal(t, len(data), byteOff)
	require.Len(t, out, plainRangeSize(lengths))

	var want []byte
	want = engine.AppendUint32(want, 3)
	want = append(want, "abc"...)
	want = appendLength(want, engine, section.NullLength)
	want = engine.AppendUint32(want, 0)
	want = engine.AppendUint32(want, 2)
	want = append(want, "xy"...)
	require.Equal(t, want, out)
}

func TestAppendPlainRange_WindowsConcatenateToFullLayout(t *testing.T) {
	engine := endian.GetNativeEngine()
	lengths := []int32{1, 4, section.NullLength, 0, 2, 3, section.NullLength}
	data := []byte("awxyzbbccc")

	full, _ := appendPlainRange(nil, engine, lengths, data, 0, len(lengths), 0)

	// Serialize the same column in windows of 3 rows; the partial last
	// window must pick up exactly where the previous one stopped.
	var windowed []byte
	byteOff := 0
	for start := 0; start < len(lengths); start += 3 {
		count := min(3, len(lengths)-start)
		windowed, byteOff = appendPlainRange(windowed, engine, lengths, data, start, count, byteOff)
	}

	require.Equal(t, full, windowed)
	require.Equal(t, len(data), byteOff)
}

func TestPlainRangeSize(t *testing.T) {
	require.Zero(t, plainRangeSize(nil))

	lengths := []int32{5, section.NullLength, 0, 7}
	// 4 length fields + 12 payload bytes; null and empty contribute no payload.
	require.Equal(t, 4*section.LengthSize+12, plainRangeSize(lengths))
}

func TestAppendRunValues(t *testing.T) {
	engine := endian.GetNativeEngine()
	runs := []run{
		{length: 3, value: []byte("aa")},
		{length: 2, null: true},
		{length: 1, value: []byte{}},
	}

	out := appendRunValues(nil, engine, runs)
	require.Len(t, out, runValuesSize(runs))

	var want []byte
	want = engine.AppendUint32(want, 2)
	want = append(want, "aa"...)
	want = appendLength(want, engine, section.NullLength)
	want = engine.AppendUint32(want, 0)
	require.Equal(t, want, out)
}
