package colenc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/colenc"
	"github.com/arloliu/colenc/column"
	"github.com/arloliu/colenc/endian"
	"github.com/arloliu/colenc/format"
	"github.com/arloliu/colenc/section"
)

func TestEncodeStrings(t *testing.T) {
	values := [][]byte{
		[]byte("alpha"),
		nil, // null
		{},  // empty, not null
		[]byte("beta"),
	}

	buf, err := colenc.EncodeStrings(values, column.WithScheme(format.SchemePlain))
	require.NoError(t, err)

	tag, err := section.ParseTag(buf, endian.GetNativeEngine())
	require.NoError(t, err)
	require.Equal(t, format.ColumnString, tag.Column)
	require.Equal(t, format.SchemePlain, tag.Scheme)

	// tag + 4 length fields + 9 payload bytes.
	require.Len(t, buf, section.TagSize+4*section.LengthSize+9)
}

func TestNewStringBuilder(t *testing.T) {
	builder, err := colenc.NewStringBuilder()
	require.NoError(t, err)
	require.NoError(t, builder.Init(8))

	require.NoError(t, builder.Append([]byte("v")))
	require.NoError(t, builder.AppendNull())

	buf, err := builder.Build()
	require.NoError(t, err)
	require.NotEmpty(t, buf)
	require.Equal(t, 2, builder.RowCount())
}
