package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/colenc/endian"
	"github.com/arloliu/colenc/errs"
	"github.com/arloliu/colenc/format"
)

func TestTag_RoundTrip(t *testing.T) {
	engine := endian.GetNativeEngine()

	tag := NewTag(format.ColumnString, format.SchemeCompressed, format.CompressionLZ4)
	buf := tag.AppendTo(nil, engine)
	require.Len(t, buf, TagSize)

	parsed, err := ParseTag(buf, engine)
	require.NoError(t, err)
	require.Equal(t, tag, parsed)
	require.Equal(t, MagicColumnV1, parsed.Magic)
}

func TestNewTag_CodecZeroedForUncompressedSchemes(t *testing.T) {
	for _, scheme := range []format.Scheme{format.SchemePlain, format.SchemeRLE} {
		tag := NewTag(format.ColumnString, scheme, format.CompressionLZ4)
		require.Equal(t, format.CompressionType(0), tag.Codec)
	}

	tag := NewTag(format.ColumnString, format.SchemeCompressed, format.CompressionZstd)
	require.Equal(t, format.CompressionZstd, tag.Codec)
}

func TestParseTag_Invalid(t *testing.T) {
	engine := endian.GetNativeEngine()

	t.Run("short buffer", func(t *testing.T) {
		_, err := ParseTag([]byte{0x01, 0x02}, engine)
		require.ErrorIs(t, err, errs.ErrInvalidTag)
	})

	t.Run("bad magic", func(t *testing.T) {
		buf := NewTag(format.ColumnString, format.SchemePlain, 0).AppendTo(nil, engine)
		buf[0] ^= 0xFF
		_, err := ParseTag(buf, engine)
		require.ErrorIs(t, err, errs.ErrInvalidTag)
	})
}
