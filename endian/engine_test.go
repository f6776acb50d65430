package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	result := CheckEndianness()

	// Cross-check against an independent probe of the host byte order.
	var probe uint16 = 0x0102
	probeBytes := (*[2]byte)(unsafe.Pointer(&probe))

	if probeBytes[0] == 0x01 {
		require.Equal(t, binary.BigEndian, result)
	} else {
		require.Equal(t, binary.LittleEndian, result)
	}
}

func TestNativeChecksAreInverses(t *testing.T) {
	require.NotEqual(t, IsNativeLittleEndian(), IsNativeBigEndian())
}

func TestGetNativeEngine(t *testing.T) {
	engine := GetNativeEngine()
	require.Implements(t, (*EndianEngine)(nil), engine)

	if IsNativeLittleEndian() {
		require.Equal(t, binary.LittleEndian, engine)
	} else {
		require.Equal(t, binary.BigEndian, engine)
	}
}

func TestEngineByteOrder(t *testing.T) {
	var value uint16 = 0x0102

	buf := make([]byte, 2)
	GetLittleEndianEngine().PutUint16(buf, value)
	require.Equal(t, []byte{0x02, 0x01}, buf)
	require.Equal(t, value, GetLittleEndianEngine().Uint16(buf))

	GetBigEndianEngine().PutUint16(buf, value)
	require.Equal(t, []byte{0x01, 0x02}, buf)
	require.Equal(t, value, GetBigEndianEngine().Uint16(buf))
}

func TestEngineAppend(t *testing.T) {
	engine := GetLittleEndianEngine()

	buf := engine.AppendUint32(nil, 0x01020304)
	buf = engine.AppendUint64(buf, 0x05060708090a0b0c)
	require.Len(t, buf, 12)
	require.Equal(t, uint32(0x01020304), engine.Uint32(buf[:4]))
	require.Equal(t, uint64(0x05060708090a0b0c), engine.Uint64(buf[4:]))
}
