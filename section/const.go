package section

const (
	// MagicColumnV1 is the version 1 magic number carried in every type tag.
	MagicColumnV1 uint16 = 0xEC10

	// TagSize is the fixed size of the type tag at the start of every
	// encoded column buffer.
	TagSize = 8

	// LengthSize is the size of every per-value length field in the plain
	// layout, and of every run-length entry in the RLE layout.
	LengthSize = 4

	// CompressedSizeFieldSize is the size of the uncompressed-byte-total
	// header that follows the tag in the block-compressed layout.
	CompressedSizeFieldSize = 8

	// NullLength is the reserved length sentinel denoting a null value.
	// A zero length is a valid non-null empty value, never a null.
	NullLength int32 = -1
)
