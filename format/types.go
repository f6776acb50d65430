package format

type (
	ColumnType      uint8
	Scheme          uint8
	CompressionType uint8
)

const (
	// ColumnString is the only column type currently defined. Sibling types
	// for other primitives reuse the same tag layout with their own enumerant.
	ColumnString ColumnType = 0x1

	SchemeAuto       Scheme = 0x0 // SchemeAuto is resolved at build time, never stored in a tag.
	SchemePlain      Scheme = 0x1 // SchemePlain stores the raw plain layout with no compression.
	SchemeRLE        Scheme = 0x2 // SchemeRLE stores run lengths plus one representative value per run.
	SchemeCompressed Scheme = 0x3 // SchemeCompressed stores block-compressed plain layout.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 block compression.
)

func (c ColumnType) String() string {
	switch c {
	case ColumnString:
		return "String"
	default:
		return "Unknown"
	}
}

func (s Scheme) String() string {
	switch s {
	case SchemeAuto:
		return "Auto"
	case SchemePlain:
		return "Plain"
	case SchemeRLE:
		return "RLE"
	case SchemeCompressed:
		return "Compressed"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
