package column

import (
	"github.com/arloliu/colenc/endian"
	"github.com/arloliu/colenc/format"
	"github.com/arloliu/colenc/internal/options"
	"github.com/arloliu/colenc/stats"
)

// StringBuilderConfig holds the configuration shared by a StringBuilder's
// whole lifecycle. The scheme is stored as requested and resolved exactly
// once, at the start of Build; an unknown scheme value is a configuration
// error surfaced there, never silently downgraded.
type StringBuilderConfig struct {
	scheme      format.Scheme
	compression format.CompressionType
	engine      endian.EndianEngine
	collector   stats.Collector
	equality    Equality
}

func newStringBuilderConfig() *StringBuilderConfig {
	return &StringBuilderConfig{
		scheme:      format.SchemeAuto,
		compression: format.CompressionLZ4,
		engine:      endian.GetNativeEngine(),
		equality:    HashEquality,
	}
}

// Scheme returns the requested scheme (format.SchemeAuto unless pinned).
func (c *StringBuilderConfig) Scheme() format.Scheme {
	return c.scheme
}

// Compression returns the codec used by the block-compressed scheme.
func (c *StringBuilderConfig) Compression() format.CompressionType {
	return c.compression
}

// StringBuilderOption is a functional option for configuring StringBuilder.
type StringBuilderOption = options.Option[*StringBuilderConfig]

// WithScheme pins the compression scheme instead of letting Build choose
// from the transition-ratio heuristic. Valid values are format.SchemeAuto
// (the default), format.SchemePlain, format.SchemeRLE and
// format.SchemeCompressed; anything else makes Build fail with
// errs.ErrInvalidScheme.
func WithScheme(scheme format.Scheme) StringBuilderOption {
	return options.NoError(func(c *StringBuilderConfig) {
		c.scheme = scheme
	})
}

// WithCompression selects the codec for the block-compressed scheme.
// Default is format.CompressionLZ4. Ignored unless the resolved scheme is
// format.SchemeCompressed; an unknown value makes Build fail with
// errs.ErrInvalidCompression.
func WithCompression(compression format.CompressionType) StringBuilderOption {
	return options.NoError(func(c *StringBuilderConfig) {
		c.compression = compression
	})
}

// WithEndianEngine sets the byte order of the encoded buffer. Default is
// the platform's native order; producer and consumer must agree out of
// band.
func WithEndianEngine(engine endian.EndianEngine) StringBuilderOption {
	return options.NoError(func(c *StringBuilderConfig) {
		c.engine = engine
	})
}

// WithStats substitutes the statistics collector fed during accumulation.
// Default is a fresh stats.Basic.
func WithStats(collector stats.Collector) StringBuilderOption {
	return options.NoError(func(c *StringBuilderConfig) {
		c.collector = collector
	})
}

// WithEquality sets the equality policy used for run detection. Default is
// HashEquality; see its doc for the collision tradeoff.
func WithEquality(eq Equality) StringBuilderOption {
	return options.NoError(func(c *StringBuilderConfig) {
		c.equality = eq
	})
}
