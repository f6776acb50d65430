// Package column implements single-column encoders producing the colenc
// binary buffer format.
//
// A builder accumulates one column of values, one Append or AppendNull call
// per row, then emits a single immutable buffer from a terminal Build call.
// The buffer starts with an 8-byte type tag and continues with one of three
// scheme-dependent layouts:
//
//   - Plain: per row, a 4-byte signed length (-1 for null) followed by the
//     raw value bytes. No padding, no separators.
//   - RLE: a 4-byte run length per run, then the plain layout over one
//     representative value per run. A decoder zips the two arrays
//     positionally.
//   - Compressed: an 8-byte uncompressed byte total, then the plain layout
//     block-compressed in fixed row windows.
//
// When the scheme is left at format.SchemeAuto, Build picks between Plain
// and RLE from the column's observed transition ratio; callers may pin any
// concrete scheme instead.
//
// Builders are not safe for concurrent use and are not reusable after
// Build. Run one builder per column; independent builders share no state
// and may run in parallel freely.
package column
