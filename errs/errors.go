// Package errs defines the sentinel errors returned by colenc.
//
// Callers should match errors with errors.Is since most call sites wrap
// these sentinels with additional context via fmt.Errorf and %w.
package errs

import "errors"

var (
	// ErrInvalidScheme is returned when an unsupported compression scheme is
	// requested. An unknown scheme is a configuration error and is never
	// silently downgraded to SchemePlain.
	ErrInvalidScheme = errors.New("invalid compression scheme")

	// ErrInvalidCompression is returned when an unsupported compression type
	// is requested for the block-compressed scheme.
	ErrInvalidCompression = errors.New("invalid compression type")

	// ErrNotInitialized is returned when Append, AppendNull or Build is
	// called before Init.
	ErrNotInitialized = errors.New("column builder not initialized")

	// ErrAlreadyInitialized is returned when Init is called more than once.
	ErrAlreadyInitialized = errors.New("column builder already initialized")

	// ErrFinalized is returned when a builder is used after Build. Builders
	// are single-use; create a new one for the next column.
	ErrFinalized = errors.New("column builder already finalized")

	// ErrInvalidTag is returned when a buffer does not start with a valid
	// type tag.
	ErrInvalidTag = errors.New("invalid type tag")
)
