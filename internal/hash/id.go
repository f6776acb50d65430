package hash

import "github.com/cespare/xxhash/v2"

// Value computes the xxHash64 of the given byte slice.
func Value(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
