package lz

import "errors"

// Sentinel errors for token decoding and decompression.
var (
	// ErrInvalidBackReference is returned when a copy token reaches before
	// the start of the output produced so far.
	ErrInvalidBackReference = errors.New("invalid back-reference")
	// ErrMalformedTokens is returned when a token buffer is shorter than its
	// count or has bytes left over after the declared tokens.
	ErrMalformedTokens = errors.New("malformed token buffer")
	// ErrOutputTooLarge is returned when decompression would exceed MaxOutputSize.
	ErrOutputTooLarge = errors.New("output exceeds MaxOutputSize")
)
