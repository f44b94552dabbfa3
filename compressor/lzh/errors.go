package lzh

import "errors"

var (
	// ErrMalformedContainer is returned when the header disagrees with the
	// length of the buffer it describes.
	ErrMalformedContainer = errors.New("malformed container")
	// ErrInputTooLarge is returned when a length does not fit the 32-bit header fields.
	ErrInputTooLarge = errors.New("input too large for container")
	// ErrWriterClosed is returned by Write after Close.
	ErrWriterClosed = errors.New("write to closed lzh writer")
)
