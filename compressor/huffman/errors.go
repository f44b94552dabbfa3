package huffman

import "errors"

var (
	// ErrTruncatedTree is returned when a serialized tree ends early or holds
	// a tag byte other than 0 or 1.
	ErrTruncatedTree = errors.New("truncated huffman tree")
	// ErrTruncatedBitstream is returned when the payload runs out of bits
	// before the expected number of symbols has been decoded.
	ErrTruncatedBitstream = errors.New("truncated huffman bitstream")
	// ErrMissingTree is returned when symbols are expected but no tree was given.
	ErrMissingTree = errors.New("huffman tree required for non-empty output")
)
