// Package lz implements the dictionary-substitution stage: a greedy LZ77
// parse over a bounded sliding window, the replay of the resulting tokens and
// their fixed-width binary form.
package lz

import (
	"fmt"
	"math"
)

// FinderKind selects the MatchFinder used by Compress.
type FinderKind int

const (
	// FinderHashChain uses HashChain, falling back to Exhaustive when
	// MinMatch is below three.
	FinderHashChain FinderKind = iota
	// FinderExhaustive scans the whole window at every position.
	FinderExhaustive
)

func (k FinderKind) String() string {
	switch k {
	case FinderHashChain:
		return "chain"
	case FinderExhaustive:
		return "exhaustive"
	}
	return fmt.Sprintf("FinderKind(%d)", int(k))
}

// ParseFinderKind maps a name produced by FinderKind.String back to its kind.
func ParseFinderKind(name string) (FinderKind, error) {
	switch name {
	case "chain", "":
		return FinderHashChain, nil
	case "exhaustive":
		return FinderExhaustive, nil
	}
	return 0, fmt.Errorf("unknown match finder %q", name)
}

// Options configures compression.
type Options struct {
	// WindowSize bounds how far back a match may start.
	WindowSize int
	// MinMatch is the shortest match worth a copy token.
	MinMatch int
	// Finder selects the match search strategy. It never changes the output.
	Finder FinderKind
	// Progress, when set, receives the number of input bytes covered by each
	// emitted token.
	Progress func(n int)
}

// DefaultOptions returns a 1 KiB window, a minimum match of three bytes and
// the hash-chain finder.
func DefaultOptions() *Options {
	return &Options{WindowSize: 1024, MinMatch: 3, Finder: FinderHashChain}
}

func (o *Options) finder(size int) MatchFinder {
	if o.Finder == FinderHashChain && o.MinMatch >= 3 && size <= math.MaxInt32 {
		return &HashChain{WindowSize: o.WindowSize}
	}
	return &Exhaustive{WindowSize: o.WindowSize}
}

// Compress parses data into tokens. opts may be nil.
//
// A match never reaches the last byte of data, so every copy token is
// followed by a real literal.
func Compress(data []byte, opts *Options) []Token {
	if opts == nil {
		opts = DefaultOptions()
	}
	minMatch := max(opts.MinMatch, 1)
	finder := opts.finder(len(data))
	finder.Reset()

	var tokens []Token
	for i := 0; i < len(data); {
		var t Token
		distance, length := 0, 0
		if opts.WindowSize > 0 {
			distance, length = finder.FindMatch(data, i, len(data)-1)
		}
		if length >= minMatch {
			t = Token{Distance: uint32(distance), Length: uint32(length), Literal: data[i+length]}
		} else {
			t = Token{Literal: data[i]}
		}
		tokens = append(tokens, t)
		i += t.Span()
		if opts.Progress != nil {
			opts.Progress(t.Span())
		}
	}
	return tokens
}

// DecompressOptions configures decompression.
type DecompressOptions struct {
	// MaxOutputSize limits the decompressed size (0 = no limit).
	MaxOutputSize int
}

// Decompress replays tokens in order. opts may be nil.
func Decompress(tokens []Token, opts *DecompressOptions) ([]byte, error) {
	limit := 0
	if opts != nil {
		limit = opts.MaxOutputSize
	}
	var out []byte
	for i, t := range tokens {
		if limit > 0 && uint64(len(out))+uint64(t.Span()) > uint64(limit) {
			return nil, fmt.Errorf("%w: token %d", ErrOutputTooLarge, i)
		}
		if t.IsLiteral() {
			out = append(out, t.Literal)
			continue
		}
		if t.Distance == 0 || uint64(t.Distance) > uint64(len(out)) {
			return nil, fmt.Errorf("%w: token %d copies from distance %d with %d bytes decoded",
				ErrInvalidBackReference, i, t.Distance, len(out))
		}
		// Byte by byte: the source may be bytes this copy just wrote.
		start := len(out) - int(t.Distance)
		for k := 0; k < int(t.Length); k++ {
			out = append(out, out[start+k])
		}
		out = append(out, t.Literal)
	}
	if out == nil {
		out = []byte{}
	}
	return out, nil
}
