// Package lzh composes the LZ77 and Huffman stages into one self-contained
// container:
//
//	u32 tokenBufferLength | u32 treeLength | tree | payload
//
// All integers are little-endian. tokenBufferLength is the size of the
// serialized token stream that the Huffman stage encoded, not the size of the
// original input. The tree is the pre-order serialization from package
// huffman and the payload runs to the end of the buffer.
package lzh

import (
	"encoding/binary"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/FitrahHaque/lzh-engine/compressor/huffman"
	"github.com/FitrahHaque/lzh-engine/compressor/lz"
)

const headerSize = 8

// Options configures compression.
type Options struct {
	LZ     *lz.Options
	Logger *zap.SugaredLogger
}

// DefaultOptions returns the default LZ77 parameters and no logging.
func DefaultOptions() *Options {
	return &Options{LZ: lz.DefaultOptions()}
}

// DecompressOptions configures decompression.
type DecompressOptions struct {
	// MaxOutputSize limits the decompressed size (0 = no limit).
	MaxOutputSize int
	Logger        *zap.SugaredLogger
}

// Stats describes the stages of one compression.
type Stats struct {
	InputSize      int
	Tokens         int
	CopyTokens     int
	TokenBufferLen int
	TreeLen        int
	PayloadLen     int
	OutputSize     int
}

func logger(l *zap.SugaredLogger) *zap.SugaredLogger {
	if l == nil {
		return zap.NewNop().Sugar()
	}
	return l
}

// Compress encodes data into a container. opts may be nil.
func Compress(data []byte, opts *Options) ([]byte, error) {
	out, _, err := CompressWithStats(data, opts)
	return out, err
}

// CompressWithStats is Compress that also reports stage sizes.
func CompressWithStats(data []byte, opts *Options) ([]byte, Stats, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	log := logger(opts.Logger)
	stats := Stats{InputSize: len(data)}

	tokens := lz.Compress(data, opts.LZ)
	stats.Tokens = len(tokens)
	for _, t := range tokens {
		if !t.IsLiteral() {
			stats.CopyTokens++
		}
	}
	if uint64(len(tokens)) > math.MaxUint32 {
		return nil, stats, fmt.Errorf("%w: %d tokens", ErrInputTooLarge, len(tokens))
	}
	tokenBuf := lz.MarshalTokens(tokens)
	stats.TokenBufferLen = len(tokenBuf)
	log.Debugw("lz77 stage done", "input", len(data), "tokens", len(tokens), "copies", stats.CopyTokens, "tokenBuffer", len(tokenBuf))

	payload, tree, n, err := huffman.Compress(tokenBuf)
	if err != nil {
		return nil, stats, err
	}
	treeBuf := huffman.SerializeTree(tree)
	stats.TreeLen, stats.PayloadLen = len(treeBuf), len(payload)
	if uint64(n) > math.MaxUint32 {
		return nil, stats, fmt.Errorf("%w: token buffer is %d bytes", ErrInputTooLarge, n)
	}
	log.Debugw("huffman stage done", "tree", len(treeBuf), "payload", len(payload))

	out := make([]byte, headerSize, headerSize+len(treeBuf)+len(payload))
	binary.LittleEndian.PutUint32(out[0:4], uint32(n))
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(treeBuf)))
	out = append(out, treeBuf...)
	out = append(out, payload...)
	stats.OutputSize = len(out)
	return out, stats, nil
}

// Decompress reverses Compress. opts may be nil.
func Decompress(container []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = &DecompressOptions{}
	}
	log := logger(opts.Logger)

	if len(container) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the %d-byte header", ErrMalformedContainer, len(container), headerSize)
	}
	tokenBufLen := uint64(binary.LittleEndian.Uint32(container[0:4]))
	treeLen := uint64(binary.LittleEndian.Uint32(container[4:8]))
	body := container[headerSize:]
	if treeLen > uint64(len(body)) {
		return nil, fmt.Errorf("%w: tree of %d bytes declared, %d bytes follow the header", ErrMalformedContainer, treeLen, len(body))
	}
	treeBuf, payload := body[:treeLen], body[treeLen:]

	tree, used, err := huffman.DeserializeTree(treeBuf)
	if err != nil {
		return nil, err
	}
	if used != len(treeBuf) {
		return nil, fmt.Errorf("%w: tree ends at byte %d of %d", ErrMalformedContainer, used, len(treeBuf))
	}
	if tokenBufLen > math.MaxInt {
		return nil, fmt.Errorf("%w: token buffer length %d", ErrMalformedContainer, tokenBufLen)
	}
	// Every token buffer byte costs at least one payload bit.
	if tokenBufLen > uint64(len(payload))*8 {
		return nil, fmt.Errorf("%w: %d symbols declared, payload holds %d bits", huffman.ErrTruncatedBitstream, tokenBufLen, len(payload)*8)
	}

	tokenBuf, consumed, err := huffman.DecompressN(payload, tree, int(tokenBufLen))
	if err != nil {
		return nil, err
	}
	if consumed != len(payload) {
		return nil, fmt.Errorf("%w: %d payload bytes decoded, %d present", ErrMalformedContainer, consumed, len(payload))
	}
	tokens, err := lz.UnmarshalTokens(tokenBuf)
	if err != nil {
		return nil, err
	}
	log.Debugw("container decoded", "tree", len(treeBuf), "payload", len(payload), "tokens", len(tokens))
	return lz.Decompress(tokens, &lz.DecompressOptions{MaxOutputSize: opts.MaxOutputSize})
}
