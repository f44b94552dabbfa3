package engine

import (
	"io"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/FitrahHaque/lzh-engine/compressor/lzh"
)

// Engines lists the selectable algorithms. lzh is this repository's format;
// the others are established codecs kept for comparison.
var Engines = [...]string{
	"lzh",
	"flate",
	"zstd",
	"snappy",
	"lz4",
	"brotli",
}

type codec struct {
	newWriter func(w io.Writer, c *Config, progress func(int)) (io.WriteCloser, error)
	newReader func(r io.Reader, c *Config) (io.Reader, error)
}

var codecs = map[string]codec{
	"lzh": {
		newWriter: func(w io.Writer, c *Config, progress func(int)) (io.WriteCloser, error) {
			return lzh.NewWriter(w, c.lzhOptions(progress)), nil
		},
		newReader: func(r io.Reader, c *Config) (io.Reader, error) {
			return lzh.NewReader(r, &lzh.DecompressOptions{MaxOutputSize: c.MaxOutputSize, Logger: c.Logger})
		},
	},
	"flate": {
		newWriter: func(w io.Writer, _ *Config, _ func(int)) (io.WriteCloser, error) {
			return flate.NewWriter(w, flate.BestCompression)
		},
		newReader: func(r io.Reader, _ *Config) (io.Reader, error) {
			return flate.NewReader(r), nil
		},
	},
	"zstd": {
		newWriter: func(w io.Writer, _ *Config, _ func(int)) (io.WriteCloser, error) {
			return zstd.NewWriter(w)
		},
		newReader: func(r io.Reader, _ *Config) (io.Reader, error) {
			return zstd.NewReader(r)
		},
	},
	"snappy": {
		newWriter: func(w io.Writer, _ *Config, _ func(int)) (io.WriteCloser, error) {
			return snappy.NewBufferedWriter(w), nil
		},
		newReader: func(r io.Reader, _ *Config) (io.Reader, error) {
			return snappy.NewReader(r), nil
		},
	},
	"lz4": {
		newWriter: func(w io.Writer, _ *Config, _ func(int)) (io.WriteCloser, error) {
			return lz4.NewWriter(w), nil
		},
		newReader: func(r io.Reader, _ *Config) (io.Reader, error) {
			return lz4.NewReader(r), nil
		},
	},
	"brotli": {
		newWriter: func(w io.Writer, _ *Config, _ func(int)) (io.WriteCloser, error) {
			return brotli.NewWriterLevel(w, brotli.BestCompression), nil
		},
		newReader: func(r io.Reader, _ *Config) (io.Reader, error) {
			return brotli.NewReader(r), nil
		},
	},
}
