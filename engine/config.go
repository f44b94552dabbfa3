package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/FitrahHaque/lzh-engine/compressor/lz"
	"github.com/FitrahHaque/lzh-engine/compressor/lzh"
)

// Config carries everything the engine needs to process files.
type Config struct {
	// Algorithms are applied left to right on compression and right to left
	// on decompression.
	Algorithms      []string
	OutputExtension string
	WindowSize      int
	MinMatch        int
	Finder          string
	// MaxOutputSize limits the size of a decompressed lzh container (0 = no limit).
	MaxOutputSize int
	// Progress shows a progress bar while the LZ77 stage runs.
	Progress bool
	Logger   *zap.SugaredLogger
}

// DefaultConfig returns the lzh algorithm with its default parameters.
func DefaultConfig() *Config {
	defaults := lz.DefaultOptions()
	return &Config{
		Algorithms:      []string{"lzh"},
		OutputExtension: ".lzh",
		WindowSize:      defaults.WindowSize,
		MinMatch:        defaults.MinMatch,
		Finder:          defaults.Finder.String(),
	}
}

func (c *Config) logger() *zap.SugaredLogger {
	if c.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return c.Logger
}

// Validate checks the parameters before any file is touched.
func (c *Config) Validate() error {
	if len(c.Algorithms) == 0 {
		return fmt.Errorf("no algorithm selected")
	}
	for _, a := range c.Algorithms {
		if _, ok := codecs[a]; !ok {
			return fmt.Errorf("unknown algorithm %q, choices include: %v", a, Engines)
		}
	}
	if c.WindowSize < 0 {
		return fmt.Errorf("window size must not be negative, got %d", c.WindowSize)
	}
	if c.MinMatch < 1 {
		return fmt.Errorf("minimum match must be at least 1, got %d", c.MinMatch)
	}
	if _, err := lz.ParseFinderKind(c.Finder); err != nil {
		return err
	}
	return nil
}

func (c *Config) lzhOptions(progress func(int)) *lzh.Options {
	finder, _ := lz.ParseFinderKind(c.Finder)
	return &lzh.Options{
		LZ: &lz.Options{
			WindowSize: c.WindowSize,
			MinMatch:   c.MinMatch,
			Finder:     finder,
			Progress:   progress,
		},
		Logger: c.Logger,
	}
}
