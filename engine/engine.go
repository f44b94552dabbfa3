package engine

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	pb "github.com/cheggaaa/pb/v3"
)

// Result describes one processed file.
type Result struct {
	Input      string
	Output     string
	InputSize  int
	OutputSize int
	Elapsed    time.Duration
}

// Ratio is the output size as a percentage of the input size.
func (r Result) Ratio() float64 {
	if r.InputSize == 0 {
		return 0
	}
	return float64(r.OutputSize) / float64(r.InputSize) * 100
}

type closer interface{ Close() }

func (c *Config) compress(content []byte) ([]byte, error) {
	for _, algorithm := range c.Algorithms {
		var bar *pb.ProgressBar
		var progress func(int)
		if c.Progress && algorithm == "lzh" {
			bar = pb.New(len(content))
			bar.Set(pb.Bytes, true)
			bar.SetWriter(os.Stderr)
			bar.Start()
			progress = func(n int) { bar.Add(n) }
		}
		var b bytes.Buffer
		w, err := codecs[algorithm].newWriter(&b, c, progress)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", algorithm, err)
		}
		if _, err = w.Write(content); err == nil {
			err = w.Close()
		}
		if bar != nil {
			bar.Finish()
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", algorithm, err)
		}
		c.logger().Debugw("stage compressed", "algorithm", algorithm, "in", len(content), "out", b.Len())
		content = b.Bytes()
	}
	return content, nil
}

func (c *Config) decompress(content []byte) ([]byte, error) {
	for i := len(c.Algorithms) - 1; i >= 0; i-- {
		algorithm := c.Algorithms[i]
		r, err := codecs[algorithm].newReader(bytes.NewReader(content), c)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", algorithm, err)
		}
		out, err := io.ReadAll(r)
		switch rc := r.(type) {
		case io.Closer:
			rc.Close()
		case closer:
			rc.Close()
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", algorithm, err)
		}
		c.logger().Debugw("stage decompressed", "algorithm", algorithm, "in", len(content), "out", len(out))
		content = out
	}
	return content, nil
}

// Compress runs content through the configured algorithm chain.
func Compress(content []byte, c *Config) ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.compress(content)
}

// Decompress undoes Compress with the same configuration.
func Decompress(content []byte, c *Config) ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.decompress(content)
}

// CompressFiles compresses every file to file+OutputExtension.
func CompressFiles(files []string, c *Config) ([]Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	var results []Result
	for _, file := range files {
		res, err := c.processFile(file, file+c.OutputExtension, c.compress)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// DecompressFiles decompresses every file. The output drops OutputExtension
// when the name carries it and appends ".out" otherwise.
func DecompressFiles(files []string, c *Config) ([]Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	var results []Result
	for _, file := range files {
		res, err := c.processFile(file, decompressedName(file, c.OutputExtension), c.decompress)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func decompressedName(file, ext string) string {
	if ext != "" && strings.HasSuffix(file, ext) && len(file) > len(ext) {
		return strings.TrimSuffix(file, ext)
	}
	return file + ".out"
}

func (c *Config) processFile(filePath, outputFileName string, transform func([]byte) ([]byte, error)) (Result, error) {
	start := time.Now()
	fileContent, err := os.ReadFile(filePath)
	if err != nil {
		return Result{}, err
	}
	c.logger().Infow("processing file", "input", filePath, "output", outputFileName, "size", len(fileContent))
	transformed, err := transform(fileContent)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", filePath, err)
	}
	if err = os.WriteFile(outputFileName, transformed, 0644); err != nil {
		return Result{}, err
	}
	return Result{
		Input:      filePath,
		Output:     outputFileName,
		InputSize:  len(fileContent),
		OutputSize: len(transformed),
		Elapsed:    time.Since(start),
	}, nil
}
