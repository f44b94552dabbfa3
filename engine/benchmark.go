package engine

import (
	"bytes"
	"fmt"
	"os"
	"time"
)

// BenchmarkResult is one algorithm measured on one file.
type BenchmarkResult struct {
	File           string
	Algorithm      string
	InputSize      int
	OutputSize     int
	CompressTime   time.Duration
	DecompressTime time.Duration
}

// Ratio is the compressed size as a percentage of the input size.
func (b BenchmarkResult) Ratio() float64 {
	return Result{InputSize: b.InputSize, OutputSize: b.OutputSize}.Ratio()
}

// Benchmark compresses every file with each algorithm on its own, checks the
// round trip and reports sizes and timings. An empty algorithms list means
// every registered engine.
func Benchmark(files []string, algorithms []string, c *Config) ([]BenchmarkResult, error) {
	if len(algorithms) == 0 {
		algorithms = Engines[:]
	}
	var results []BenchmarkResult
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return results, err
		}
		for _, algorithm := range algorithms {
			single := *c
			single.Algorithms = []string{algorithm}
			single.Progress = false
			res, err := benchmarkOne(content, &single)
			if err != nil {
				return results, fmt.Errorf("%s with %s: %w", file, algorithm, err)
			}
			res.File = file
			results = append(results, res)
			c.logger().Infow("benchmarked", "file", file, "algorithm", algorithm, "ratio", res.Ratio())
		}
	}
	return results, nil
}

func benchmarkOne(content []byte, c *Config) (BenchmarkResult, error) {
	if err := c.Validate(); err != nil {
		return BenchmarkResult{}, err
	}
	res := BenchmarkResult{Algorithm: c.Algorithms[0], InputSize: len(content)}
	start := time.Now()
	compressed, err := c.compress(content)
	if err != nil {
		return res, err
	}
	res.CompressTime = time.Since(start)
	res.OutputSize = len(compressed)

	start = time.Now()
	decompressed, err := c.decompress(compressed)
	if err != nil {
		return res, err
	}
	res.DecompressTime = time.Since(start)
	if !bytes.Equal(decompressed, content) {
		return res, fmt.Errorf("round trip mismatch")
	}
	return res, nil
}
