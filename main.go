package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/FitrahHaque/lzh-engine/engine"
)

var Commands = [...]string{"compress", "decompress", "benchmark", "help"}

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	application := args[0]
	if len(args) == 1 {
		color.Red("Please provide commands")
		usage(application)
		return 1
	}

	command, rest := "compress", args[1:]
	selected := 0
	for _, c := range Commands[:3] {
		for _, a := range args[1:] {
			if a == "--"+c || a == "-"+c {
				command = c
				selected++
			}
		}
	}
	if selected > 1 {
		color.Red("Specify a single command")
		return 1
	}
	if selected == 0 {
		if len(args) == 2 && (args[1] == "--help" || args[1] == "-help" || args[1] == "-h") {
			usage(application)
			return 0
		}
		color.Yellow("No command is selected. Compression by default")
	} else {
		rest = removeArg(args[1:], command)
	}

	cfg := engine.DefaultConfig()
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s --%s [OPTIONS] <file(s)>\n", application, command)
		fmt.Fprintf(os.Stderr, "Flag:\n")
		fs.PrintDefaults()
	}
	algorithm := fs.String("algorithm", strings.Join(cfg.Algorithms, ","), fmt.Sprintf("Which algorithm(s) to use, choices include: \n\t%s", strings.Join(engine.Engines[:], ", ")))
	fs.StringVar(&cfg.OutputExtension, "outfileext", cfg.OutputExtension, "File extension used for the result")
	fs.IntVar(&cfg.WindowSize, "window", cfg.WindowSize, "LZ77 search window in bytes")
	fs.IntVar(&cfg.MinMatch, "minmatch", cfg.MinMatch, "Shortest LZ77 match worth a copy token")
	fs.StringVar(&cfg.Finder, "finder", cfg.Finder, "LZ77 match finder: chain or exhaustive")
	fs.IntVar(&cfg.MaxOutputSize, "maxoutput", 0, "Refuse to decompress lzh containers larger than this many bytes (0 = no limit)")
	fs.BoolVar(&cfg.Progress, "progress", false, "Show a progress bar during LZ77 matching")
	deleteAfter := fs.Bool("delete", false, "Delete input files after processing")
	verbose := fs.Bool("verbose", false, "Debug logging")
	if err := fs.Parse(rest); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	logger, err := newLogger(*verbose)
	if err != nil {
		color.Red("could not build logger: %v", err)
		return 1
	}
	defer logger.Sync()
	cfg.Logger = logger.Sugar()

	cfg.Algorithms = strings.Split(*algorithm, ",")
	trimSpace(cfg.Algorithms)
	files := splitFiles(fs.Args())
	if len(files) == 0 {
		color.Red("No file provided for %s", command)
		return 1
	}
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			color.Red("Could not open the provided file %s", f)
			return 1
		}
	}

	switch command {
	case "compress":
		fmt.Println("Compressing...")
		results, err := engine.CompressFiles(files, cfg)
		printResults(results)
		if err != nil {
			color.Red("Compression failed: %v", err)
			return 1
		}
	case "decompress":
		fmt.Println("Decompressing...")
		results, err := engine.DecompressFiles(files, cfg)
		printResults(results)
		if err != nil {
			color.Red("Decompression failed: %v", err)
			return 1
		}
	case "benchmark":
		var algorithms []string
		if isFlagSet(fs, "algorithm") {
			algorithms = cfg.Algorithms
		}
		results, err := engine.Benchmark(files, algorithms, cfg)
		printBenchmark(results)
		if err != nil {
			color.Red("Benchmark failed: %v", err)
			return 1
		}
		return 0
	}
	if *deleteAfter {
		if err := deleteFiles(files); err != nil {
			color.Red("%v", err)
			return 1
		}
	}
	return 0
}

func usage(application string) {
	fmt.Fprintf(os.Stderr, "Usage of %s:\n", application)
	fmt.Fprintf(os.Stderr, "Valid commands include:\n\t--%s\n", strings.Join(Commands[:], ", --"))
	fmt.Fprintf(os.Stderr, "Run %s --<command> --help for the command's flags\n", application)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.Encoding = "console"
	return cfg.Build()
}

func printResults(results []engine.Result) {
	for _, r := range results {
		color.Green("%s -> %s", r.Input, r.Output)
		fmt.Printf("Original size (in bytes): %v\n", r.InputSize)
		fmt.Printf("Result size (in bytes): %v\n", r.OutputSize)
		fmt.Printf("Ratio: %.2f%%\n", r.Ratio())
		fmt.Printf("Elapsed: %v\n", r.Elapsed)
	}
}

func printBenchmark(results []engine.BenchmarkResult) {
	header := color.New(color.Bold).SprintfFunc()
	fmt.Println(header("%-24s %-8s %12s %12s %8s %12s %12s", "file", "engine", "input", "output", "ratio", "compress", "decompress"))
	for _, r := range results {
		fmt.Printf("%-24s %-8s %12d %12d %7.2f%% %12v %12v\n",
			r.File, r.Algorithm, r.InputSize, r.OutputSize, r.Ratio(), r.CompressTime, r.DecompressTime)
	}
}

func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func removeArg(argList []string, command string) []string {
	var out []string
	for _, arg := range argList {
		if arg != "--"+command && arg != "-"+command {
			out = append(out, arg)
		}
	}
	return out
}

func splitFiles(args []string) []string {
	var files []string
	for _, arg := range args {
		for _, f := range strings.Split(arg, ",") {
			if f = strings.TrimSpace(f); f != "" {
				files = append(files, f)
			}
		}
	}
	return files
}

func trimSpace(s []string) {
	for i := range s {
		s[i] = strings.TrimSpace(s[i])
	}
}

func deleteFiles(files []string) error {
	for _, file := range files {
		if err := os.Remove(file); err != nil {
			return err
		}
	}
	return nil
}
