package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/IgorBayerl/linereader/internal/config"
	"github.com/IgorBayerl/linereader/internal/filereader"
	"github.com/IgorBayerl/linereader/internal/filesystem"
	"github.com/IgorBayerl/linereader/internal/logging"
	"github.com/IgorBayerl/linereader/internal/reporter"
	"github.com/rs/zerolog"

	_ "github.com/IgorBayerl/linereader/internal/reporter/htmlreport"
	_ "github.com/IgorBayerl/linereader/internal/reporter/jsonreport"
	_ "github.com/IgorBayerl/linereader/internal/reporter/textsummary"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	start := time.Now()

	flags := flag.NewFlagSet("linereader", flag.ContinueOnError)
	flags.SetOutput(stderr)
	format := flags.String("format", "text", "Output format ("+strings.Join(reporter.Names(), ", ")+")")
	outputFile := flags.String("output", "", "Write the report to this file instead of stdout")
	countOnly := flags.Bool("count", false, "Only count lines per file")
	numberLines := flags.Bool("n", false, "Prefix each line with its line number (text format)")
	verbosityStr := flags.String("verbosity", "Info", "Logging verbosity level (Verbose, Info, Warning, Error, Off)")
	logFormat := flags.String("logformat", "console", "Log output format (console, json)")
	maxLineSize := flags.Int("maxlinesize", 0, fmt.Sprintf("Longest accepted line in bytes (0 = %d)", filereader.DefaultMaxLineSize))
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: linereader [flags] <file>...")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return exitUsage
	}

	verbosity, err := logging.ParseVerbosity(*verbosityStr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	cfg := config.NewConfiguration(
		flags.Args(),
		*format,
		*outputFile,
		*logFormat,
		verbosity,
		*maxLineSize,
		*countOnly,
		*numberLines,
	)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		flags.Usage()
		return exitUsage
	}

	log := logging.NewLogger(stderr, cfg.Verbosity, cfg.LogFormat == "console")

	builder, err := reporter.FindBuilder(cfg.Format)
	if err != nil {
		log.Error().Err(err).Msg("Unsupported report format")
		return exitUsage
	}

	fsys := filesystem.DefaultFS{}
	reader := filereader.NewReader(
		filereader.WithFilesystem(fsys),
		filereader.WithMaxLineSize(cfg.MaxLineSize),
	)

	results, failed := readAll(reader, fsys, cfg, log)

	if err := writeReport(builder, cfg, results, stdout); err != nil {
		log.Error().Err(err).Str("format", builder.Name()).Msg("Failed to write report")
		return exitFailure
	}

	log.Info().
		Int("files", len(results)).
		Int("failed", failed).
		Dur("elapsed", time.Since(start)).
		Msg("Report generation completed")

	if failed > 0 {
		return exitFailure
	}
	return exitOK
}

// readAll reads the configured files one after another. A file that fails
// is logged and skipped; the number of failures is returned.
func readAll(reader *filereader.Reader, fsys filesystem.Filesystem, cfg *config.Configuration, log zerolog.Logger) ([]reporter.FileLines, int) {
	results := make([]reporter.FileLines, 0, len(cfg.Files))
	seenFiles := make(map[string]struct{}, len(cfg.Files))
	failed := 0

	for _, path := range cfg.Files {
		absFile, err := fsys.Abs(path)
		if err != nil {
			absFile = path
		}
		if _, found := seenFiles[absFile]; found {
			log.Warn().Str("file", path).Msg("Skipping duplicate file")
			continue
		}
		seenFiles[absFile] = struct{}{}

		entry := reporter.FileLines{Path: path}
		if cfg.CountOnly {
			entry.Count, err = reader.CountLines(path)
		} else {
			entry.Lines, err = reader.ReadLines(path)
			entry.Count = len(entry.Lines)
		}
		if err != nil {
			log.Error().Err(err).Str("file", path).Msg("Failed to read file")
			failed++
			continue
		}

		log.Debug().Str("file", path).Int("lines", entry.Count).Msg("Read file")
		results = append(results, entry)
	}

	return results, failed
}

func writeReport(builder reporter.Builder, cfg *config.Configuration, results []reporter.FileLines, stdout io.Writer) error {
	opts := reporter.Options{CountOnly: cfg.CountOnly, NumberLines: cfg.NumberLines}

	if cfg.OutputFile == "" {
		return builder.CreateReport(stdout, results, opts)
	}

	out, err := os.Create(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", cfg.OutputFile, err)
	}
	if err := builder.CreateReport(out, results, opts); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
