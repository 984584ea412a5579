// msgpckdump renders a MessagePack byte stream as line-oriented text,
// one line per decoded value, for inspecting arbitrary payloads:
//
//	$ printf '\x92\x01\xa3abc' | msgpckdump
//	[FixArray] array(2)
//	  [PositiveFixInt] 1
//	  [FixStr] "abc"
//
// Input defaults to stdin and output to stdout; gzip-compressed input
// is decompressed transparently unless --no-gzip is given.
package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/pflag"

	"github.com/freeeve/msgpckdump"
)

// version is set via -ldflags -X main.version at build time.
var version = "0.1.0-dev"

var gzipMagic = []byte{0x1f, 0x8b}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		inputPath        string
		outputPath       string
		includePositions bool
		maxDepth         int
		noGzip           bool
		verbose          bool
		showVersion      bool
	)

	flagSet := pflag.NewFlagSet("msgpckdump", pflag.ContinueOnError)
	flagSet.StringVarP(&inputPath, "input", "i", "", "input file (default: stdin)")
	flagSet.StringVarP(&outputPath, "output", "o", "", "output file (default: stdout)")
	flagSet.BoolVar(&includePositions, "include-positions", false, "prefix each line with the value's absolute byte offset")
	flagSet.IntVar(&maxDepth, "max-depth", msgpckdump.DefaultMaxDepth, "maximum array/map nesting depth")
	flagSet.BoolVar(&noGzip, "no-gzip", false, "do not auto-decompress gzip input")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "debug diagnostics on stderr")
	flagSet.BoolVar(&showVersion, "version", false, "print version and exit")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if showVersion {
		fmt.Printf("msgpckdump %s\n", version)
		return nil
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	data, err := readInput(ctx, logger, inputPath, !noGzip)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	var outFile *os.File
	if outputPath != "" && outputPath != "-" {
		outFile, err = os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		out = outFile
	}

	cfg := msgpckdump.DefaultConfig().
		WithMaxDepth(maxDepth).
		WithOffsets(includePositions)

	start := time.Now()
	err = msgpckdump.DumpWithConfig(out, data, cfg)
	if outFile != nil {
		if cerr := outFile.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output: %w", cerr)
		}
	}
	if err != nil {
		return err
	}
	logger.Debug("dump complete", "bytes", len(data), "elapsed", time.Since(start))
	return nil
}

// readInput buffers the whole input stream, decompressing gzip when
// the stream starts with the gzip magic and sniffing is enabled.
func readInput(ctx context.Context, logger *slog.Logger, path string, sniffGzip bool) ([]byte, error) {
	var in io.Reader = os.Stdin
	name := "stdin"
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		in = f
		name = path
	}

	src, err := sniffReader(bufio.NewReader(in), sniffGzip)
	if err != nil {
		return nil, err
	}
	if zr, ok := src.(*gzip.Reader); ok {
		defer zr.Close()
		logger.Debug("gzip input detected", "input", name)
	}

	data, err := msgpckdump.ReadInput(ctx, src)
	if err != nil {
		return nil, err
	}
	logger.Debug("input buffered", "input", name, "bytes", len(data))
	return data, nil
}

// sniffReader wraps br in a gzip reader when the stream starts with
// the gzip magic. Inputs shorter than two bytes are never gzip.
func sniffReader(br *bufio.Reader, sniffGzip bool) (io.Reader, error) {
	if !sniffGzip {
		return br, nil
	}
	magic, err := br.Peek(2)
	if err != nil || !bytes.Equal(magic, gzipMagic) {
		return br, nil
	}
	zr, err := gzip.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("opening gzip input: %w", err)
	}
	return zr, nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Usage: msgpckdump [flags]

Render a MessagePack byte stream as human-readable lines, one per
decoded value. Reads stdin and writes stdout unless told otherwise.

Flags:
%s`, flagSet.FlagUsages())
}
