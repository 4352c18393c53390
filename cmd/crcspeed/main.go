// Command crcspeed compares the bit-at-a-time, single-table and slice-by-8
// CRC implementations for CRC-64/REDIS and CRC-16/XMODEM.
//
// Without arguments it prints the check values of every variant. With a
// file argument it times every variant over the file contents and exits
// with status 1 if any of them disagree:
//
//	crcspeed                    # check values
//	crcspeed data.bin           # human readable comparison
//	crcspeed -parse data.bin.zst
//	crcspeed -workers 8 s3://bucket/key
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/hupe1980/crcspeed"
	"github.com/hupe1980/crcspeed/internal/bench"
	"github.com/hupe1980/crcspeed/internal/endian"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type config struct {
	parse     bool
	workers   int
	byteOrder string
	logLevel  string
	logJSON   bool
	s3        s3Config
}

func parseFlags(args []string, stderr io.Writer) (config, []string, error) {
	var cfg config

	fs := flag.NewFlagSet("crcspeed", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&cfg.parse, "parse", false, "print crc:MB/s lines instead of the human readable report")
	fs.IntVar(&cfg.workers, "workers", 0, "also run the slice-by-8 variants on N goroutines sharing one table")
	fs.StringVar(&cfg.byteOrder, "byte-order", "", "force the slice-by-8 kernel: little or big (default: native)")
	fs.StringVar(&cfg.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	fs.BoolVar(&cfg.logJSON, "log-json", false, "log as JSON")
	fs.StringVar(&cfg.s3.Endpoint, "s3-endpoint", envOr("CRCSPEED_S3_ENDPOINT", "s3.amazonaws.com"), "object store endpoint for s3:// sources")
	fs.StringVar(&cfg.s3.Region, "s3-region", os.Getenv("CRCSPEED_S3_REGION"), "object store region")
	fs.BoolVar(&cfg.s3.Insecure, "s3-insecure", false, "use plain HTTP for the object store")

	if err := fs.Parse(args); err != nil {
		return cfg, nil, err
	}
	return cfg, fs.Args(), nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, rest, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}

	logger, err := newLogger(stderr, cfg.logLevel, cfg.logJSON)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	opts := []crcspeed.Option{crcspeed.WithLogger(logger)}
	if cfg.byteOrder != "" {
		order, ok := endian.Parse(cfg.byteOrder)
		if !ok {
			fmt.Fprintf(stderr, "invalid byte order %q\n", cfg.byteOrder)
			return 2
		}
		opts = append(opts, crcspeed.WithByteOrder(order))
	}

	groups := bench.Suite(opts...)
	runner := bench.New(
		bench.WithLogger(logger),
		bench.WithPrimer([]byte(loremIpsum)),
	)

	if len(rest) == 0 {
		return runCheckValues(ctx, stdout, stderr, runner, groups)
	}

	buf, err := load(ctx, rest[0], cfg.s3)
	if err != nil {
		logger.ErrorContext(ctx, "load failed", "source", rest[0], "error", err)
		fmt.Fprintf(stderr, "Can't read %s: %v\n", rest[0], err)
		return 1
	}

	report, err := runner.Run(ctx, buf, groups...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	writeReport(stdout, report, cfg.parse)

	code := 0
	if !report.OK() {
		code = 1
	}

	if cfg.workers > 0 {
		for _, g := range groups {
			res, err := runner.RunParallel(ctx, buf, g.Width, bench.Fastest(g), cfg.workers)
			if err != nil {
				fmt.Fprintln(stderr, err)
				code = 1
				continue
			}
			res.Name = fmt.Sprintf("%s (%s)", res.Name, res.Group)
			writeResult(stdout, res, cfg.parse)
			fmt.Fprintln(stdout)
		}
	}

	return code
}

func runCheckValues(ctx context.Context, stdout, stderr io.Writer, runner *bench.Runner, groups []bench.Group) int {
	code := 0
	for i, in := range checkInputs {
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		report, err := runner.Run(ctx, []byte(in.data), groups...)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		if !writeCheckValues(stdout, report, in) {
			code = 1
		}
	}
	return code
}

func newLogger(w io.Writer, level string, json bool) (*crcspeed.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if json {
		return crcspeed.NewJSONLogger(w, lvl), nil
	}
	return crcspeed.NewTextLogger(w, lvl), nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
