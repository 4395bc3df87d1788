// Command setcover solves greedy set cover over long-form datasets and
// generates synthetic benchmark data.
//
//	setcover gen --n-sets 1000 --n-elements 200 --n-rows 50000 data.csv.zst
//	setcover solve --algo all --verify data.csv.zst
//	setcover solve --numeric s3://my-bucket/bench/data.csv.lz4
//	setcover ls minio://localhost:9000/datasets/bench/
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/hupe1980/setcover"
)

// Args defines the command-line arguments with subcommands
type Args struct {
	Solve *SolveCmd `arg:"subcommand:solve" help:"Compute a greedy set cover for a dataset"`
	Gen   *GenCmd   `arg:"subcommand:gen" help:"Generate a synthetic dataset"`
	Ls    *LsCmd    `arg:"subcommand:ls" help:"List datasets under a prefix"`

	LogLevel  string `arg:"--log-level,env:SETCOVER_LOG_LEVEL" default:"warn" help:"Log level: debug, info, warn or error"`
	LogFormat string `arg:"--log-format,env:SETCOVER_LOG_FORMAT" default:"text" help:"Log format: text or json"`

	StoreConfig
}

// StoreConfig configures remote dataset locations.
type StoreConfig struct {
	S3Region    string `arg:"--s3-region,env:SETCOVER_S3_REGION" help:"Override the AWS region for s3:// URIs"`
	S3Endpoint  string `arg:"--s3-endpoint,env:SETCOVER_S3_ENDPOINT" help:"Custom endpoint for s3:// URIs"`
	MinioSecure bool   `arg:"--minio-secure,env:SETCOVER_MINIO_SECURE" help:"Use HTTPS for minio:// URIs"`
}

// Runner encapsulates the state and behavior for the CLI
type Runner struct {
	Args   Args
	Out    io.Writer
	Logger *setcover.Logger
}

// NewRunner creates and initializes a new Runner
func NewRunner(args Args, out io.Writer) (*Runner, error) {
	logger, err := newLogger(args.LogLevel, args.LogFormat)
	if err != nil {
		return nil, err
	}
	return &Runner{
		Args:   args,
		Out:    out,
		Logger: logger,
	}, nil
}

// Run dispatches to the appropriate subcommand
func (r *Runner) Run(ctx context.Context) error {
	switch {
	case r.Args.Solve != nil:
		return r.solve(ctx, *r.Args.Solve)
	case r.Args.Gen != nil:
		return r.gen(ctx, *r.Args.Gen)
	case r.Args.Ls != nil:
		return r.ls(ctx, *r.Args.Ls)
	default:
		return fmt.Errorf("no subcommand specified, use 'solve', 'gen' or 'ls'")
	}
}

func newLogger(level, format string) (*setcover.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	switch strings.ToLower(format) {
	case "text":
		return setcover.NewTextLogger(lvl), nil
	case "json":
		return setcover.NewJSONLogger(lvl), nil
	default:
		return nil, fmt.Errorf("invalid log format %q, use 'text' or 'json'", format)
	}
}

func main() {
	var args Args
	parser := arg.MustParse(&args)

	// If no subcommand is specified, show help
	if args.Solve == nil && args.Gen == nil && args.Ls == nil {
		parser.WriteHelp(os.Stderr)
		os.Exit(1)
	}

	runner, err := NewRunner(args, os.Stdout)
	if err != nil {
		parser.Fail(err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := runner.Run(ctx); err != nil {
		runner.Logger.Error("setcover failed", "error", err)
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
