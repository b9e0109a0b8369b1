// SPDX-License-Identifier: MIT

// chembalance balances chemical equations from the command line.
//
// Equations come from the positional arguments, or one per line from
// --input (a file, or "-" for stdin; blank lines and lines starting with
// "#" are skipped). They are balanced concurrently and reported in input
// order in the selected --format.
//
// Exit status: 0 when every equation balanced, 1 when any failed, 2 on a
// usage or configuration error.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/chembalance/balance"
	"github.com/katalvlaran/chembalance/codec"
	"github.com/katalvlaran/chembalance/config"
)

// version is overridden at link time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		var coder interface{ ExitCode() int }
		if errors.As(err, &coder) {
			os.Exit(coder.ExitCode())
		}
		os.Exit(1)
	}
}

// exitError carries a process exit status.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }
func (e *exitError) ExitCode() int { return e.code }

// usageErrorf reports bad flags, arguments or configuration (exit 2).
func usageErrorf(format string, args ...any) error {
	return &exitError{code: 2, err: fmt.Errorf(format, args...)}
}

type options struct {
	configPath string
	inputPath  string
	style      string
	format     string
	order      string
	workers    int
	logLevel   string
	version    bool
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var opts options
	flagSet := pflag.NewFlagSet("chembalance", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&opts.configPath, "config", "", "configuration file (default: $"+config.EnvVar+")")
	flagSet.StringVarP(&opts.inputPath, "input", "i", "", `read equations from file, one per line ("-" for stdin)`)
	flagSet.StringVar(&opts.style, "style", "", "equation notation: latex, plain, unicode")
	flagSet.StringVarP(&opts.format, "format", "f", "", "report format: text, json, yaml, cbor, msgpack")
	flagSet.StringVar(&opts.order, "order", "", "matrix row order: first-seen, alphabetical")
	flagSet.IntVarP(&opts.workers, "workers", "j", 0, "equations balanced concurrently")
	flagSet.StringVar(&opts.logLevel, "log-level", "", "log level on stderr: debug, info, warn, error")
	flagSet.BoolVar(&opts.version, "version", false, "print version and exit")
	flagSet.BoolP("help", "h", false, "show help")
	flagSet.Usage = func() { printHelp(stderr, flagSet) }

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return usageErrorf("%w", err)
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stderr, flagSet)
		return nil
	}
	if opts.version {
		fmt.Fprintf(stdout, "chembalance %s\n", version)
		return nil
	}

	// Validate only after flags override file values: a bad file value that
	// a flag replaces is not an error.
	cfg, err := config.Read(opts.configPath)
	if err != nil {
		return usageErrorf("%w", err)
	}
	overrideConfig(cfg, flagSet, &opts)
	if err = cfg.Validate(); err != nil {
		return usageErrorf("%w", err)
	}

	logger, err := cfg.NewLogger(stderr)
	if err != nil {
		return usageErrorf("%w", err)
	}
	format, err := cfg.OutputFormat()
	if err != nil {
		return usageErrorf("%w", err)
	}
	balanceOpts, err := cfg.BalanceOptions()
	if err != nil {
		return usageErrorf("%w", err)
	}

	equations := flagSet.Args()
	if opts.inputPath != "" {
		lines, err := readEquations(opts.inputPath, stdin)
		if err != nil {
			return usageErrorf("%w", err)
		}
		equations = append(equations, lines...)
	}
	if len(equations) == 0 {
		return usageErrorf("no equations given (pass them as arguments or use --input)")
	}

	logger.Info("balancing", "equations", len(equations), "workers", cfg.Batch.Workers)
	outcomes, err := balance.All(ctx, equations, cfg.Batch.Workers,
		append(balanceOpts, balance.WithLogger(logger))...)
	if err != nil {
		return err
	}

	report := balance.NewReport(outcomes)
	logger.Info("done", "run", report.ID, "balanced", report.Balanced, "failed", report.Failed)
	if err = codec.Encode(stdout, format, report); err != nil {
		return err
	}
	if report.Failed > 0 {
		return &exitError{code: 1, err: fmt.Errorf("%d of %d equations failed", report.Failed, report.Total)}
	}

	return nil
}

// overrideConfig applies explicitly set flags over file values.
func overrideConfig(cfg *config.Config, flagSet *pflag.FlagSet, opts *options) {
	if flagSet.Changed("style") {
		cfg.Output.Style = opts.style
	}
	if flagSet.Changed("format") {
		cfg.Output.Format = opts.format
	}
	if flagSet.Changed("order") {
		cfg.Builder.ElementOrder = opts.order
	}
	if flagSet.Changed("workers") {
		cfg.Batch.Workers = opts.workers
	}
	if flagSet.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
}

// readEquations returns the non-blank, non-comment lines of path
// (stdin for "-").
func readEquations(path string, stdin io.Reader) ([]string, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var out []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return out, nil
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `chembalance balances chemical equations.

Usage:
  chembalance [flags] [equation ...]

Examples:
  chembalance "Fe + O2 --> Fe2O3"
  chembalance --style unicode "H₂ + O₂ → H₂O"
  chembalance --input reactions.txt --format json

Flags:
`)
	flagSet.PrintDefaults()
}
