// Package main provides the typestate-demo CLI, which exercises the
// type-state builders and reports how many field values they release.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jdziat/typestate"
	"github.com/jdziat/typestate/internal/config"
	"github.com/jdziat/typestate/item"
	"github.com/jdziat/typestate/staged"
)

const version = "1.0.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	var err error
	switch args[0] {
	case "run":
		err = runDemo(configArg(args), stdout, stderr)
	case "build":
		err = buildItems(configArg(args), stdout, stderr)
	case "version", "--version", "-v":
		fmt.Fprintf(stdout, "typestate-demo version %s\n", version)
	case "help", "--help", "-h":
		printUsage(stdout)
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", args[0])
		printUsage(stderr)
		return 1
	}

	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func configArg(args []string) string {
	if len(args) > 1 {
		return args[1]
	}
	return ""
}

func newLogger(cfg config.LogConfig, w io.Writer) typestate.StructuredLogger {
	level, err := cfg.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler = slog.NewTextHandler(w, opts)
	if cfg.Format == config.LogFormatJSON {
		h = slog.NewJSONHandler(w, opts)
	}
	return typestate.NewSlogAdapter(slog.New(h))
}

// runDemo builds one item, abandons a series of partial and overwritten
// builders, and builds a final item from overwritten fields.
func runDemo(path string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	released := 0
	opts := []typestate.Option{
		typestate.WithLogger(newLogger(cfg.Log, stderr)),
		typestate.WithReleaseHook(func(string) { released++ }),
	}

	fmt.Fprintln(stdout, item.Build(item.New(opts...).A("incomplete").B([]int{})))

	// Uncommenting the next line fails to compile: New() returns
	// ItemBuilder[Unset, Unset] and Build requires ItemBuilder[Set, Set].
	// item.Build(item.New())

	item.New(opts...).Discard()
	item.New(opts...).A("str").Discard()
	item.New(opts...).B([]int{1, 2, 3, 4}).Discard()
	item.New(opts...).A("str").A("str2").Discard()
	item.New(opts...).B([]int{1, 2, 3, 4}).B([]int{5, 6, 7, 8, 9, 10}).Discard()
	last := item.Build(item.New(opts...).A("str").B([]int{5, 6, 7, 8, 9, 10}))

	fmt.Fprintf(stdout, "discarded builders released %d field values\n", released)
	fmt.Fprintln(stdout, last)
	fmt.Fprintln(stdout, staged.New(opts...).B([]int{1}).A("staged").Build())
	return nil
}

// buildItems builds every complete item in the config and discards the
// rest.
func buildItems(path string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Log, stderr)

	built, discarded := 0, 0
	for _, spec := range cfg.Items {
		opts := []typestate.Option{typestate.WithLogger(logger)}
		if it, ok := buildItem(spec, opts...); ok {
			built++
			fmt.Fprintf(stdout, "%s: %s\n", spec.Name, it)
			continue
		}
		discarded++
		fmt.Fprintf(stdout, "%s: discarded (%s)\n", spec.Name, missing(spec))
	}

	logger.Info("items processed", "built", built, "discarded", discarded)
	fmt.Fprintf(stdout, "built %d, discarded %d\n", built, discarded)
	return nil
}

// buildItem builds spec if both fields are present. Otherwise it discards
// a builder holding whatever was supplied and reports false.
func buildItem(spec config.ItemSpec, opts ...typestate.Option) (item.Item, bool) {
	b := item.New(opts...)
	switch {
	case spec.Complete():
		return item.Build(b.A(*spec.A).B(*spec.B)), true
	case spec.A != nil:
		b.A(*spec.A).Discard()
	case spec.B != nil:
		b.B(*spec.B).Discard()
	default:
		b.Discard()
	}
	return item.Item{}, false
}

func missing(spec config.ItemSpec) string {
	switch {
	case spec.A == nil && spec.B == nil:
		return "missing a, b"
	case spec.A == nil:
		return "missing a"
	default:
		return "missing b"
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `typestate-demo - Exercise compile-time checked builders

Usage:
  typestate-demo <command> [arguments]

Commands:
  run [config]    Build and discard a fixed series of item builders
  build [config]  Build the items listed in a config file
  version         Print version information
  help            Show this help message

Environment Variables:
  TYPESTATE_LOG_LEVEL   Override the configured log level (debug, info, warn, error)
  TYPESTATE_LOG_FORMAT  Override the configured log format (text, json)

Configuration:
  Without a config argument, .typestate.yaml is searched for from the
  working directory upwards.`)
}
