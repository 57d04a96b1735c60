package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"k8s.io/utils/clock"
)

// options are the parsed command-line flags
type options struct {
	input   string
	preview bool
	noColor bool
	verbose bool
	args    []string
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.input, "input", "", "Read a j1 document from a file (\"-\" for stdin) instead of fetching")
	flag.BoolVar(&opts.preview, "preview", false, "Print the tooltip for a terminal instead of JSON")
	flag.BoolVar(&opts.noColor, "no-color", false, "Disable color output")
	flag.BoolVar(&opts.verbose, "v", false, "Log request details to stderr")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	opts.args = flag.Args()
	return opts
}

func main() {
	opts := parseFlags()

	if opts.noColor {
		color.NoColor = true // disables colorized output globally
	}
	log.SetFlags(0)
	log.SetPrefix("waybar-wttr: ")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, os.Stdout, clock.RealClock{}); err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// run loads the report, builds the display and writes it to out. Nothing is
// written to out unless every step succeeds.
func run(ctx context.Context, opts options, out io.Writer, clk clock.PassiveClock) error {
	var report Report
	var err error

	if opts.input != "" {
		report, err = readReportFile(opts.input)
		if err != nil {
			return err
		}
	} else {
		location, err := getLocationFromArgs(opts.args)
		if err != nil {
			return err
		}

		cfg, err := LoadConfig(opts.verbose)
		if err != nil {
			return err
		}

		report, err = NewFetcher(cfg, opts.verbose).FetchReport(ctx, location)
		if err != nil {
			return err
		}
	}

	return writeDisplay(out, BuildDisplay(report, clk), opts.preview)
}
