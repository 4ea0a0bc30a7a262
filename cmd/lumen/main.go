// Command lumen applies a single image filter to one or more image files.
//
// Usage:
//
//	lumen [flags] -I <input> [-O <output>]
//	lumen [flags] <input>...
//
// Examples:
//
//	lumen -I photo.png                      # greyscale → out-photo.png
//	lumen -F invert -I photo.jpg -O neg.jpg
//	lumen -F gaussian -blur-strength 25 -I photo.png
//	lumen -F laplace -workers 4 a.png b.png c.bmp
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/shamspias/lumen"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type config struct {
	filter       string
	input        string
	output       string
	blurStrength int
	autoOrient   bool
	workers      int
	verbose      bool
	features     bool
	inputs       []string
}

func parseFlags(args []string, stderr io.Writer) (*config, *flag.FlagSet, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("lumen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.filter, "filter", "greyscale", "Image filter: greyscale|invert|gaussian|laplace")
	fs.StringVar(&cfg.filter, "F", "greyscale", "Shorthand for -filter")
	fs.StringVar(&cfg.input, "input-file", "", "Input image file")
	fs.StringVar(&cfg.input, "I", "", "Shorthand for -input-file")
	fs.StringVar(&cfg.output, "output-file", "", "Output image file (default out-<input>)")
	fs.StringVar(&cfg.output, "O", "", "Shorthand for -output-file")
	fs.IntVar(&cfg.blurStrength, "blur-strength", 10, "Gaussian blur strength (sigma = strength/10)")
	fs.BoolVar(&cfg.autoOrient, "auto-orient", true, "Apply JPEG EXIF orientation before filtering")
	fs.IntVar(&cfg.workers, "workers", 0, "Concurrent files when several inputs are given (0 = NumCPU)")
	fs.BoolVar(&cfg.verbose, "v", false, "Verbose debug logging to stderr")
	fs.BoolVar(&cfg.features, "features", false, "Print detected CPU features and exit")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: lumen [flags] -I <input> [-O <output>]")
		fmt.Fprintln(stderr, "       lumen [flags] <input>...")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Allowed options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	cfg.inputs = fs.Args()
	if cfg.input != "" {
		cfg.inputs = append([]string{cfg.input}, cfg.inputs...)
	}
	return cfg, fs, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, fs, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	if cfg.verbose {
		lumen.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer lumen.SetLogger(nil)
	}

	if cfg.features {
		fmt.Fprintln(stdout, lumen.Features())
		return 0
	}

	if len(cfg.inputs) == 0 {
		fmt.Fprintln(stderr, "Missing required option: input-file")
		fs.Usage()
		return 1
	}
	if cfg.output != "" && len(cfg.inputs) > 1 {
		fmt.Fprintln(stderr, "Error: -output-file cannot be used with multiple inputs")
		return 1
	}
	if cfg.blurStrength < 0 || cfg.blurStrength > lumen.MaxBlurStrength {
		fmt.Fprintf(stderr, "Error: -blur-strength must be in [0, %d], got %d\n", lumen.MaxBlurStrength, cfg.blurStrength)
		return 1
	}

	filter, err := lumen.ParseFilter(cfg.filter)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	opts := lumen.DefaultOptions()
	opts.BlurStrength = cfg.blurStrength
	opts.AutoOrient = cfg.autoOrient

	lumen.Logger().Debug("lumen: starting", "filter", filter.String(), "inputs", len(cfg.inputs), "features", lumen.Features())

	if len(cfg.inputs) == 1 {
		result, err := lumen.ApplyFile(ctx, cfg.inputs[0], cfg.output, filter, opts)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, result)
		return 0
	}

	items := make([]lumen.BatchItem, len(cfg.inputs))
	for i, in := range cfg.inputs {
		items[i] = lumen.BatchItem{Src: in}
	}
	results := lumen.ApplyBatch(ctx, items, lumen.BatchOptions{
		Filter:  filter,
		Options: opts,
		Workers: cfg.workers,
	})

	code := 0
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(stderr, "Error: %s: %v\n", r.Item.Src, r.Err)
			code = 1
			continue
		}
		fmt.Fprintln(stdout, r.Result)
	}
	fmt.Fprintln(stdout, lumen.Summarize(results))
	return code
}
