package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/greenfell/memscope/internal/config"
	"github.com/greenfell/memscope/internal/logging"
	"github.com/greenfell/memscope/internal/render"
	"github.com/greenfell/memscope/internal/report"
	"github.com/greenfell/memscope/internal/series"
	"github.com/greenfell/memscope/internal/timeline"
)

// stringList collects repeated flag values.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file")
		outfile    = flag.String("outfile", "", "output image path (default: input minus trailing .gz, plus .png)")
		logScale   = flag.Bool("log", false, "plot the y axis in log scale")
		limit      = flag.Int("limit", 15, "number of top scopes to plot")
		summary    = flag.Bool("summary", false, "print a ranked peak table to stdout")
		check      = flag.Bool("check", false, "report unfreed memory and exit nonzero when found")
		verbose    = flag.Bool("verbose", false, "enable debug logging")
		excludes   stringList
	)
	flag.Var(&excludes, "exclude", "scope name to skip (repeatable)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	input := flag.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Explicit command-line flags win over file and environment; -exclude
	// adds to the configured list.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "outfile":
			cfg.Outfile = *outfile
		case "log":
			cfg.LogScale = *logScale
		case "limit":
			cfg.Limit = *limit
		case "summary":
			cfg.Summary = *summary
		case "check":
			cfg.Check = *check
		case "exclude":
			cfg.Exclude = append(cfg.Exclude, excludes...)
		}
	})

	level := logging.ParseLevel(cfg.LogLevel)
	if *verbose {
		level = slog.LevelDebug
	}
	logging.Init(level)

	if err := run(input, cfg); err != nil {
		slog.Error("memscope failed", "error", err)
		os.Exit(1)
	}
}

func run(input string, cfg config.Config) error {
	tl, err := timeline.ParseFile(input)
	if err != nil {
		return err
	}
	slog.Debug("parsed timeline", "snapshots", len(tl))

	selected, err := series.Select(tl, cfg.ExcludeSet(), cfg.Limit)
	if err != nil {
		return err
	}

	out := cfg.Outfile
	if out == "" {
		out = defaultOutfile(input)
	}

	scale := render.ScaleLinear
	if cfg.LogScale {
		scale = render.ScaleLogarithmic
	}
	if err := render.Plot(selected, out, scale); err != nil {
		return err
	}
	slog.Info("wrote chart", "path", out, "series", len(selected), "scale", scale.String())

	if cfg.Summary {
		fmt.Print(report.Summary(selected))
	}
	if cfg.Check {
		if leaks := report.Unfreed(tl); len(leaks) > 0 {
			fmt.Print(report.FormatLeaks(leaks))
			return fmt.Errorf("%d scope(s) with unfreed memory", len(leaks))
		}
		slog.Info("no unfreed memory")
	}
	return nil
}

// defaultOutfile derives the image path from the input filename, dropping a
// trailing .gz before appending .png.
func defaultOutfile(input string) string {
	return strings.TrimSuffix(input, ".gz") + ".png"
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: memscope [flags] <filename>

Plots the top memory scopes from a mem-scope-track log. Files ending in .gz
are gunzipped on the fly.

Flags:
`)
	flag.PrintDefaults()
}
