// Command xyproc loads a one-dimensional pattern, applies smoothing,
// background subtraction, scaling and offset, and writes the result.
//
// Usage:
//
//	xyproc [flags] input-file
//
// Examples:
//
//	xyproc -out clean.xy -bkg empty.chi -subtract sample.chi
//	xyproc -config process.yaml -plot sample.png sample.xy
//	xyproc -auto -roi 1,23 -html view.html sample.xy
//	xyproc -demo -auto -record demo.json
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-pattern/dsp/background"
	"github.com/cwbudde/algo-pattern/dsp/signal"
	"github.com/cwbudde/algo-pattern/pattern"
	"github.com/cwbudde/algo-pattern/plotting"
	"github.com/cwbudde/algo-pattern/xyio"
)

type options struct {
	configPath string
	bkgPath    string
	outPath    string
	plotPath   string
	htmlPath   string
	recordPath string
	unit       string
	roi        string
	scaling    float64
	offset     float64
	smoothing  float64
	auto       bool
	subtract   bool
	demo       bool
	verbose    bool
	logFormat  string
	set        map[string]bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("xyproc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var o options
	fs.StringVar(&o.configPath, "config", "", "processing config (.json, .yaml)")
	fs.StringVar(&o.bkgPath, "bkg", "", "background pattern file")
	fs.StringVar(&o.outPath, "out", "", "write the pattern to this file (.xy, .dat, .chi, .fxye)")
	fs.StringVar(&o.plotPath, "plot", "", "save a plot image (.png, .svg, .pdf)")
	fs.StringVar(&o.htmlPath, "html", "", "save an interactive HTML chart")
	fs.StringVar(&o.recordPath, "record", "", "save the pattern record (.json, .yaml)")
	fs.StringVar(&o.unit, "unit", xyio.DefaultUnit, "x unit written to .chi files")
	fs.StringVar(&o.roi, "roi", "", "auto background region as low,high")
	fs.Float64Var(&o.scaling, "scaling", 1, "scaling factor")
	fs.Float64Var(&o.offset, "offset", 0, "additive offset")
	fs.Float64Var(&o.smoothing, "smoothing", 0, "Gaussian smoothing sigma in samples")
	fs.BoolVar(&o.auto, "auto", false, "subtract the automatic background (default estimator)")
	fs.BoolVar(&o.subtract, "subtract", true, "write processed data instead of raw data")
	fs.BoolVar(&o.demo, "demo", false, "use a synthetic peak pattern instead of an input file")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")
	fs.StringVar(&o.logFormat, "log-format", "text", "log format: text or json")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: xyproc [flags] input-file\n\n")
		fmt.Fprintf(stderr, "Processes a one-dimensional x/y pattern.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	o.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })

	logger, err := newLogger(stderr, o.logFormat, o.verbose)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	if !o.demo && fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	if err := process(o, fs.Arg(0), logger, stdout); err != nil {
		logger.Error("processing failed", "error", err)
		return 1
	}
	return 0
}

func newLogger(w io.Writer, format string, verbose bool) (*slog.Logger, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	hopts := &slog.HandlerOptions{Level: level}

	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, hopts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

func process(o options, input string, logger *slog.Logger, stdout io.Writer) error {
	files := xyio.Files{Logger: logger}

	p, err := loadInput(o, input, files)
	if err != nil {
		return err
	}

	cfg := &Config{}
	if o.configPath != "" {
		if cfg, err = LoadConfig(o.configPath); err != nil {
			return err
		}
		logger.Debug("loaded config", "path", o.configPath)
	}
	if err := o.overrideConfig(cfg); err != nil {
		return err
	}

	if p, err = cfg.Apply(p, files); err != nil {
		return err
	}

	if err := printSummary(stdout, p); err != nil {
		return err
	}
	return writeOutputs(o, p, files, logger)
}

func loadInput(o options, input string, files xyio.Files) (*pattern.Pattern, error) {
	if !o.demo {
		return pattern.FromFile(input, files)
	}

	x, y, _, err := signal.NewGenerator(signal.WithBackground(5, 0.4), signal.WithNoise(0.05)).Generate()
	if err != nil {
		return nil, err
	}
	return pattern.New(x, y, pattern.WithName("demo"))
}

// overrideConfig applies explicitly set flags on top of cfg.
func (o options) overrideConfig(cfg *Config) error {
	if o.set["scaling"] {
		cfg.Scaling = &o.scaling
	}
	if o.set["offset"] {
		cfg.Offset = &o.offset
	}
	if o.set["smoothing"] {
		cfg.Smoothing = &o.smoothing
	}
	if o.bkgPath != "" {
		cfg.BackgroundFile = o.bkgPath
	}
	if o.auto && cfg.AutoBackground == nil {
		cfg.AutoBackground = &AutoBackgroundConfig{}
	}
	if o.roi != "" {
		r, err := parseRange(o.roi)
		if err != nil {
			return err
		}
		cfg.ROI = &r
	}
	return cfg.Validate()
}

func parseRange(s string) (pattern.Range, error) {
	lo, hi, ok := strings.Cut(s, ",")
	if !ok {
		return pattern.Range{}, fmt.Errorf("range %q: want low,high", s)
	}
	low, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return pattern.Range{}, fmt.Errorf("range %q: %w", s, err)
	}
	high, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil {
		return pattern.Range{}, fmt.Errorf("range %q: %w", s, err)
	}
	return pattern.Range{Low: low, High: high}, nil
}

func printSummary(w io.Writer, p *pattern.Pattern) error {
	x, y, err := p.Data()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Pattern\tRaw points\tPoints\tx range\ty range\tBackground\n")
	fmt.Fprintf(tw, "-------\t----------\t------\t-------\t-------\t----------\n")

	xr, yr := "-", "-"
	if len(x) > 0 {
		xr = fmt.Sprintf("%.4g .. %.4g", x[0], x[len(x)-1])
		lo, hi := y[0], y[0]
		for _, v := range y {
			lo, hi = min(lo, v), max(hi, v)
		}
		yr = fmt.Sprintf("%.4g .. %.4g", lo, hi)
	}
	fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%s\n", p.Name(), p.Len(), len(x), xr, yr, describeBackground(p))
	return tw.Flush()
}

func describeBackground(p *pattern.Pattern) string {
	var parts []string
	if b := p.BackgroundPattern(); b != nil {
		parts = append(parts, fmt.Sprintf("pattern %q", b.Name()))
	}
	if a := p.AutoBackground(); a != nil {
		parts = append(parts, formatEstimator(a))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " + ")
}

func formatEstimator(b *background.SmoothBruckner) string {
	return fmt.Sprintf("auto(width=%g, iter=%d, order=%d)", b.SmoothWidth, b.Iterations, b.ChebOrder)
}

func writeOutputs(o options, p *pattern.Pattern, files xyio.Files, logger *slog.Logger) error {
	if o.outPath != "" {
		opts := pattern.SaveOptions{SubtractBackground: o.subtract, Unit: o.unit}
		if err := p.Save(o.outPath, files, opts); err != nil {
			return err
		}
		logger.Info("wrote pattern", "path", o.outPath)
	}

	if o.recordPath != "" {
		if err := files.SaveRecord(o.recordPath, p); err != nil {
			return err
		}
		logger.Info("wrote record", "path", o.recordPath)
	}

	if o.plotPath == "" && o.htmlPath == "" {
		return nil
	}

	series, err := plotSeries(p)
	if err != nil {
		return err
	}
	if o.plotPath != "" {
		if err := plotting.SavePlot(o.plotPath, p.String(), o.unit, series...); err != nil {
			return err
		}
		logger.Info("wrote plot", "path", o.plotPath)
	}
	if o.htmlPath != "" {
		f, err := os.Create(o.htmlPath)
		if err != nil {
			return err
		}
		if err := plotting.RenderHTML(f, p.String(), o.unit, series...); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		logger.Info("wrote chart", "path", o.htmlPath)
	}
	return nil
}

// plotSeries returns the raw data, the processed data and, when set, the
// automatic background curve.
func plotSeries(p *pattern.Pattern) ([]plotting.Series, error) {
	series := []plotting.Series{{Name: "raw", X: p.OriginalX(), Y: p.OriginalY()}}

	processed, err := plotting.FromPattern(p)
	if err != nil {
		return nil, err
	}
	processed.Name = "processed"
	series = append(series, processed)

	curve, err := p.AutoBackgroundPattern()
	if err != nil {
		return nil, err
	}
	if curve != nil {
		s, err := plotting.FromPattern(curve)
		if err != nil {
			return nil, err
		}
		s.Name = "auto background"
		series = append(series, s)
	}
	return series, nil
}
