package xyio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultUnit labels the x axis of .chi files when no unit is given.
const DefaultUnit = "2th_deg"

const chiHeaderLines = 4

var (
	// ErrInvalidSource indicates a file whose contents cannot be parsed.
	ErrInvalidSource = errors.New("xyio: invalid source")
	// ErrUnsupportedFormat indicates an extension that cannot be handled.
	ErrUnsupportedFormat = errors.New("xyio: unsupported format")
)

// Files reads and writes pattern files on the local file system. The zero
// value is ready to use and does not log.
type Files struct {
	Logger *slog.Logger
}

func (f Files) logger() *slog.Logger {
	if f.Logger != nil {
		return f.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// Name returns the base name of path without its extension.
func Name(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Load reads the first two columns of path. The returned name is the base
// file name without extension.
func (f Files) Load(path string) (x, y []float64, name string, err error) {
	skip := 0
	switch strings.ToLower(filepath.Ext(path)) {
	case ".chi":
		skip = chiHeaderLines
	case ".fxye":
		return nil, nil, "", fmt.Errorf("%w: cannot read %s", ErrUnsupportedFormat, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, nil, "", fmt.Errorf("xyio: %w", err)
	}
	defer file.Close()

	x, y, err = readColumns(file, skip)
	if err != nil {
		return nil, nil, "", fmt.Errorf("%s: %w", path, err)
	}

	f.logger().Debug("loaded pattern", "path", path, "points", len(x))
	return x, y, Name(path), nil
}

// readColumns parses whitespace separated numeric rows after skipping the
// first skip lines. Extra columns are ignored.
func readColumns(r io.Reader, skip int) (x, y []float64, err error) {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		if line <= skip {
			continue
		}
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) < 2 {
			return nil, nil, fmt.Errorf("%w: line %d: need two columns", ErrInvalidSource, line)
		}
		xv, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: line %d: %v", ErrInvalidSource, line, err)
		}
		yv, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: line %d: %v", ErrInvalidSource, line, err)
		}
		x = append(x, xv)
		y = append(y, yv)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("xyio: read: %w", err)
	}
	if line < skip {
		return nil, nil, fmt.Errorf("%w: truncated header", ErrInvalidSource)
	}
	if len(x) == 0 {
		return nil, nil, fmt.Errorf("%w: no data rows", ErrInvalidSource)
	}
	return x, y, nil
}

// Save writes x and y to path in the format given by its extension.
func (f Files) Save(path string, x, y []float64, name, unit string) error {
	if len(x) != len(y) {
		return fmt.Errorf("xyio: %d x values, %d y values", len(x), len(y))
	}
	if unit == "" {
		unit = DefaultUnit
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("xyio: %w", err)
	}

	w := bufio.NewWriter(file)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".chi":
		err = writeChi(w, path, x, y, unit)
	case ".fxye":
		err = writeFXYE(w, name, x, y)
	default:
		err = writeColumns(w, name, x, y, unit)
	}
	if err == nil {
		err = w.Flush()
	}
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("xyio: write %s: %w", path, err)
	}

	f.logger().Debug("saved pattern", "path", path, "points", len(x))
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeRows(w io.Writer, x, y []float64) error {
	for i := range x {
		if _, err := fmt.Fprintf(w, "%s %s\n", formatFloat(x[i]), formatFloat(y[i])); err != nil {
			return err
		}
	}
	return nil
}

func writeChi(w io.Writer, path string, x, y []float64, unit string) error {
	if _, err := fmt.Fprintf(w, "%s\n%s\n\n%8d\n", path, unit, len(x)); err != nil {
		return err
	}
	return writeRows(w, x, y)
}

func writeColumns(w io.Writer, name string, x, y []float64, unit string) error {
	if _, err := fmt.Fprintf(w, "# %s\n# %s intensity\n", name, unit); err != nil {
		return err
	}
	return writeRows(w, x, y)
}

// writeFXYE writes a GSAS constant-step file with x in centidegrees.
func writeFXYE(w io.Writer, name string, x, y []float64) error {
	const factor = 100
	step := 0.0
	if len(x) > 1 {
		step = factor * (x[1] - x[0])
	}
	start := 0.0
	if len(x) > 0 {
		start = factor * x[0]
	}

	if _, err := fmt.Fprintf(w, "%s\nBANK\t1\t%d\t%d\tCONS\t%.6g\t%.6g\t0\t0\tFXYE\n",
		name, len(x), len(x), start, step); err != nil {
		return err
	}
	for i := range x {
		if _, err := fmt.Fprintf(w, "\t%.6e\t%.6e\t%.6e\n", factor*x[i], y[i], math.Sqrt(math.Abs(y[i]))); err != nil {
			return err
		}
	}
	return nil
}
