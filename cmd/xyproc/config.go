package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-pattern/dsp/background"
	"github.com/cwbudde/algo-pattern/pattern"
)

const maxConfigSize = 1 << 20

var errInvalidConfig = errors.New("invalid configuration")

// Config is the processing configuration read from -config. Nil fields
// leave the pattern defaults in place.
type Config struct {
	Scaling        *float64              `json:"scaling,omitempty" yaml:"scaling,omitempty"`
	Offset         *float64              `json:"offset,omitempty" yaml:"offset,omitempty"`
	Smoothing      *float64              `json:"smoothing,omitempty" yaml:"smoothing,omitempty"`
	AutoBackground *AutoBackgroundConfig `json:"auto_background,omitempty" yaml:"auto_background,omitempty"`
	ROI            *pattern.Range        `json:"roi,omitempty" yaml:"roi,omitempty"`
	BackgroundFile string                `json:"background_file,omitempty" yaml:"background_file,omitempty"`
	DeleteRanges   []pattern.Range       `json:"delete_ranges,omitempty" yaml:"delete_ranges,omitempty"`
	Limit          *pattern.Range        `json:"limit,omitempty" yaml:"limit,omitempty"`
}

// AutoBackgroundConfig enables the automatic background. Unset fields use
// the estimator defaults.
type AutoBackgroundConfig struct {
	SmoothWidth *float64 `json:"smooth_width,omitempty" yaml:"smooth_width,omitempty"`
	Iterations  *int     `json:"iterations,omitempty" yaml:"iterations,omitempty"`
	ChebOrder   *int     `json:"cheb_order,omitempty" yaml:"cheb_order,omitempty"`
}

// Estimator builds the configured estimator.
func (c *AutoBackgroundConfig) Estimator() *background.SmoothBruckner {
	var opts []background.Option
	if c.SmoothWidth != nil {
		opts = append(opts, background.WithSmoothWidth(*c.SmoothWidth))
	}
	if c.Iterations != nil {
		opts = append(opts, background.WithIterations(*c.Iterations))
	}
	if c.ChebOrder != nil {
		opts = append(opts, background.WithChebOrder(*c.ChebOrder))
	}
	return background.New(opts...)
}

// LoadConfig reads a JSON (.json) or YAML (.yaml, .yml) configuration.
func LoadConfig(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxConfigSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	switch ext := strings.ToLower(filepath.Ext(cleanPath)); ext {
	case ".json":
		err = json.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("config file must be .json, .yaml or .yml, got %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Smoothing != nil && *c.Smoothing < 0 {
		return fmt.Errorf("%w: smoothing must be >= 0, got %v", errInvalidConfig, *c.Smoothing)
	}
	if c.AutoBackground != nil {
		if err := c.AutoBackground.Estimator().Validate(); err != nil {
			return fmt.Errorf("%w: %w", errInvalidConfig, err)
		}
	}
	for _, r := range append(present(c.ROI, c.Limit), c.DeleteRanges...) {
		if r.Low > r.High {
			return fmt.Errorf("%w: range [%v, %v] is reversed", errInvalidConfig, r.Low, r.High)
		}
	}
	return nil
}

func present(ranges ...*pattern.Range) []pattern.Range {
	var out []pattern.Range
	for _, r := range ranges {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}

// Apply returns p processed according to c. Range edits produce a new
// pattern; the background file, when set, is read with l.
func (c *Config) Apply(p *pattern.Pattern, l pattern.Loader) (*pattern.Pattern, error) {
	if c.Limit != nil {
		p = p.Limit(c.Limit.Low, c.Limit.High)
	}
	if len(c.DeleteRanges) > 0 {
		p = p.DeleteRanges(c.DeleteRanges)
	}

	if c.BackgroundFile != "" {
		bkg, err := pattern.FromFile(c.BackgroundFile, l)
		if err != nil {
			return nil, err
		}
		if err := p.SetBackgroundPattern(bkg); err != nil {
			return nil, err
		}
	}

	if c.Scaling != nil {
		p.SetScaling(*c.Scaling)
	}
	if c.Offset != nil {
		p.SetOffset(*c.Offset)
	}
	if c.Smoothing != nil {
		p.SetSmoothing(*c.Smoothing)
	}
	if c.ROI != nil {
		p.SetAutoBackgroundROI(c.ROI)
	}
	if c.AutoBackground != nil {
		p.SetAutoBackground(c.AutoBackground.Estimator())
	}
	return p, nil
}
