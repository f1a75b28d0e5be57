package xyio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-pattern/pattern"
)

// SaveRecord writes the record of p to path as JSON (.json) or YAML
// (.yaml, .yml).
func (f Files) SaveRecord(path string, p *pattern.Pattern) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err = json.MarshalIndent(p.ToRecord(), "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(p.ToRecord())
	default:
		return fmt.Errorf("%w: record file %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return fmt.Errorf("xyio: encode %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("xyio: %w", err)
	}
	f.logger().Debug("saved record", "path", path, "points", p.Len())
	return nil
}

// LoadRecord reads a record file written by SaveRecord and rebuilds the
// pattern.
func (f Files) LoadRecord(path string) (*pattern.Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("xyio: %w", err)
	}

	var r pattern.Record
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &r)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &r)
	default:
		return nil, fmt.Errorf("%w: record file %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSource, path, err)
	}

	p, err := pattern.FromRecord(r)
	if err != nil {
		return nil, err
	}
	p.SetFilename(path)
	f.logger().Debug("loaded record", "path", path, "points", p.Len())
	return p, nil
}
