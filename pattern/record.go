package pattern

import (
	"encoding/json"
	"fmt"

	"github.com/cwbudde/algo-pattern/dsp/grid"
)

// Record is the structural export of a pattern: raw samples, name,
// scaling, smoothing and, recursively, the manual background. Offset and
// automatic background settings are not part of it.
type Record struct {
	X          []float64 `json:"x" yaml:"x"`
	Y          []float64 `json:"y" yaml:"y"`
	Name       string    `json:"name" yaml:"name"`
	Scaling    float64   `json:"scaling" yaml:"scaling"`
	Smoothing  float64   `json:"smoothing" yaml:"smoothing"`
	BkgPattern *Record   `json:"bkg_pattern" yaml:"bkg_pattern"`
}

// ToRecord exports p.
func (p *Pattern) ToRecord() Record {
	r := Record{
		X:         cloneData(p.x),
		Y:         cloneData(p.y),
		Name:      p.name,
		Scaling:   p.scaling,
		Smoothing: p.smoothing,
	}
	if p.bkg != nil {
		bkg := p.bkg.ToRecord()
		r.BkgPattern = &bkg
	}
	return r
}

// FromRecord rebuilds a pattern from r. The background is attached with
// the same validation as SetBackgroundPattern.
func FromRecord(r Record) (*Pattern, error) {
	p := Empty()
	if err := p.setRecord(r); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Pattern) setRecord(r Record) error {
	if len(r.X) != len(r.Y) {
		return fmt.Errorf("%w: %d x values, %d y values", ErrShapeMismatch, len(r.X), len(r.Y))
	}

	var bkg *Pattern
	if r.BkgPattern != nil {
		var err error
		if bkg, err = FromRecord(*r.BkgPattern); err != nil {
			return fmt.Errorf("pattern: background record: %w", err)
		}
		bx, err := bkg.X()
		if err != nil {
			return err
		}
		if _, _, err := grid.Overlap(r.X, bx); err != nil {
			return rangeError(err, bkg)
		}
	}

	p.x, p.y = cloneData(r.X), cloneData(r.Y)
	p.name = r.Name
	p.scaling = r.Scaling
	p.smoothing = r.Smoothing
	p.attachBackground(bkg)
	p.changed.Fire()
	return nil
}

// MarshalJSON encodes p as its Record.
func (p *Pattern) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ToRecord())
}

// UnmarshalJSON replaces p's raw data, name, scaling, smoothing and
// background with the decoded Record.
func (p *Pattern) UnmarshalJSON(data []byte) error {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("pattern: decode record: %w", err)
	}
	return p.setRecord(r)
}
