package pattern

import "fmt"

// Loader reads samples from a file.
type Loader interface {
	Load(path string) (x, y []float64, name string, err error)
}

// Saver writes samples to a file.
type Saver interface {
	Save(path string, x, y []float64, name, unit string) error
}

// SaveOptions controls Save.
type SaveOptions struct {
	// SubtractBackground writes the derived view instead of the raw data.
	SubtractBackground bool
	// Unit names the x axis where the file format records it.
	Unit string
}

// Load replaces the raw data with the contents of path and sets name and
// filename. On error p is left untouched.
func (p *Pattern) Load(path string, l Loader) error {
	x, y, name, err := l.Load(path)
	if err != nil {
		return fmt.Errorf("pattern: load %s: %w", path, err)
	}
	if len(x) != len(y) {
		return fmt.Errorf("pattern: load %s: %w", path, ErrShapeMismatch)
	}

	p.x, p.y = cloneData(x), cloneData(y)
	p.name = name
	p.filename = path
	p.changed.Fire()
	return nil
}

// FromFile returns a new pattern loaded from path.
func FromFile(path string, l Loader) (*Pattern, error) {
	p := Empty()
	if err := p.Load(path, l); err != nil {
		return nil, err
	}
	return p, nil
}

// Save writes p to path.
func (p *Pattern) Save(path string, s Saver, opts SaveOptions) error {
	x, y := cloneData(p.x), cloneData(p.y)
	if opts.SubtractBackground {
		var err error
		if x, y, err = p.Data(); err != nil {
			return err
		}
	}
	if err := s.Save(path, x, y, p.name, opts.Unit); err != nil {
		return fmt.Errorf("pattern: save %s: %w", path, err)
	}
	return nil
}
