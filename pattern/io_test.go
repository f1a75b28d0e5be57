package pattern

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-pattern/dsp/background"
	"github.com/cwbudde/algo-pattern/internal/testutil"
)

var errNoFile = errors.New("no such file")

type memFile struct {
	x, y       []float64
	name, unit string
}

// memFiles is an in-memory Loader and Saver.
type memFiles map[string]memFile

func (m memFiles) Load(path string) ([]float64, []float64, string, error) {
	f, ok := m[path]
	if !ok {
		return nil, nil, "", errNoFile
	}
	return f.x, f.y, f.name, nil
}

func (m memFiles) Save(path string, x, y []float64, name, unit string) error {
	m[path] = memFile{x: append([]float64(nil), x...), y: append([]float64(nil), y...), name: name, unit: unit}
	return nil
}

func TestLoad(t *testing.T) {
	files := memFiles{"data/pattern_001.chi": {x: arange(75), y: arange(75), name: "pattern_001"}}
	p := Empty()
	fired := countFires(p)

	require.NoError(t, p.Load("data/pattern_001.chi", files))
	assert.Equal(t, 75, p.Len())
	assert.Equal(t, "pattern_001", p.Name())
	assert.Equal(t, "data/pattern_001.chi", p.Filename())
	assert.Equal(t, 1, *fired)
}

func TestLoadFailureLeavesPattern(t *testing.T) {
	p := mustNew(t, []float64{1, 2}, []float64{3, 4}, WithName("keep"))
	err := p.Load("missing.xy", memFiles{})
	assert.ErrorIs(t, err, errNoFile)
	assert.Equal(t, "keep", p.Name())
	assert.Equal(t, 2, p.Len())

	_, err = FromFile("missing.xy", memFiles{})
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	x := testutil.Linspace(-5, 5, 100)
	y := square(x)
	p := mustNew(t, x, y, WithName("sq"))
	require.NoError(t, p.SetBackgroundPattern(mustNew(t, x, x)))

	files := memFiles{}
	require.NoError(t, p.Save("raw.chi", files, SaveOptions{Unit: "q_A^-1"}))
	assert.Equal(t, y, files["raw.chi"].y)
	assert.Equal(t, "q_A^-1", files["raw.chi"].unit)
	assert.Equal(t, "sq", files["raw.chi"].name)

	require.NoError(t, p.Save("sub.chi", files, SaveOptions{SubtractBackground: true}))
	_, want := mustData(t, p)
	assert.Equal(t, want, files["sub.chi"].y)
}

// scribbler overwrites the slices it is asked to save.
type scribbler struct{}

func (scribbler) Save(_ string, x, y []float64, _, _ string) error {
	for i := range x {
		x[i], y[i] = -1, -1
	}
	return nil
}

func TestSaveDoesNotExposeRawData(t *testing.T) {
	x := []float64{1, 2, 3}
	p := mustNew(t, x, []float64{4, 5, 6})

	require.NoError(t, p.Save("out.xy", scribbler{}, SaveOptions{}))
	assert.Equal(t, x, p.OriginalX())
	assert.Equal(t, []float64{4, 5, 6}, p.OriginalY())
}

func TestSaveWithAutoBackground(t *testing.T) {
	x := testutil.Linspace(-5, 5, 100)
	p := mustNew(t, x, square(x), WithAutoBackground(background.Default()))

	files := memFiles{}
	require.NoError(t, p.Save("auto.chi", files, SaveOptions{SubtractBackground: true}))
	curve, err := p.AutoBackgroundPattern()
	require.NoError(t, err)
	cy, err := curve.Y()
	require.NoError(t, err)

	got := files["auto.chi"].y
	require.Len(t, got, len(x))
	for i := range got {
		assert.InDelta(t, x[i]*x[i]-cy[i], got[i], 1e-9)
	}

	require.NoError(t, p.Save("raw.chi", files, SaveOptions{}))
	assert.Equal(t, square(x), files["raw.chi"].y)
}
