package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-pattern/xyio"
)

func TestRunDemoWritesOutputs(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "demo.chi")
	record := filepath.Join(dir, "demo.json")
	html := filepath.Join(dir, "demo.html")
	png := filepath.Join(dir, "demo.png")

	var stdout, stderr bytes.Buffer
	code := run([]string{
		"-demo", "-auto", "-roi", "1,23",
		"-out", out, "-record", record, "-html", html, "-plot", png,
	}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	for _, path := range []string{out, record, html, png} {
		info, err := os.Stat(path)
		require.NoError(t, err, path)
		assert.Positive(t, info.Size(), path)
	}
	assert.Contains(t, stdout.String(), "demo")
	assert.Contains(t, stdout.String(), "auto(width=0.1, iter=50, order=50)")
	assert.Contains(t, stderr.String(), "wrote pattern")

	x, _, _, err := xyio.Files{}.Load(out)
	require.NoError(t, err)
	assert.Greater(t, x[0], 1.0)
	assert.Less(t, x[len(x)-1], 23.0)
}

func TestRunProcessesInputFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.xy")
	require.NoError(t, xyio.Files{}.Save(in, []float64{0, 1, 2}, []float64{1, 2, 3}, "in", ""))
	cfgPath := filepath.Join(dir, "cfg.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"scaling": 3}`), 0o644))
	out := filepath.Join(dir, "out.xy")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", cfgPath, "-offset", "1", "-out", out, "-log-format", "json", "-v", in}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	x, y, _, err := xyio.Files{}.Load(out)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, x)
	assert.Equal(t, []float64{4, 7, 10}, y)
	assert.True(t, strings.HasPrefix(stderr.String(), "{"), "json log expected")
	assert.Contains(t, stderr.String(), `"msg":"loaded pattern"`)
}

func TestRunUsageErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run(nil, &stdout, &stderr))
	assert.Equal(t, 2, run([]string{"-log-format", "xml", "-demo"}, &stdout, &stderr))
	assert.Equal(t, 2, run([]string{"-nope"}, &stdout, &stderr))
	assert.Equal(t, 0, run([]string{"-h"}, &stdout, &stderr))
	assert.Equal(t, 1, run([]string{"-demo", "-roi", "5"}, &stdout, &stderr))
	assert.Equal(t, 1, run([]string{filepath.Join(t.TempDir(), "missing.xy")}, &stdout, &stderr))
}

func TestParseRange(t *testing.T) {
	r, err := parseRange(" 1.5 , 20")
	require.NoError(t, err)
	assert.Equal(t, 1.5, r.Low)
	assert.Equal(t, 20.0, r.High)

	for _, bad := range []string{"1", "a,2", "1,b"} {
		_, err := parseRange(bad)
		assert.Error(t, err, bad)
	}
}
