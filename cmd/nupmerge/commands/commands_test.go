package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nupmerge/internal/app"
	"nupmerge/internal/pdfdoc/pdftest"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd(app.WithPDFService(&pdftest.Fake{}))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}

func TestMergeCommand(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.pdf", pdftest.FakeDoc(pdftest.Pages(3, pdftest.A4Portrait)...))
	b := writeFile(t, dir, "b.pdf", pdftest.FakeDoc(pdftest.Square))
	out := filepath.Join(dir, "out.pdf")

	stdout, stderr, err := run(t, "merge", "-o", out, "--rows", "2", "--cols", "2", "--paper", "a3", "--padding", "0", a, b)
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote "+out+": 1 page(s)")
	assert.Contains(t, stdout, "A3 portrait 2x2")
	assert.Contains(t, stderr, "[100%] Done!")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, string(pdftest.FakeDoc(pdftest.Page{Width: 841.89, Height: 1190.55})), string(data))
}

func TestMergeCommandPresetQuiet(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.pdf", pdftest.FakeDoc(pdftest.Pages(9, pdftest.A4Portrait)...))
	out := filepath.Join(dir, "out.pdf")

	stdout, stderr, err := run(t, "merge", "-q", "-o", out, "--preset", "8-up", a)
	require.NoError(t, err)
	assert.Contains(t, stdout, "2 page(s)")
	assert.Contains(t, stdout, "A4 landscape 2x4")
	assert.NotContains(t, stderr, "Done!")
}

func TestMergeCommandErrors(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.pdf", pdftest.FakeDoc(pdftest.A4Portrait))
	out := filepath.Join(dir, "out.pdf")

	_, _, err := run(t, "merge", a)
	assert.ErrorContains(t, err, `"output" not set`)

	_, _, err = run(t, "merge", "-o", out, "--preset", "nope", a)
	assert.ErrorContains(t, err, "unknown preset")

	_, _, err = run(t, "merge", "-o", out, "--padding", "-1", a)
	assert.ErrorContains(t, err, "invalid layout")

	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err), "no output file after a failed merge")
}

func TestInfoCommand(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.pdf", pdftest.FakeDoc(pdftest.A4Portrait, pdftest.A4Landscape))

	stdout, _, err := run(t, "info", a)
	require.NoError(t, err)
	assert.Contains(t, stdout, "a.pdf (")
	assert.Contains(t, stdout, "2 page(s)")
	assert.Contains(t, stdout, "Page 1 (595×842pt)")
	assert.Contains(t, stdout, "Page 2 (842×595pt)")

	_, _, err = run(t, "info", writeFile(t, dir, "junk.pdf", []byte("junk")))
	assert.ErrorContains(t, err, "junk.pdf")
}

func TestPresetsCommand(t *testing.T) {
	stdout, _, err := run(t, "presets")
	require.NoError(t, err)
	assert.Contains(t, stdout, "NAME")
	assert.Contains(t, stdout, "4-up")
	assert.Contains(t, stdout, "paper sizes: A3, A4, A5, Legal, Letter")
	assert.Contains(t, stdout, "defaults: A4 portrait, 2x1, padding 10pt")
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "nupmerge.hcl", []byte("preset \"booklet\" {\n  rows = 1\n  cols = 2\n  orientation = \"landscape\"\n}\n"))

	stdout, _, err := run(t, "--config", cfg, "presets")
	require.NoError(t, err)
	assert.Contains(t, stdout, "booklet")
	assert.NotContains(t, stdout, "4-up")

	_, _, err = run(t, "--log-level", "chatty", "presets")
	assert.ErrorContains(t, err, "unknown log_level")
}
