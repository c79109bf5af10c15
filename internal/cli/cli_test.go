package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridfile"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// run executes the CLI with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := BuildCLI()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeGrid(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grid.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestBuildCLI(t *testing.T) {
	cmd := BuildCLI()

	assert.Equal(t, "gridpath", cmd.Use)
	assert.Equal(t, Version, cmd.Version)

	names := make(map[string]bool)
	for _, c := range cmd.Commands() {
		names[c.Use] = true
	}
	for _, want := range []string{"search", "generate", "inspect", "serve"} {
		assert.True(t, names[want], "missing %q command", want)
	}

	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("log-level"))
}

func TestSearch(t *testing.T) {
	grid := writeGrid(t, "rows:\n  - \"111\"\n  - \"1#1\"\n  - \"111\"\nsource: [0, 0]\ndestination: [2, 2]\n")

	out, err := run(t, "search", "--grid", grid, "--render")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "(0,0) -> (1,0) -> (2,1) -> (2,2)", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "cells: 4  steps: 3"))
	assert.Equal(t, []string{"**.", ".#*", "..*"}, lines[2:])

	out, err = run(t, "search", "-g", grid, "--from", "2,0", "--to", "0,2", "--heuristic", "chebyshev")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "(2,0) -> "))
}

func TestSearch_Failures(t *testing.T) {
	walled := writeGrid(t, "rows: [\"1#1\", \"1#1\"]\n")

	_, err := run(t, "search", "--grid", walled, "--from", "0,0", "--to", "2,1", "--log-level", "error")
	assert.ErrorIs(t, err, astar.ErrNoPath)

	_, err = run(t, "search", "--grid", walled, "--from", "0,0", "--to", "1,0", "--log-level", "error")
	assert.ErrorIs(t, err, astar.ErrBlocked)

	_, err = run(t, "search", "--grid", walled, "--from", "0,0")
	assert.ErrorContains(t, err, "source and destination are required")

	_, err = run(t, "search", "--grid", walled, "--from", "0;0", "--to", "2,1")
	assert.ErrorContains(t, err, "want col,row")

	_, err = run(t, "search", "--grid", walled, "--from", "0,0", "--to", "2,1", "--heuristic", "taxicab")
	assert.Error(t, err)

	_, err = run(t, "search")
	assert.Error(t, err, "--grid is required")
}

func TestGenerate_ThenInspect(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "gen.yaml")

	_, err := run(t, "generate", "--rows", "8", "--cols", "12", "--density", "0.35", "--seed", "7",
		"--from", "0,0", "--to", "11,7", "--out", out)
	require.NoError(t, err)

	doc, err := gridfile.Load(out)
	require.NoError(t, err)
	gg, err := doc.Grid(gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	assert.Equal(t, 12, gg.Width)
	assert.Equal(t, 8, gg.Height)
	assert.True(t, gg.IsOpen(0, 0))
	assert.True(t, gg.IsOpen(11, 7))

	again, err := run(t, "generate", "--rows", "8", "--cols", "12", "--density", "0.35", "--seed", "7",
		"--from", "0,0", "--to", "11,7")
	require.NoError(t, err)
	saved, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, string(saved), again, "same seed, same document")

	info, err := run(t, "inspect", "--grid", out)
	require.NoError(t, err)
	assert.Contains(t, info, "size: 12x8 (cols x rows)")
	assert.Contains(t, info, "components: ")
	assert.Contains(t, info, "endpoints: (0,0) -> (11,7)")
}

func TestGenerate_Wall(t *testing.T) {
	out, err := run(t, "generate", "--rows", "3", "--cols", "4", "--wall-col", "2", "--gap", "1")
	require.NoError(t, err)
	assert.Equal(t, "rows:\n  - \"1101\"\n  - \"1111\"\n  - \"1101\"\n", out)

	out, err = run(t, "generate", "--rows", "3", "--cols", "4", "--wall-col", "2", "--gap", "1",
		"--from", "2,0", "--to", "3,2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "rows:\n  - \"1111\"\n  - \"1111\"\n  - \"1101\"\n"),
		"endpoints on the wall are kept open")

	_, err = run(t, "generate", "--rows", "3", "--cols", "4", "--wall-col", "2", "--from", "0,0", "--to", "9,0")
	assert.ErrorContains(t, err, "outside")

	_, err = run(t, "generate", "--rows", "3", "--cols", "4", "--wall-col", "9")
	assert.Error(t, err)

	_, err = run(t, "generate", "--density", "1.5")
	assert.Error(t, err)
}

func TestParsePoint(t *testing.T) {
	p, err := ParsePoint(" 3, 7")
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Pt(3, 7), p)

	for _, bad := range []string{"", "3", "a,1", "1,b"} {
		_, err := ParsePoint(bad)
		assert.Error(t, err, bad)
	}
}

func TestRender(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 0}, {1, 1}}, gridgraph.Conn8)
	require.NoError(t, err)
	assert.Equal(t, "*#\n.*\n", Render(gg, astar.Path{gridgraph.Pt(0, 0), gridgraph.Pt(1, 1)}))
}

func TestBadConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("log: {format: xml}\n"), 0o600))
	grid := writeGrid(t, "rows: [\"11\"]\n")

	_, err := run(t, "--config", cfg, "search", "--grid", grid, "--from", "0,0", "--to", "1,0")
	assert.ErrorContains(t, err, "failed to load config")

	_, err = run(t, "search", "--grid", grid, "--from", "0,0", "--to", "1,0", "--log-level", "chatty")
	assert.Error(t, err)
}

func TestServe_StopsWithContext(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "serve.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("server: {addr: \"127.0.0.1:0\"}\ntrace: {enabled: true}\n"), 0o600))

	cmd := BuildCLI()
	var errOut bytes.Buffer
	cmd.SetOut(io.Discard)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--config", cfg, "serve"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, cmd.ExecuteContext(ctx))
	assert.Contains(t, errOut.String(), "shutting down http server")
}
