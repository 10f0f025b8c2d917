package cli

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"go-astar-visualizer/internal/app"
	"go-astar-visualizer/internal/config"
	"go-astar-visualizer/pkg/astar"
	"go-astar-visualizer/pkg/grid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoord(t *testing.T) {
	c, err := ParseCoord(" 3, 7")
	require.NoError(t, err)
	assert.Equal(t, grid.Coord{Row: 3, Col: 7}, c)

	for _, bad := range []string{"", "3", "3,x", "1,2,3"} {
		_, err := ParseCoord(bad)
		assert.ErrorIs(t, err, ErrBadCoord, bad)
	}
}

func TestParseDefaults(t *testing.T) {
	opts, err := Parse(nil, config.Defaults(), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), opts.Settings)
	assert.Equal(t, grid.Coord{}, opts.Start)
	assert.Equal(t, grid.Coord{Row: 49, Col: 49}, opts.Goal)
	assert.Equal(t, config.SnapshotCellSize, opts.CellSize)
}

func TestParseFlags(t *testing.T) {
	opts, err := Parse([]string{
		"-size", "12", "-seed", "5", "-density", "0.1", "-stale-skip", "-trace",
		"-start", "1,2", "-goal", "10,11", "-png", "out.png", "-cell", "4", "-q",
	}, config.Defaults(), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 12, opts.Settings.GridSize)
	assert.Equal(t, int64(5), opts.Settings.Seed)
	assert.Equal(t, 0.1, opts.Settings.BarrierDensity)
	assert.True(t, opts.Settings.StaleSkip)
	assert.True(t, opts.Settings.Trace)
	assert.Equal(t, grid.Coord{Row: 1, Col: 2}, opts.Start)
	assert.Equal(t, grid.Coord{Row: 10, Col: 11}, opts.Goal)
	assert.Equal(t, "out.png", opts.PNG)
	assert.Equal(t, 4, opts.CellSize)
	assert.True(t, opts.Quiet)
}

func TestParseErrors(t *testing.T) {
	cases := [][]string{
		{"-size", "0"},
		{"-density", "2"},
		{"-cell", "0"},
		{"-start", "a,b"},
		{"-nope"},
	}
	for _, args := range cases {
		_, err := Parse(args, config.Defaults(), io.Discard)
		assert.Error(t, err, strings.Join(args, " "))
	}
}

func TestParseRejectsSameEndpoints(t *testing.T) {
	cases := [][]string{
		{"-start", "2,2", "-goal", "2,2"},
		{"-size", "1"}, // default corners coincide
	}
	for _, args := range cases {
		_, err := Parse(args, config.Defaults(), io.Discard)
		assert.ErrorIs(t, err, ErrSameEndpoints, strings.Join(args, " "))
		assert.NotErrorIs(t, err, astar.ErrMissingStart)
	}
}

func TestRunEmptyGrid(t *testing.T) {
	opts, err := Parse([]string{"-size", "5", "-density", "0", "-goal", "0,4"}, config.Defaults(), io.Discard)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), opts, &out, nil))

	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, []string{"S***G", "oooo.", ".....", ".....", "....."}, lines[:5])
	assert.Contains(t, out.String(), "path (0,0) -> (0,4) cost 4, 4 cells, 4 expanded")
}

func TestRunNoPath(t *testing.T) {
	opts, err := Parse([]string{"-size", "4", "-density", "1", "-q"}, config.Defaults(), io.Discard)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), opts, &out, nil))
	assert.Contains(t, out.String(), "no path (0,0) -> (3,3), 1 expanded")
	assert.NotContains(t, out.String(), "S")
}

func TestRunOutOfBounds(t *testing.T) {
	opts, err := Parse([]string{"-size", "4", "-goal", "4,4"}, config.Defaults(), io.Discard)
	require.NoError(t, err)
	err = Run(context.Background(), opts, io.Discard, nil)
	assert.ErrorIs(t, err, app.ErrOutOfBounds)
}

func TestRunWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.png")
	opts, err := Parse([]string{"-size", "6", "-seed", "9", "-png", path, "-cell", "3", "-q"}, config.Defaults(), io.Discard)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), opts, &out, nil))
	assert.FileExists(t, path)
	assert.Contains(t, out.String(), "snapshot written to "+path)
}
