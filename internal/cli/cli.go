// internal/cli/cli.go
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go-astar-visualizer/internal/app"
	"go-astar-visualizer/internal/config"
	"go-astar-visualizer/internal/event"
	"go-astar-visualizer/pkg/grid"
	"go-astar-visualizer/pkg/render"
)

var (
	ErrBadCoord      = errors.New("coordinate must look like row,col")
	ErrSameEndpoints = errors.New("start and goal must be different cells")
)

// Options are the parsed command-line flags.
type Options struct {
	Settings config.Settings
	Start    grid.Coord
	Goal     grid.Coord
	PNG      string // snapshot path, empty to skip
	CellSize int    // snapshot pixels per cell
	Quiet    bool   // summary only, no grid dump
}

// ParseCoord reads "row,col".
func ParseCoord(s string) (grid.Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return grid.Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return grid.Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return grid.Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}
	return grid.Coord{Row: row, Col: col}, nil
}

// Parse reads flags on top of base, which normally comes from config.Load.
// Start and goal default to opposite corners.
func Parse(args []string, base config.Settings, stderr io.Writer) (Options, error) {
	fs := flag.NewFlagSet("astar-cli", flag.ContinueOnError)
	fs.SetOutput(stderr)

	size := fs.Int("size", base.GridSize, "cells per side")
	seed := fs.Int64("seed", base.Seed, "seed for barrier generation (0 = time based)")
	density := fs.Float64("density", base.BarrierDensity, "share of cells turned into barriers")
	staleSkip := fs.Bool("stale-skip", base.StaleSkip, "re-queue improved open cells and skip stale entries")
	trace := fs.Bool("trace", base.Trace, "print an OpenTelemetry span per search to stderr")
	start := fs.String("start", "", "start cell as row,col (default 0,0)")
	goal := fs.String("goal", "", "goal cell as row,col (default size-1,size-1)")
	png := fs.String("png", "", "write a PNG snapshot of the finished run")
	cell := fs.Int("cell", config.SnapshotCellSize, "PNG pixels per cell")
	quiet := fs.Bool("q", false, "print the summary only")
	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}

	s := base
	s.GridSize = *size
	s.Seed = *seed
	s.BarrierDensity = *density
	s.StaleSkip = *staleSkip
	s.Trace = *trace
	if s.WindowSize < s.GridSize {
		s.WindowSize = s.GridSize
	}
	if err := s.Validate(); err != nil {
		return Options{}, err
	}
	if *cell <= 0 {
		return Options{}, fmt.Errorf("%w: -cell must be positive", config.ErrInvalidSetting)
	}

	opts := Options{
		Settings: s,
		Start:    grid.Coord{},
		Goal:     grid.Coord{Row: s.GridSize - 1, Col: s.GridSize - 1},
		PNG:      *png,
		CellSize: *cell,
		Quiet:    *quiet,
	}
	var err error
	if *start != "" {
		if opts.Start, err = ParseCoord(*start); err != nil {
			return Options{}, err
		}
	}
	if *goal != "" {
		if opts.Goal, err = ParseCoord(*goal); err != nil {
			return Options{}, err
		}
	}
	// доска не держит старт и цель в одной клетке
	if opts.Start == opts.Goal {
		return Options{}, fmt.Errorf("%w: both at %s", ErrSameEndpoints, opts.Start)
	}
	return opts, nil
}

// Run builds a board from opts, generates barriers, searches and prints the
// grid and a summary to out.
func Run(ctx context.Context, opts Options, out io.Writer, board *app.Board) error {
	if board == nil {
		var err error
		if board, err = app.NewBoard(opts.Settings, event.NewDispatcher(), nil); err != nil {
			return err
		}
	}
	if err := board.PlaceStart(opts.Start); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	if err := board.PlaceGoal(opts.Goal); err != nil {
		return fmt.Errorf("goal: %w", err)
	}
	if _, err := board.Generate(opts.Settings.BarrierDensity); err != nil {
		return err
	}

	res, err := board.Search(ctx, nil)
	if err != nil {
		return err
	}

	if !opts.Quiet {
		fmt.Fprint(out, render.ASCII(board.Grid))
		fmt.Fprintln(out, render.Legend)
	}
	if res.Found {
		fmt.Fprintf(out, "run %s: path %s -> %s cost %g, %d cells, %d expanded\n",
			res.RunID, opts.Start, opts.Goal, res.Cost, len(res.Path), res.Expanded)
	} else {
		fmt.Fprintf(out, "run %s: no path %s -> %s, %d expanded\n",
			res.RunID, opts.Start, opts.Goal, res.Expanded)
	}

	if opts.PNG != "" {
		if err := render.SavePNG(opts.PNG, board.Grid, opts.CellSize, render.DefaultPalette()); err != nil {
			return fmt.Errorf("write png: %w", err)
		}
		fmt.Fprintf(out, "snapshot written to %s\n", opts.PNG)
	}
	return nil
}
