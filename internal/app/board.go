// internal/app/board.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"go-astar-visualizer/internal/config"
	"go-astar-visualizer/internal/event"
	"go-astar-visualizer/internal/utils"
	"go-astar-visualizer/pkg/astar"
	"go-astar-visualizer/pkg/grid"
)

var (
	ErrOutOfBounds      = errors.New("coordinate outside the grid")
	ErrSearchInProgress = errors.New("search in progress")
	ErrNoSearch         = errors.New("no search in progress")
)

// Board owns the grid and the start/goal selection, and turns frontend
// input into grid commands. Every mutation is refused while a search runs.
type Board struct {
	Grid   *grid.Grid
	Events *event.Dispatcher

	start, goal *grid.Cell
	rng         *utils.PRNGService
	logger      *slog.Logger
	settings    config.Settings

	engine *astar.Engine // non-nil while a search runs
	last   *astar.Result
}

// NewBoard creates an empty board. A nil dispatcher gets a private one and a
// nil logger discards output.
func NewBoard(settings config.Settings, dispatcher *event.Dispatcher, logger *slog.Logger) (*Board, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	g, err := grid.New(settings.GridSize)
	if err != nil {
		return nil, err
	}
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Board{
		Grid:     g,
		Events:   dispatcher,
		rng:      utils.NewPRNGService(settings.Seed),
		logger:   logger.With("component", "board"),
		settings: settings,
	}, nil
}

func (b *Board) Settings() config.Settings { return b.settings }
func (b *Board) Searching() bool           { return b.engine != nil }
func (b *Board) StartCell() *grid.Cell     { return b.start }
func (b *Board) GoalCell() *grid.Cell      { return b.goal }

// LastResult returns the outcome of the most recent completed search.
func (b *Board) LastResult() (astar.Result, bool) {
	if b.last == nil {
		return astar.Result{}, false
	}
	return *b.last, true
}

func (b *Board) cellAt(c grid.Coord) (*grid.Cell, error) {
	if b.Searching() {
		return nil, ErrSearchInProgress
	}
	if !b.Grid.Contains(c) {
		return nil, fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	return b.Grid.At(c), nil
}

// Primary handles a left click: the first click places the start, the next
// one the goal, every later one a barrier. Start and goal are never
// overwritten by a barrier.
func (b *Board) Primary(c grid.Coord) error {
	cell, err := b.cellAt(c)
	if err != nil {
		return err
	}
	switch {
	case b.start == nil && cell != b.goal:
		return b.PlaceStart(c)
	case b.goal == nil && cell != b.start:
		return b.PlaceGoal(c)
	case cell != b.start && cell != b.goal:
		return b.PlaceBarrier(c)
	}
	return nil
}

// PlaceStart moves the start to c, releasing the goal if it was there.
func (b *Board) PlaceStart(c grid.Coord) error {
	cell, err := b.cellAt(c)
	if err != nil {
		return err
	}
	if b.start != nil && b.start != cell {
		b.Grid.Reset(b.start)
	}
	if cell == b.goal {
		b.goal = nil
	}
	b.start = cell
	b.Grid.SetStart(cell)
	b.dispatch(event.StartPlaced, event.CellData{Coord: c})
	return nil
}

// PlaceGoal moves the goal to c, releasing the start if it was there.
func (b *Board) PlaceGoal(c grid.Coord) error {
	cell, err := b.cellAt(c)
	if err != nil {
		return err
	}
	if b.goal != nil && b.goal != cell {
		b.Grid.Reset(b.goal)
	}
	if cell == b.start {
		b.start = nil
	}
	b.goal = cell
	b.Grid.SetGoal(cell)
	b.dispatch(event.GoalPlaced, event.CellData{Coord: c})
	return nil
}

// PlaceBarrier turns c into a barrier. Start and goal cells are left alone.
func (b *Board) PlaceBarrier(c grid.Coord) error {
	cell, err := b.cellAt(c)
	if err != nil {
		return err
	}
	if cell == b.start || cell == b.goal || cell.IsBarrier() {
		return nil
	}
	b.Grid.SetBarrier(cell)
	b.dispatch(event.BarrierPlaced, event.CellData{Coord: c})
	return nil
}

// ResetCell handles a right click: the cell becomes Empty and gives up its
// start or goal role.
func (b *Board) ResetCell(c grid.Coord) error {
	cell, err := b.cellAt(c)
	if err != nil {
		return err
	}
	b.Grid.Reset(cell)
	switch cell {
	case b.start:
		b.start = nil
	case b.goal:
		b.goal = nil
	}
	b.dispatch(event.CellReset, event.CellData{Coord: c})
	return nil
}

// Clear replaces the grid with an empty one and forgets start and goal.
func (b *Board) Clear() error {
	if b.Searching() {
		return ErrSearchInProgress
	}
	b.Grid = grid.MustNew(b.Grid.Dimension())
	b.start, b.goal = nil, nil
	b.last = nil
	b.dispatch(event.GridCleared, nil)
	return nil
}

// Generate wipes every cell except start and goal, then turns each of them
// into a barrier with probability density. It returns the barrier count.
func (b *Board) Generate(density float64) (int, error) {
	if b.Searching() {
		return 0, ErrSearchInProgress
	}
	if density < 0 || density > 1 {
		return 0, fmt.Errorf("%w: density %g", config.ErrInvalidSetting, density)
	}
	b.last = nil
	barriers := 0
	for cell := range b.Grid.All() {
		if cell == b.start || cell == b.goal {
			continue
		}
		b.Grid.Reset(cell)
		if b.rng.Chance(density) {
			b.Grid.SetBarrier(cell)
			barriers++
		}
	}
	b.dispatch(event.GridGenerated, event.GenerateData{
		Seed:     b.rng.Seed(),
		Density:  density,
		Barriers: barriers,
	})
	return barriers, nil
}

// wipeMarks clears Open, Closed and Path left behind by a previous run.
func (b *Board) wipeMarks() {
	for cell := range b.Grid.All() {
		switch cell.State() {
		case grid.Open, grid.Closed, grid.Path:
			b.Grid.Reset(cell)
		}
	}
	if b.start != nil {
		b.Grid.SetStart(b.start)
	}
	if b.goal != nil {
		b.Grid.SetGoal(b.goal)
	}
}

// Begin prepares a step-wise search: previous marks are wiped, neighbor
// lists are refreshed and the board is locked until Finish.
func (b *Board) Begin(options ...astar.Option) (*astar.Engine, error) {
	if b.Searching() {
		return nil, ErrSearchInProgress
	}
	b.wipeMarks()
	b.Grid.RefreshNeighbors()

	opts := append([]astar.Option{
		astar.WithStaleSkip(b.settings.StaleSkip),
		astar.WithLogger(b.logger),
	}, options...)
	e, err := astar.New(b.Grid, b.start, b.goal, opts...)
	if err != nil {
		return nil, err
	}
	b.engine = e
	b.dispatch(event.SearchStarted, event.SearchData{
		RunID: e.RunID(),
		Start: b.start.Coord(),
		Goal:  b.goal.Coord(),
	})
	return e, nil
}

// Finish unlocks the board after a Begin. A nil err records the result;
// otherwise the run counts as aborted.
func (b *Board) Finish(err error) (astar.Result, error) {
	if b.engine == nil {
		return astar.Result{}, ErrNoSearch
	}
	e := b.engine
	b.engine = nil

	res := e.Result()
	data := event.SearchData{
		RunID:      res.RunID,
		Start:      e.Start().Coord(),
		Goal:       e.Goal().Coord(),
		Found:      res.Found,
		Cost:       res.Cost,
		PathLength: len(res.Path),
		Expanded:   res.Expanded,
		Err:        err,
	}
	if err != nil {
		b.dispatch(event.SearchAborted, data)
		return res, err
	}
	b.last = &res
	b.dispatch(event.SearchFinished, data)
	return res, nil
}

// Search runs a whole search synchronously. redraw is called after every
// expansion and every path mark; ctx is polled once per step.
func (b *Board) Search(ctx context.Context, redraw func()) (astar.Result, error) {
	e, err := b.Begin(astar.WithRedraw(redraw))
	if err != nil {
		return astar.Result{}, err
	}
	_, runErr := e.Run(ctx)
	return b.Finish(runErr)
}

func (b *Board) dispatch(t event.EventType, data any) {
	b.Events.Dispatch(event.Event{Type: t, Data: data})
}
