// pkg/astar/engine.go
package astar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"go-astar-visualizer/pkg/grid"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrNilGrid      = errors.New("astar: grid is nil")
	ErrMissingStart = errors.New("astar: start cell not set")
	ErrMissingGoal  = errors.New("astar: goal cell not set")
	ErrForeignCell  = errors.New("astar: endpoint does not belong to the grid")
	ErrAborted      = errors.New("astar: search aborted")
)

// edgeCost is the uniform cost of moving to an adjacent cell.
const edgeCost = 1

// Status is the state of an Engine after a step.
type Status int

const (
	Running Status = iota
	Found
	Exhausted
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Options defines parameters for a search.
type Options struct {
	Redraw         func()
	StaleSkip      bool
	Logger         *slog.Logger
	TracerProvider trace.TracerProvider
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithRedraw sets the hook called after every expansion and every path mark.
func WithRedraw(redraw func()) Option {
	return func(o *Options) { o.Redraw = redraw }
}

// WithStaleSkip re-queues cells whose cost improves while they are open and
// drops outdated entries when they surface. Off by default: every dequeued
// entry is expanded.
func WithStaleSkip(enabled bool) Option {
	return func(o *Options) { o.StaleSkip = enabled }
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithTracerProvider sets where Run spans go. The global otel provider is
// used otherwise.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) { o.TracerProvider = tp }
}

// Result contains the outcome of a search.
type Result struct {
	RunID    uuid.UUID
	Found    bool
	Path     []*grid.Cell // first cell after start through goal
	Cost     float64      // g-score of the goal, +Inf when not found
	Expanded int
}

// Coords returns the path as coordinates.
func (r Result) Coords() []grid.Coord {
	out := make([]grid.Coord, 0, len(r.Path))
	for _, c := range r.Path {
		out = append(out, c.Coord())
	}
	return out
}

// Engine holds the state of a single A* run. It is not safe for concurrent use
// and must not outlive the grid layout it was created for.
type Engine struct {
	grid        *grid.Grid
	start, goal *grid.Cell
	opts        Options
	logger      *slog.Logger

	open        *frontier
	gScore      map[*grid.Cell]float64
	fScore      map[*grid.Cell]float64
	predecessor map[*grid.Cell]*grid.Cell

	runID    uuid.UUID
	status   Status
	expanded int
	path     []*grid.Cell
}

// New prepares a search from start to goal. Neighbor lists must already be
// fresh (grid.RefreshNeighbors).
func New(g *grid.Grid, start, goal *grid.Cell, options ...Option) (*Engine, error) {
	switch {
	case g == nil:
		return nil, ErrNilGrid
	case start == nil:
		return nil, ErrMissingStart
	case goal == nil:
		return nil, ErrMissingGoal
	case !g.Owns(start):
		return nil, fmt.Errorf("%w: start %s", ErrForeignCell, start.Coord())
	case !g.Owns(goal):
		return nil, fmt.Errorf("%w: goal %s", ErrForeignCell, goal.Coord())
	}

	opts := Options{}
	for _, o := range options {
		o(&opts)
	}
	if opts.TracerProvider == nil {
		opts.TracerProvider = otel.GetTracerProvider()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	runID := uuid.New()
	h := Estimate(start.Coord(), goal.Coord())
	e := &Engine{
		grid:        g,
		start:       start,
		goal:        goal,
		opts:        opts,
		logger:      logger.With("component", "astar", "run_id", runID.String()),
		open:        newFrontier(start, h),
		gScore:      map[*grid.Cell]float64{start: 0},
		fScore:      map[*grid.Cell]float64{start: h},
		predecessor: make(map[*grid.Cell]*grid.Cell),
		runID:       runID,
		status:      Running,
	}
	return e, nil
}

// Search is New followed by Run.
func Search(ctx context.Context, g *grid.Grid, start, goal *grid.Cell, options ...Option) (Result, error) {
	e, err := New(g, start, goal, options...)
	if err != nil {
		return Result{}, err
	}
	return e.Run(ctx)
}

// Run steps the engine until it finds the goal or exhausts the frontier.
// ctx is checked once per step; on cancellation the grid is left as is and
// the returned error wraps both ErrAborted and ctx.Err().
func (e *Engine) Run(ctx context.Context) (Result, error) {
	ctx, span := e.opts.TracerProvider.Tracer("astar").Start(ctx, "astar.Run",
		trace.WithAttributes(
			attribute.String("run_id", e.runID.String()),
			attribute.Stringer("start", e.start.Coord()),
			attribute.Stringer("goal", e.goal.Coord()),
			attribute.Int("dimension", e.grid.Dimension()),
		),
	)
	defer span.End()

	for e.status == Running {
		if err := ctx.Err(); err != nil {
			err = fmt.Errorf("%w: %w", ErrAborted, err)
			span.RecordError(err)
			span.SetStatus(codes.Error, "aborted")
			e.logger.Debug("search aborted", "expanded", e.expanded)
			return e.Result(), err
		}
		e.Step()
	}

	res := e.Result()
	span.SetAttributes(
		attribute.Bool("found", res.Found),
		attribute.Int("expanded", res.Expanded),
		attribute.Int("path_length", len(res.Path)),
	)
	e.logger.Debug("search finished", "status", e.status, "expanded", e.expanded, "path_length", len(res.Path))
	return res, nil
}

// Step performs one expansion and returns the resulting status. Once the
// engine is done, Step is a no-op.
func (e *Engine) Step() Status {
	if e.status != Running {
		return e.status
	}

	item, ok := e.open.pop()
	if !ok {
		e.status = Exhausted
		return e.status
	}
	current := item.cell
	if e.opts.StaleSkip && item.f != e.score(e.fScore, current) {
		return e.status
	}
	e.open.leave(current)

	if current == e.goal {
		e.path = Reconstruct(e.predecessor, e.goal, e.opts.Redraw)
		e.grid.SetStart(e.start)
		e.status = Found
		return e.status
	}

	tentative := e.score(e.gScore, current) + edgeCost
	for _, n := range e.grid.NeighborsOf(current) {
		if tentative >= e.score(e.gScore, n) {
			continue
		}
		e.predecessor[n] = current
		e.gScore[n] = tentative
		e.fScore[n] = tentative + Estimate(n.Coord(), e.goal.Coord())
		if !e.open.has(n) {
			e.open.push(e.fScore[n], n)
			n.SetState(grid.Open)
		} else if e.opts.StaleSkip {
			e.open.requeue(e.fScore[n], n)
		}
	}
	e.expanded++
	e.redraw()

	if current != e.start {
		current.SetState(grid.Closed)
	}
	return e.status
}

func (e *Engine) redraw() {
	if e.opts.Redraw != nil {
		e.opts.Redraw()
	}
}

func (e *Engine) score(m map[*grid.Cell]float64, cell *grid.Cell) float64 {
	if v, ok := m[cell]; ok {
		return v
	}
	return math.Inf(1)
}

// Result reports the current outcome. Path and Cost are only set once the
// goal has been found.
func (e *Engine) Result() Result {
	res := Result{
		RunID:    e.runID,
		Found:    e.status == Found,
		Cost:     math.Inf(1),
		Expanded: e.expanded,
	}
	if res.Found {
		res.Path = append([]*grid.Cell(nil), e.path...)
		res.Cost = e.score(e.gScore, e.goal)
	}
	return res
}

func (e *Engine) Status() Status    { return e.status }
func (e *Engine) RunID() uuid.UUID  { return e.runID }
func (e *Engine) Expanded() int     { return e.expanded }
func (e *Engine) FrontierLen() int  { return e.open.len() }
func (e *Engine) Start() *grid.Cell { return e.start }
func (e *Engine) Goal() *grid.Cell  { return e.goal }

// Cost returns the best known cost from start to cell (+Inf if unseen).
func (e *Engine) Cost(cell *grid.Cell) float64 { return e.score(e.gScore, cell) }

// Predecessors returns a copy of the predecessor map keyed by coordinate.
func (e *Engine) Predecessors() map[grid.Coord]grid.Coord {
	out := make(map[grid.Coord]grid.Coord, len(e.predecessor))
	for k, v := range e.predecessor {
		out[k.Coord()] = v.Coord()
	}
	return out
}
