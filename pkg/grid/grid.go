// pkg/grid/grid.go
package grid

import (
	"errors"
	"fmt"
	"iter"
)

var ErrInvalidDimension = errors.New("grid dimension must be positive")

// directions in neighbor order: up, down, left, right.
var directions = [4]Coord{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// Grid is an N x N board of cells indexed [row][column].
type Grid struct {
	dimension int
	cells     [][]*Cell
}

// New builds a grid with every cell Empty.
func New(dimension int) (*Grid, error) {
	if dimension <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimension, dimension)
	}
	cells := make([][]*Cell, dimension)
	for row := range cells {
		cells[row] = make([]*Cell, dimension)
		for col := range cells[row] {
			cells[row][col] = &Cell{row: row, col: col, state: Empty}
		}
	}
	return &Grid{dimension: dimension, cells: cells}, nil
}

// MustNew is New for callers with a known-good dimension.
func MustNew(dimension int) *Grid {
	g, err := New(dimension)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Grid) Dimension() int { return g.dimension }

// Contains reports whether c lies on the grid.
func (g *Grid) Contains(c Coord) bool {
	return c.Row >= 0 && c.Row < g.dimension && c.Col >= 0 && c.Col < g.dimension
}

// CellAt returns the cell at (row, column). It panics when out of bounds;
// callers are expected to check Contains first.
func (g *Grid) CellAt(row, column int) *Cell {
	if !g.Contains(Coord{Row: row, Col: column}) {
		panic(fmt.Sprintf("grid: cell (%d,%d) outside %dx%d grid", row, column, g.dimension, g.dimension))
	}
	return g.cells[row][column]
}

func (g *Grid) At(c Coord) *Cell { return g.CellAt(c.Row, c.Col) }

// Owns reports whether cell belongs to this grid.
func (g *Grid) Owns(cell *Cell) bool {
	if cell == nil || !g.Contains(cell.Coord()) {
		return false
	}
	return g.cells[cell.row][cell.col] == cell
}

// All yields every cell in row-major order.
func (g *Grid) All() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for _, row := range g.cells {
			for _, cell := range row {
				if !yield(cell) {
					return
				}
			}
		}
	}
}

// RefreshNeighbors recomputes the neighbor list of every cell against the
// current barrier layout. Lists are not updated by later barrier edits.
func (g *Grid) RefreshNeighbors() {
	for cell := range g.All() {
		cell.neighbors = g.walkable(cell, make([]*Cell, 0, len(directions)))
	}
}

func (g *Grid) walkable(cell *Cell, out []*Cell) []*Cell {
	for _, d := range directions {
		c := Coord{Row: cell.row + d.Row, Col: cell.col + d.Col}
		if !g.Contains(c) {
			continue
		}
		if n := g.cells[c.Row][c.Col]; !n.IsBarrier() {
			out = append(out, n)
		}
	}
	return out
}

// NeighborsOf returns the neighbors computed by the last RefreshNeighbors,
// in up, down, left, right order.
func (g *Grid) NeighborsOf(cell *Cell) []*Cell {
	return cell.neighbors
}

func (g *Grid) Reset(cell *Cell)      { cell.state = Empty }
func (g *Grid) SetBarrier(cell *Cell) { cell.state = Barrier }
func (g *Grid) SetStart(cell *Cell)   { cell.state = Start }
func (g *Grid) SetGoal(cell *Cell)    { cell.state = Goal }

// Count returns how many cells are in state s.
func (g *Grid) Count(s State) int {
	n := 0
	for cell := range g.All() {
		if cell.state == s {
			n++
		}
	}
	return n
}
