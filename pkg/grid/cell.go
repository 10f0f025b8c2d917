// pkg/grid/cell.go
package grid

import "fmt"

// State is the visual and logical state of a cell. A cell holds exactly one.
type State uint8

const (
	Empty State = iota
	Barrier
	Start
	Goal
	Open
	Closed
	Path
)

var stateNames = [...]string{"empty", "barrier", "start", "goal", "open", "closed", "path"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Coord is a (row, column) position on the grid.
type Coord struct {
	Row, Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Cell is a single grid unit. Cells are compared by pointer only.
type Cell struct {
	row, col  int
	state     State
	neighbors []*Cell
}

func (c *Cell) Row() int        { return c.row }
func (c *Cell) Column() int     { return c.col }
func (c *Cell) Coord() Coord    { return Coord{Row: c.row, Col: c.col} }
func (c *Cell) State() State    { return c.state }
func (c *Cell) IsBarrier() bool { return c.state == Barrier }

// SetState overwrites the cell state.
func (c *Cell) SetState(s State) { c.state = s }

// Neighbors returns the list computed by the last Grid.RefreshNeighbors.
func (c *Cell) Neighbors() []*Cell { return c.neighbors }

func (c *Cell) String() string {
	return fmt.Sprintf("cell%s[%s]", c.Coord(), c.state)
}
