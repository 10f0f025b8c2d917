// internal/event/payloads.go
package event

import (
	"go-astar-visualizer/pkg/grid"

	"github.com/google/uuid"
)

// CellData accompanies StartPlaced, GoalPlaced, BarrierPlaced and CellReset.
type CellData struct {
	Coord grid.Coord
}

// GenerateData accompanies GridGenerated.
type GenerateData struct {
	Seed     int64
	Density  float64
	Barriers int
}

// SearchData accompanies the Search* events. Found, Cost, PathLength and Err
// are only meaningful once the run has ended.
type SearchData struct {
	RunID      uuid.UUID
	Start      grid.Coord
	Goal       grid.Coord
	Found      bool
	Cost       float64
	PathLength int
	Expanded   int
	Err        error
}
