// pkg/astar/heuristic.go
package astar

import "go-astar-visualizer/pkg/grid"

// Estimate returns the remaining-cost estimate between a and b:
// dRow^2 + dCol^2/2. Rows and columns are weighted differently and the value
// can overestimate the real distance; path choices depend on this exact form.
func Estimate(a, b grid.Coord) float64 {
	dr := float64(a.Row - b.Row)
	dc := float64(a.Col - b.Col)
	return dr*dr + dc*dc/2
}
