// internal/utils/coords.go
package utils

import "go-astar-visualizer/pkg/grid"

// PixelToCoord maps a pixel to the cell under it. Rows grow downwards with y
// and columns rightwards with x. Integer division floors toward zero, so
// callers must reject negative pixels first.
func PixelToCoord(x, y, cellSize int) grid.Coord {
	return grid.Coord{Row: y / cellSize, Col: x / cellSize}
}

// CanvasCoord is PixelToCoord limited to the grid area; ok is false for
// pixels outside it, e.g. on the button bar.
func CanvasCoord(x, y, cellSize int, g *grid.Grid) (grid.Coord, bool) {
	if x < 0 || y < 0 || cellSize <= 0 {
		return grid.Coord{}, false
	}
	c := PixelToCoord(x, y, cellSize)
	return c, g.Contains(c)
}

// CellOrigin returns the top-left pixel of the cell at c.
func CellOrigin(c grid.Coord, cellSize int) (x, y int) {
	return c.Col * cellSize, c.Row * cellSize
}
