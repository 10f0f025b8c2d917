// internal/ui/grid.go
package ui

import (
	"image/color"

	"go-astar-visualizer/internal/utils"
	"go-astar-visualizer/pkg/grid"
	"go-astar-visualizer/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func colorToRL(c color.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}

// DrawGrid рисует клетки и линии сетки; вызывать между BeginDrawing и EndDrawing.
func DrawGrid(g *grid.Grid, cellSize int, palette render.Palette) {
	size := int32(cellSize)
	for cell := range g.All() {
		x, y := utils.CellOrigin(cell.Coord(), cellSize)
		rl.DrawRectangle(int32(x), int32(y), size, size, colorToRL(palette.Color(cell.State())))
	}

	if palette.GridLineWidth <= 0 {
		return
	}
	line := colorToRL(palette.GridLine)
	side := float32(g.Dimension() * cellSize)
	for i := 0; i <= g.Dimension(); i++ {
		at := float32(i * cellSize)
		rl.DrawLineEx(rl.NewVector2(0, at), rl.NewVector2(side, at), palette.GridLineWidth, line)
		rl.DrawLineEx(rl.NewVector2(at, 0), rl.NewVector2(at, side), palette.GridLineWidth, line)
	}
}
