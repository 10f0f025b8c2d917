// internal/view/grid_renderer.go
package view

import (
	"go-astar-visualizer/internal/utils"
	"go-astar-visualizer/pkg/grid"
	"go-astar-visualizer/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridRenderer рисует поле: заливка клеток по состоянию, поверх серые линии.
type GridRenderer struct {
	palette  render.Palette
	cellSize int
}

func NewGridRenderer(palette render.Palette, cellSize int) *GridRenderer {
	return &GridRenderer{palette: palette, cellSize: cellSize}
}

func (r *GridRenderer) CellSize() int { return r.cellSize }

// Draw paints g in the top-left corner of screen.
func (r *GridRenderer) Draw(screen *ebiten.Image, g *grid.Grid) {
	size := float32(r.cellSize)
	for cell := range g.All() {
		x, y := utils.CellOrigin(cell.Coord(), r.cellSize)
		vector.DrawFilledRect(screen, float32(x), float32(y), size, size, r.palette.Color(cell.State()), false)
	}
	r.drawLines(screen, g.Dimension())
}

// drawLines рисует сетку так же, как draw_grid: n+1 линий в каждую сторону.
func (r *GridRenderer) drawLines(screen *ebiten.Image, n int) {
	if r.palette.GridLineWidth <= 0 {
		return
	}
	side := float32(n * r.cellSize)
	for i := 0; i <= n; i++ {
		at := float32(i * r.cellSize)
		vector.StrokeLine(screen, 0, at, side, at, r.palette.GridLineWidth, r.palette.GridLine, false)
		vector.StrokeLine(screen, at, 0, at, side, r.palette.GridLineWidth, r.palette.GridLine, false)
	}
}
