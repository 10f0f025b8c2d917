// pkg/render/image.go
package render

import (
	"image"
	"io"

	"go-astar-visualizer/pkg/grid"

	"github.com/fogleman/gg"
)

// Snapshot draws g into a fresh gg context, cellSize pixels per cell, with
// grid lines on top of the fills.
func Snapshot(g *grid.Grid, cellSize int, p Palette) *gg.Context {
	n := g.Dimension()
	side := n * cellSize
	dc := gg.NewContext(side, side)
	dc.SetColor(p.Background)
	dc.Clear()

	size := float64(cellSize)
	for cell := range g.All() {
		dc.SetColor(p.Color(cell.State()))
		dc.DrawRectangle(float64(cell.Column())*size, float64(cell.Row())*size, size, size)
		dc.Fill()
	}

	if p.GridLineWidth > 0 {
		dc.SetColor(p.GridLine)
		dc.SetLineWidth(float64(p.GridLineWidth))
		for i := 0; i <= n; i++ {
			at := float64(i) * size
			dc.DrawLine(0, at, float64(side), at)
			dc.DrawLine(at, 0, at, float64(side))
		}
		dc.Stroke()
	}
	return dc
}

// Image is Snapshot as a plain image.
func Image(g *grid.Grid, cellSize int, p Palette) image.Image {
	return Snapshot(g, cellSize, p).Image()
}

// EncodePNG writes a PNG snapshot of g to w.
func EncodePNG(w io.Writer, g *grid.Grid, cellSize int, p Palette) error {
	return Snapshot(g, cellSize, p).EncodePNG(w)
}

// SavePNG writes a PNG snapshot of g to path.
func SavePNG(path string, g *grid.Grid, cellSize int, p Palette) error {
	return Snapshot(g, cellSize, p).SavePNG(path)
}
