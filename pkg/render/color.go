// pkg/render/color.go
package render

import (
	"image/color"

	"go-astar-visualizer/internal/config"
	"go-astar-visualizer/pkg/grid"
)

// Palette holds the fill color of every cell state plus the grid lines.
type Palette struct {
	Background    color.RGBA
	Empty         color.RGBA
	Barrier       color.RGBA
	Start         color.RGBA
	Goal          color.RGBA
	Open          color.RGBA
	Closed        color.RGBA
	Path          color.RGBA
	GridLine      color.RGBA
	GridLineWidth float32
}

// DefaultPalette returns the colors from config.
func DefaultPalette() Palette {
	return Palette{
		Background:    config.BackgroundColor,
		Empty:         config.EmptyColor,
		Barrier:       config.BarrierColor,
		Start:         config.StartColor,
		Goal:          config.GoalColor,
		Open:          config.OpenColor,
		Closed:        config.ClosedColor,
		Path:          config.PathColor,
		GridLine:      config.GridLineColor,
		GridLineWidth: config.GridLineWidth,
	}
}

// Color returns the fill for s. Unknown states fall back to Empty.
func (p Palette) Color(s grid.State) color.RGBA {
	switch s {
	case grid.Barrier:
		return p.Barrier
	case grid.Start:
		return p.Start
	case grid.Goal:
		return p.Goal
	case grid.Open:
		return p.Open
	case grid.Closed:
		return p.Closed
	case grid.Path:
		return p.Path
	}
	return p.Empty
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
