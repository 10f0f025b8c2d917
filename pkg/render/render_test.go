package render

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"go-astar-visualizer/pkg/grid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *grid.Grid {
	g := grid.MustNew(3)
	g.SetStart(g.CellAt(0, 0))
	g.SetGoal(g.CellAt(2, 2))
	g.SetBarrier(g.CellAt(1, 1))
	g.CellAt(0, 1).SetState(grid.Path)
	g.CellAt(1, 0).SetState(grid.Open)
	g.CellAt(2, 0).SetState(grid.Closed)
	return g
}

func TestASCII(t *testing.T) {
	g := sample()
	assert.Equal(t, []string{"S*.", "o#.", "x.G"}, Rows(g))
	assert.Equal(t, "S*.\no#.\nx.G\n", ASCII(g))
}

func TestGlyphCoversStates(t *testing.T) {
	seen := map[byte]bool{}
	for s := grid.Empty; s <= grid.Path; s++ {
		seen[Glyph(s)] = true
		assert.Contains(t, Legend, string(Glyph(s)))
	}
	assert.Len(t, seen, 7)
}

func TestPaletteColor(t *testing.T) {
	p := DefaultPalette()
	assert.Equal(t, p.Barrier, p.Color(grid.Barrier))
	assert.Equal(t, p.Path, p.Color(grid.Path))
	assert.Equal(t, p.Empty, p.Color(grid.State(99)))
	assert.NotEqual(t, p.Open, p.Closed)
}

func TestDarkenColor(t *testing.T) {
	assert.Equal(t, color.RGBA{50, 25, 0, 200}, DarkenColor(color.RGBA{100, 50, 1, 200}))
}

func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func TestImageCellColors(t *testing.T) {
	g := sample()
	p := DefaultPalette()
	img := Image(g, 10, p)

	assert.Equal(t, 30, img.Bounds().Dx())
	assert.Equal(t, 30, img.Bounds().Dy())
	for cell := range g.All() {
		x, y := cell.Column()*10+5, cell.Row()*10+5
		assert.Equal(t, p.Color(cell.State()), rgba(img.At(x, y)), cell.String())
	}
}

func TestEncodePNG(t *testing.T) {
	g := sample()
	p := DefaultPalette()
	p.GridLineWidth = 0

	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, g, 4, p))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 12, img.Bounds().Dx())
	assert.Equal(t, p.Goal, rgba(img.At(10, 10)))

	path := filepath.Join(t.TempDir(), "grid.png")
	require.NoError(t, SavePNG(path, g, 4, p))
	assert.FileExists(t, path)
}
