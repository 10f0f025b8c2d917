// pkg/render/text.go
package render

import (
	"strings"

	"go-astar-visualizer/pkg/grid"
)

// Glyph is the one-character form of a cell state used by ASCII dumps.
func Glyph(s grid.State) byte {
	switch s {
	case grid.Barrier:
		return '#'
	case grid.Start:
		return 'S'
	case grid.Goal:
		return 'G'
	case grid.Open:
		return 'o'
	case grid.Closed:
		return 'x'
	case grid.Path:
		return '*'
	}
	return '.'
}

// Rows renders g one string per row.
func Rows(g *grid.Grid) []string {
	n := g.Dimension()
	rows := make([]string, n)
	buf := make([]byte, n)
	for r := range rows {
		for c := 0; c < n; c++ {
			buf[c] = Glyph(g.CellAt(r, c).State())
		}
		rows[r] = string(buf)
	}
	return rows
}

// ASCII renders g as newline-terminated rows.
func ASCII(g *grid.Grid) string {
	var b strings.Builder
	for _, row := range Rows(g) {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	return b.String()
}

// Legend explains the glyphs printed by ASCII.
const Legend = ". empty  # barrier  S start  G goal  o open  x closed  * path"
