package term

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"go-astar-visualizer/internal/app"
	"go-astar-visualizer/internal/config"
	"go-astar-visualizer/pkg/grid"
	"go-astar-visualizer/pkg/render"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T, size int) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(size*config.TermCellWidth+len(helpLine), size+2)

	s := config.Defaults()
	s.GridSize = size
	s.Seed = 3
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	board, err := app.NewBoard(s, nil, logger)
	require.NoError(t, err)
	return New(screen, board, logger), screen
}

func click(a *App, row, col int, button tcell.ButtonMask) {
	a.HandleEvent(context.Background(), tcell.NewEventMouse(col*config.TermCellWidth, row, button, tcell.ModNone))
}

func key(a *App, r rune) {
	a.HandleEvent(context.Background(), tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func background(t *testing.T, screen tcell.SimulationScreen, row, col int) tcell.Color {
	t.Helper()
	_, _, style, _ := screen.GetContent(col*config.TermCellWidth, row)
	_, bg, _ := style.Decompose()
	return bg
}

func TestMouseEditsBoard(t *testing.T) {
	a, screen := newApp(t, 5)
	click(a, 0, 0, tcell.ButtonPrimary)
	click(a, 4, 4, tcell.ButtonPrimary)
	click(a, 2, 2, tcell.ButtonPrimary)
	click(a, 2, 2, tcell.ButtonSecondary)
	click(a, 3, 1, tcell.ButtonPrimary)
	click(a, 9, 9, tcell.ButtonPrimary) // off grid

	g := a.board.Grid
	assert.Equal(t, grid.Start, g.CellAt(0, 0).State())
	assert.Equal(t, grid.Goal, g.CellAt(4, 4).State())
	assert.Equal(t, grid.Empty, g.CellAt(2, 2).State())
	assert.Equal(t, grid.Barrier, g.CellAt(3, 1).State())

	a.Draw()
	p := render.DefaultPalette()
	assert.Equal(t, tcellColor(p.Start), background(t, screen, 0, 0))
	assert.Equal(t, tcellColor(p.Barrier), background(t, screen, 3, 1))
}

func TestSpaceRunsSearch(t *testing.T) {
	a, screen := newApp(t, 5)
	click(a, 0, 0, tcell.ButtonPrimary)
	click(a, 0, 4, tcell.ButtonPrimary)

	key(a, ' ')
	res, ok := a.board.LastResult()
	require.True(t, ok)
	assert.True(t, res.Found)
	assert.Equal(t, "path found: cost 4, 4 expanded", a.Status())
	assert.Equal(t, tcellColor(render.DefaultPalette().Path), background(t, screen, 0, 2))
	assert.False(t, a.Quit())
}

func TestSearchWithoutEndpointsReportsError(t *testing.T) {
	a, _ := newApp(t, 3)
	key(a, ' ')
	assert.Contains(t, a.Status(), "start cell not set")
	assert.False(t, a.board.Searching())
}

func TestQuitKeyAbortsSearch(t *testing.T) {
	a, screen := newApp(t, 10)
	click(a, 0, 0, tcell.ButtonPrimary)
	click(a, 9, 9, tcell.ButtonPrimary)

	require.NoError(t, screen.PostEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	key(a, ' ')

	assert.Equal(t, "search aborted", a.Status())
	assert.False(t, a.board.Searching())
	assert.False(t, a.Quit(), "escape only stops the search")
	_, ok := a.board.LastResult()
	assert.False(t, ok)
}

func TestGenerateAndClearKeys(t *testing.T) {
	a, _ := newApp(t, 8)
	key(a, 'g')
	assert.Positive(t, a.board.Grid.Count(grid.Barrier))
	assert.Contains(t, a.Status(), "generated")

	key(a, 'c')
	assert.Zero(t, a.board.Grid.Count(grid.Barrier))
	assert.Equal(t, "cleared", a.Status())
}

func TestQuitKeys(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	} {
		a, _ := newApp(t, 3)
		a.HandleEvent(context.Background(), ev)
		assert.True(t, a.Quit(), ev.Name())
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	a, screen := newApp(t, 4)
	screen.InjectMouse(0, 0, tcell.ButtonPrimary, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, grid.Start, a.board.Grid.CellAt(0, 0).State())
}
