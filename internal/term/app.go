// internal/term/app.go
package term

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"go-astar-visualizer/internal/app"
	"go-astar-visualizer/internal/config"
	"go-astar-visualizer/pkg/astar"
	"go-astar-visualizer/pkg/grid"
	"go-astar-visualizer/pkg/render"

	"github.com/gdamore/tcell/v2"
)

const helpLine = "click: start/goal/barrier  right: reset  space: search  g: generate  c: clear  q: quit"

var (
	styleDefault = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleStatus  = styleDefault.Foreground(tcell.ColorAqua)
	styleError   = styleDefault.Foreground(tcell.ColorRed)
	styleHelp    = styleDefault.Foreground(tcell.ColorGray)
)

// App is the terminal frontend: one cell is config.TermCellWidth columns
// wide and one row high, status and help lines sit under the grid.
type App struct {
	screen  tcell.Screen
	board   *app.Board
	palette render.Palette
	logger  *slog.Logger

	status    string
	statusErr bool
	quit      bool
}

func New(screen tcell.Screen, board *app.Board, logger *slog.Logger) *App {
	return &App{
		screen:  screen,
		board:   board,
		palette: render.DefaultPalette(),
		logger:  logger.With("component", "term"),
		status:  "ready",
	}
}

// Run draws and handles events until the user quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	a.screen.EnableMouse()
	a.screen.SetStyle(styleDefault)
	a.screen.Clear()
	for !a.quit {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.Draw()
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil // screen finalized
		}
		a.HandleEvent(ctx, ev)
	}
	return nil
}

// Quit reports whether the user asked to leave.
func (a *App) Quit() bool { return a.quit }

// HandleEvent applies one tcell event to the board.
func (a *App) HandleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		a.handleKey(ctx, ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func (a *App) handleKey(ctx context.Context, ev *tcell.EventKey) {
	if isQuitKey(ev) {
		a.quit = true
		return
	}
	if ev.Key() != tcell.KeyRune {
		return
	}
	switch ev.Rune() {
	case ' ':
		a.search(ctx)
	case 'c', 'C':
		a.report(a.board.Apply(app.ActionClear))
	case 'g', 'G':
		a.report(a.board.Apply(app.ActionGenerate))
	}
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	c, ok := a.coordAt(x, y)
	if !ok {
		return
	}
	switch ev.Buttons() {
	case tcell.ButtonPrimary:
		a.report("", a.board.Primary(c))
	case tcell.ButtonSecondary:
		a.report("", a.board.ResetCell(c))
	}
}

func (a *App) coordAt(x, y int) (grid.Coord, bool) {
	if x < 0 || y < 0 {
		return grid.Coord{}, false
	}
	c := grid.Coord{Row: y, Col: x / config.TermCellWidth}
	return c, a.board.Grid.Contains(c)
}

// search runs the whole search inside this call. The redraw hook repaints
// and drains pending input so a quit key cancels the run between steps.
func (a *App) search(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.setStatus("searching...", false)
	res, err := a.board.Search(ctx, func() {
		a.Draw()
		for a.screen.HasPendingEvent() {
			if key, ok := a.screen.PollEvent().(*tcell.EventKey); ok && isQuitKey(key) {
				a.quit = a.quit || key.Key() == tcell.KeyCtrlC
				cancel()
			}
		}
	})
	switch {
	case errors.Is(err, astar.ErrAborted):
		a.setStatus("search aborted", true)
	case err != nil:
		a.report("", err)
	case res.Found:
		a.setStatus(fmt.Sprintf("path found: cost %g, %d expanded", res.Cost, res.Expanded), false)
	default:
		a.setStatus(fmt.Sprintf("no path, %d expanded", res.Expanded), false)
	}
}

func (a *App) report(ok string, err error) {
	if err != nil {
		a.logger.Debug("command refused", "error", err)
		a.setStatus(err.Error(), true)
		return
	}
	if ok != "" {
		a.setStatus(ok, false)
	}
}

func (a *App) setStatus(msg string, isErr bool) {
	a.status, a.statusErr = msg, isErr
}

// Status returns the message shown under the grid.
func (a *App) Status() string { return a.status }

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Draw paints the grid, the status line and the help line.
func (a *App) Draw() {
	g := a.board.Grid
	for cell := range g.All() {
		style := styleDefault.Background(tcellColor(a.palette.Color(cell.State())))
		x := cell.Column() * config.TermCellWidth
		for i := 0; i < config.TermCellWidth; i++ {
			a.screen.SetContent(x+i, cell.Row(), ' ', nil, style)
		}
	}

	width := g.Dimension() * config.TermCellWidth
	style := styleStatus
	if a.statusErr {
		style = styleError
	}
	a.drawLine(g.Dimension(), width, a.status, style)
	a.drawLine(g.Dimension()+1, width, helpLine, styleHelp)
	a.screen.Show()
}

func (a *App) drawLine(y, width int, s string, style tcell.Style) {
	sw, _ := a.screen.Size()
	width = max(width, sw)
	x := 0
	for _, r := range s {
		if x >= width {
			break
		}
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < width; x++ {
		a.screen.SetContent(x, y, ' ', nil, styleDefault)
	}
}
