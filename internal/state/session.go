// internal/state/session.go
package state

import (
	"fmt"
	"image/color"

	"go-astar-visualizer/internal/app"
	"go-astar-visualizer/internal/config"
	"go-astar-visualizer/internal/utils"
	"go-astar-visualizer/internal/view"
	"go-astar-visualizer/pkg/grid"
	"go-astar-visualizer/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// Session — общее для всех состояний: доска, рендерер, кнопки и строка статуса.
type Session struct {
	Board    *app.Board
	Renderer *view.GridRenderer
	Buttons  []*view.Button

	status    string
	statusErr bool
	quit      bool
}

func NewSession(board *app.Board) *Session {
	s := board.Settings()
	return &Session{
		Board:    board,
		Renderer: view.NewGridRenderer(render.DefaultPalette(), s.CellSize()),
		Buttons:  view.ButtonBar(s.WindowSize, s.WindowSize),
		status:   "left click: start, goal, barriers; right click: reset",
	}
}

// ScreenSize is the grid area plus the button bar.
func (s *Session) ScreenSize() (int, int) {
	w := s.Board.Settings().WindowSize
	return w, w + config.ButtonBarHeight
}

func (s *Session) Quit() bool { return s.quit }

func (s *Session) SetStatus(msg string) {
	s.status, s.statusErr = msg, false
}

func (s *Session) SetError(err error) {
	s.status, s.statusErr = err.Error(), true
}

// Report sets the status from a command outcome.
func (s *Session) Report(ok string, err error) {
	switch {
	case err != nil:
		s.SetError(err)
	case ok != "":
		s.SetStatus(ok)
	}
}

// CoordAt maps a cursor position to a cell, ok is false outside the grid.
func (s *Session) CoordAt(x, y int) (grid.Coord, bool) {
	return utils.CanvasCoord(x, y, s.Renderer.CellSize(), s.Board.Grid)
}

// ButtonAt returns the button under the cursor, if any.
func (s *Session) ButtonAt(x, y int) *view.Button {
	for _, b := range s.Buttons {
		if b.Contains(x, y) {
			return b
		}
	}
	return nil
}

// Draw paints the grid, the button bar and the status line.
func (s *Session) Draw(screen *ebiten.Image, searching bool) {
	screen.Fill(config.BackgroundColor)
	s.Renderer.Draw(screen, s.Board.Grid)

	cx, cy := ebiten.CursorPosition()
	for _, b := range s.Buttons {
		b.Draw(screen, cx, cy, searching)
	}

	var clr color.Color = config.StatusTextColor
	if s.statusErr {
		clr = config.GoalColor
	}
	w := s.Board.Settings().WindowSize
	view.DrawText(screen, s.status, 8, w+config.TextOffsetY, clr, false)
}

func resultStatus(found bool, cost float64, expanded int) string {
	if found {
		return fmt.Sprintf("path found: cost %g, %d expanded", cost, expanded)
	}
	return fmt.Sprintf("no path, %d expanded", expanded)
}
