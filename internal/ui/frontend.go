// internal/ui/frontend.go
package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go-astar-visualizer/internal/app"
	"go-astar-visualizer/internal/config"
	"go-astar-visualizer/internal/utils"
	"go-astar-visualizer/pkg/astar"
	"go-astar-visualizer/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frontend is the raylib window. Unlike the ebiten one it runs the search
// synchronously: the redraw hook renders a frame after every step.
type Frontend struct {
	board   *app.Board
	palette render.Palette
	buttons []*Button
	font    rl.Font
	logger  *slog.Logger

	status    string
	statusErr bool
	quit      bool
}

// NewFrontend must be called after rl.InitWindow.
func NewFrontend(board *app.Board, logger *slog.Logger) *Frontend {
	s := board.Settings()
	font := rl.GetFontDefault()
	return &Frontend{
		board:   board,
		palette: render.DefaultPalette(),
		buttons: ButtonBar(s.WindowSize, s.WindowSize, font),
		font:    font,
		logger:  logger.With("component", "raylib"),
		status:  "left click: start, goal, barriers; right click: reset",
	}
}

// Run processes frames until the window closes or ctx is done.
func (f *Frontend) Run(ctx context.Context) {
	for !f.quit && !rl.WindowShouldClose() && ctx.Err() == nil {
		f.update(ctx)
		f.draw()
	}
}

func (f *Frontend) update(ctx context.Context) {
	mouse := rl.GetMousePosition()
	for _, b := range f.buttons {
		if b.IsClicked(mouse) {
			f.do(ctx, b.Action)
			return
		}
	}

	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		f.do(ctx, app.ActionSearch)
		return
	case rl.IsKeyPressed(rl.KeyC):
		f.do(ctx, app.ActionClear)
		return
	case rl.IsKeyPressed(rl.KeyG):
		f.do(ctx, app.ActionGenerate)
		return
	case rl.IsKeyPressed(rl.KeyQ), rl.IsKeyPressed(rl.KeyEscape):
		f.quit = true
		return
	}

	c, ok := utils.CanvasCoord(int(mouse.X), int(mouse.Y), f.board.Settings().CellSize(), f.board.Grid)
	if !ok {
		return
	}
	switch {
	case rl.IsMouseButtonDown(rl.MouseLeftButton):
		f.report("", f.board.Primary(c))
	case rl.IsMouseButtonDown(rl.MouseRightButton):
		f.report("", f.board.ResetCell(c))
	}
}

func (f *Frontend) do(ctx context.Context, a app.Action) {
	if a != app.ActionSearch {
		f.report(f.board.Apply(a))
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	f.status, f.statusErr = "searching...", false
	res, err := f.board.Search(ctx, func() {
		f.draw()
		// опрос выхода один раз за шаг
		if rl.WindowShouldClose() {
			f.quit = true
			cancel()
		}
		if rl.IsKeyPressed(rl.KeyEscape) {
			cancel()
		}
	})
	switch {
	case errors.Is(err, astar.ErrAborted):
		f.report("", errors.New("search aborted"))
	case err != nil:
		f.report("", err)
	case res.Found:
		f.report(fmt.Sprintf("path found: cost %g, %d expanded", res.Cost, res.Expanded), nil)
	default:
		f.report(fmt.Sprintf("no path, %d expanded", res.Expanded), nil)
	}
}

func (f *Frontend) report(ok string, err error) {
	switch {
	case err != nil:
		f.logger.Debug("command refused", "error", err)
		f.status, f.statusErr = err.Error(), true
	case ok != "":
		f.status, f.statusErr = ok, false
	}
}

func (f *Frontend) draw() {
	s := f.board.Settings()
	rl.BeginDrawing()
	rl.ClearBackground(colorToRL(config.BackgroundColor))

	DrawGrid(f.board.Grid, s.CellSize(), f.palette)
	mouse := rl.GetMousePosition()
	for _, b := range f.buttons {
		b.Draw(mouse, f.board.Searching())
	}

	clr := config.StatusTextColor
	if f.statusErr {
		clr = config.GoalColor
	}
	rl.DrawTextEx(f.font, f.status, rl.NewVector2(8, float32(s.WindowSize+config.TextOffsetY)), 16, 1, colorToRL(clr))
	rl.EndDrawing()
}
