// internal/state/edit_state.go
package state

import (
	"go-astar-visualizer/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*EditState)(nil)

// EditState — редактирование поля мышью между запусками поиска.
type EditState struct {
	sm      *StateMachine
	session *Session
}

func NewEditState(sm *StateMachine, session *Session) *EditState {
	return &EditState{sm: sm, session: session}
}

func (e *EditState) Enter() {}
func (e *EditState) Exit()  {}

func (e *EditState) Update(deltaTime float64) {
	s := e.session
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.quit = true
		return
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		e.sm.SetState(NewSearchState(e.sm, s))
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		e.do(app.ActionClear)
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		e.do(app.ActionGenerate)
		return
	}

	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if b := s.ButtonAt(x, y); b != nil {
			e.do(b.Action)
			return
		}
	}
	// Зажатая кнопка мыши рисует, как в оригинальном цикле событий.
	c, ok := s.CoordAt(x, y)
	if !ok {
		return
	}
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		s.Report("", s.Board.Primary(c))
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		s.Report("", s.Board.ResetCell(c))
	}
}

func (e *EditState) do(action app.Action) {
	if action == app.ActionSearch {
		e.sm.SetState(NewSearchState(e.sm, e.session))
		return
	}
	e.session.Report(e.session.Board.Apply(action))
}

func (e *EditState) Draw(screen *ebiten.Image) {
	e.session.Draw(screen, false)
}
