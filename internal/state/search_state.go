// internal/state/search_state.go
package state

import (
	"context"
	"fmt"

	"go-astar-visualizer/pkg/astar"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*SearchState)(nil)

// SearchState шагает движок по StepsPerFrame шагов за кадр; каждый кадр
// служит перерисовкой. Escape прерывает поиск.
type SearchState struct {
	sm      *StateMachine
	session *Session
	engine  *astar.Engine
}

func NewSearchState(sm *StateMachine, session *Session) *SearchState {
	return &SearchState{sm: sm, session: session}
}

func (st *SearchState) Enter() {
	e, err := st.session.Board.Begin()
	if err != nil {
		st.session.SetError(err)
		return
	}
	st.engine = e
	st.session.SetStatus("searching...")
}

func (st *SearchState) Exit() {}

func (st *SearchState) Update(deltaTime float64) {
	s := st.session
	if st.engine == nil {
		st.sm.SetState(NewEditState(st.sm, s))
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		_, err := s.Board.Finish(fmt.Errorf("%w: %w", astar.ErrAborted, context.Canceled))
		s.SetError(err)
		st.sm.SetState(NewEditState(st.sm, s))
		return
	}

	for i := 0; i < s.Board.Settings().StepsPerFrame; i++ {
		if st.engine.Step() != astar.Running {
			break
		}
	}
	if st.engine.Status() == astar.Running {
		return
	}

	res, err := s.Board.Finish(nil)
	if err != nil {
		s.SetError(err)
	} else {
		s.SetStatus(resultStatus(res.Found, res.Cost, res.Expanded))
	}
	st.sm.SetState(NewEditState(st.sm, s))
}

func (st *SearchState) Draw(screen *ebiten.Image) {
	st.session.Draw(screen, true)
}
