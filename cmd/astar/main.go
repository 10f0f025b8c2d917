// cmd/astar/main.go
package main

import (
	"log"
	"os"
	"time"

	"go-astar-visualizer/internal/app"
	"go-astar-visualizer/internal/config"
	"go-astar-visualizer/internal/event"
	"go-astar-visualizer/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

const maxDeltaTime = 0.06

type AppGame struct {
	stateMachine   *state.StateMachine
	session        *state.Session
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > maxDeltaTime {
		deltaTime = maxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.session.Quit() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.session.ScreenSize()
}

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := settings.Logger(os.Stderr)

	dispatcher := event.NewDispatcher()
	app.NewLogListener(logger).Attach(dispatcher)
	board, err := app.NewBoard(settings, dispatcher, logger)
	if err != nil {
		log.Fatal(err)
	}

	session := state.NewSession(board)
	sm := state.NewStateMachine()
	sm.SetState(state.NewEditState(sm, session))
	game := &AppGame{
		stateMachine:   sm,
		session:        session,
		lastUpdateTime: time.Now(),
	}

	w, h := session.ScreenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("A* Path Finding Algorithm")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
