// cmd/astar-rl/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"go-astar-visualizer/internal/app"
	"go-astar-visualizer/internal/config"
	"go-astar-visualizer/internal/event"
	"go-astar-visualizer/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

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

	rl.InitWindow(int32(settings.WindowSize), int32(settings.WindowSize+config.ButtonBarHeight), "A* Path Finding Algorithm")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(rl.KeyNull) // Escape прерывает поиск, а не закрывает окно

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ui.NewFrontend(board, logger).Run(ctx)
}
