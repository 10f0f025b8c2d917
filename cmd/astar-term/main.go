// cmd/astar-term/main.go
package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"

	"go-astar-visualizer/internal/app"
	"go-astar-visualizer/internal/config"
	"go-astar-visualizer/internal/event"
	"go-astar-visualizer/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	// Экран занят tcell, поэтому лог пишется только в файл ASTAR_LOG_FILE.
	var logOut io.Writer = io.Discard
	if path := os.Getenv("ASTAR_LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logOut = f
	}
	logger := settings.Logger(logOut)
	// спаны идут туда же, куда и лог
	shutdown, err := settings.Tracing(logOut)
	if err != nil {
		log.Fatal(err)
	}
	defer shutdown(context.Background())

	dispatcher := event.NewDispatcher()
	app.NewLogListener(logger).Attach(dispatcher)
	board, err := app.NewBoard(settings, dispatcher, logger)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = term.New(screen, board, logger).Run(ctx)
	screen.Fini()
	if err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
}
