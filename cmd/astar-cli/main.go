// cmd/astar-cli/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"go-astar-visualizer/internal/app"
	"go-astar-visualizer/internal/cli"
	"go-astar-visualizer/internal/config"
	"go-astar-visualizer/internal/event"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	opts, err := cli.Parse(os.Args[1:], settings, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	logger := opts.Settings.Logger(os.Stderr)
	shutdown, err := opts.Settings.Tracing(os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Error("trace shutdown", "error", err)
		}
	}()
	dispatcher := event.NewDispatcher()
	app.NewLogListener(logger).Attach(dispatcher)
	board, err := app.NewBoard(opts.Settings, dispatcher, logger)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := cli.Run(ctx, opts, os.Stdout, board); err != nil {
		logger.Error("run failed", "error", err)
		stop()
		_ = shutdown(context.Background())
		os.Exit(1)
	}
}
