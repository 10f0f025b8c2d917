// internal/app/listener.go
package app

import (
	"log/slog"

	"go-astar-visualizer/internal/event"
)

// LogListener пишет события доски в лог.
type LogListener struct {
	logger *slog.Logger
}

func NewLogListener(logger *slog.Logger) *LogListener {
	return &LogListener{logger: logger.With("component", "events")}
}

// Attach subscribes l to every board event on d.
func (l *LogListener) Attach(d *event.Dispatcher) {
	d.SubscribeAll(l, event.AllTypes...)
}

// OnEvent реализует интерфейс event.Listener.
func (l *LogListener) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.CellData:
		l.logger.Debug(string(e.Type), "cell", data.Coord)
	case event.GenerateData:
		l.logger.Info(string(e.Type), "seed", data.Seed, "density", data.Density, "barriers", data.Barriers)
	case event.SearchData:
		switch e.Type {
		case event.SearchStarted:
			l.logger.Info(string(e.Type), "run_id", data.RunID, "start", data.Start, "goal", data.Goal)
		case event.SearchAborted:
			l.logger.Warn(string(e.Type), "run_id", data.RunID, "expanded", data.Expanded, "error", data.Err)
		default:
			l.logger.Info(string(e.Type), "run_id", data.RunID, "found", data.Found,
				"cost", data.Cost, "path_length", data.PathLength, "expanded", data.Expanded)
		}
	default:
		l.logger.Info(string(e.Type))
	}
}
