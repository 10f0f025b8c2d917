// internal/event/types.go
package event

const (
	StartPlaced    EventType = "StartPlaced" // старт поставлен
	GoalPlaced     EventType = "GoalPlaced"  // цель поставлена
	BarrierPlaced  EventType = "BarrierPlaced"
	CellReset      EventType = "CellReset" // правый клик
	GridCleared    EventType = "GridCleared"
	GridGenerated  EventType = "GridGenerated"
	SearchStarted  EventType = "SearchStarted"
	SearchFinished EventType = "SearchFinished" // путь найден или фронт исчерпан
	SearchAborted  EventType = "SearchAborted"
)

// AllTypes lists every event the board dispatches.
var AllTypes = []EventType{
	StartPlaced,
	GoalPlaced,
	BarrierPlaced,
	CellReset,
	GridCleared,
	GridGenerated,
	SearchStarted,
	SearchFinished,
	SearchAborted,
}
