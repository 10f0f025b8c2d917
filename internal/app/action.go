// internal/app/action.go
package app

import "fmt"

// Action is a button-bar command shared by the GUI frontends.
type Action int

const (
	ActionSearch Action = iota
	ActionGenerate
	ActionClear
)

// Actions lists the bar in display order.
var Actions = []Action{ActionSearch, ActionGenerate, ActionClear}

func (a Action) String() string {
	switch a {
	case ActionSearch:
		return "Search"
	case ActionGenerate:
		return "Generate"
	case ActionClear:
		return "Clear"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Apply runs the editing actions and returns a status message. Search is
// driven by the frontend and is refused here.
func (b *Board) Apply(a Action) (string, error) {
	switch a {
	case ActionGenerate:
		n, err := b.Generate(b.settings.BarrierDensity)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("generated %d barriers", n), nil
	case ActionClear:
		if err := b.Clear(); err != nil {
			return "", err
		}
		return "cleared", nil
	}
	return "", fmt.Errorf("action %s is not an editing action", a)
}
