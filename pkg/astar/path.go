// pkg/astar/path.go
package astar

import "go-astar-visualizer/pkg/grid"

// Reconstruct marks goal as reached, then walks the predecessor chain back to
// the start, painting each visited cell Path and calling redraw after each
// mark. The start cell ends the walk because it has no predecessor; it is
// painted too and the caller restores it.
//
// The returned path runs from the first cell after start through goal.
func Reconstruct(predecessor map[*grid.Cell]*grid.Cell, goal *grid.Cell, redraw func()) []*grid.Cell {
	goal.SetState(grid.Goal)

	path := []*grid.Cell{goal}
	current := goal
	for {
		prev, ok := predecessor[current]
		if !ok {
			break
		}
		current = prev
		current.SetState(grid.Path)
		if redraw != nil {
			redraw()
		}
		path = append(path, current)
	}

	// drop the start cell and reverse into start-to-goal order
	path = path[:len(path)-1]
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
