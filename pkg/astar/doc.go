// Package astar runs an incremental A* search over a grid.Grid.
//
// It exposes two entry points:
//
//   - Engine.Run: drive the search to completion, polling a context once per
//     expansion so the caller can quit mid-run.
//   - Engine.Step: advance one expansion at a time, for frame-driven UIs.
//
// Cells are painted Open, Closed and Path as the search progresses, and an
// optional redraw hook is called synchronously after every expansion and after
// every path cell is marked.
package astar
