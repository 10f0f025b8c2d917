// pkg/astar/frontier.go
package astar

import (
	"go-astar-visualizer/pkg/grid"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// entry is a frontier item. Ordering uses (f, seq) only; cells are never
// compared with each other.
type entry struct {
	f    float64
	seq  uint64
	cell *grid.Cell
}

func entryLess(a, b entry) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.seq < b.seq
}

// frontier is the open set: a (f, seq) min-heap plus a membership set kept in
// lockstep with it.
type frontier struct {
	items   *heap.Heap[entry]
	members mapset.Set[*grid.Cell]
	seq     uint64
}

func newFrontier(start *grid.Cell, f float64) *frontier {
	fr := &frontier{
		items:   heap.New[entry](entryLess),
		members: mapset.New[*grid.Cell](),
	}
	fr.items.Push(entry{f: f, seq: 0, cell: start})
	fr.members.Put(start)
	return fr
}

// push inserts cell with the next sequence number and records membership.
func (fr *frontier) push(f float64, cell *grid.Cell) {
	fr.requeue(f, cell)
	fr.members.Put(cell)
}

// requeue adds another entry for a cell that is already a member. Only used
// when stale entries are skipped at pop time.
func (fr *frontier) requeue(f float64, cell *grid.Cell) {
	fr.seq++
	fr.items.Push(entry{f: f, seq: fr.seq, cell: cell})
}

func (fr *frontier) pop() (entry, bool) {
	return fr.items.Pop()
}

func (fr *frontier) has(cell *grid.Cell) bool { return fr.members.Has(cell) }
func (fr *frontier) leave(cell *grid.Cell)    { fr.members.Remove(cell) }
func (fr *frontier) len() int                 { return fr.items.Size() }
