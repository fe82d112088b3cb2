package searcher

import (
	"container/heap"
	"sort"

	"warsoracle/game"
	"warsoracle/meta"
)

// Reach maps every reachable cell to the movement budget left after the cheapest path to it.
type Reach map[game.Position]int

func (r Reach) Contains(p game.Position) bool {
	_, ok := r[p]
	return ok
}

// Positions returns the reachable cells in row-major order.
func (r Reach) Positions() []game.Position {
	out := make([]game.Position, 0, len(r))
	for p := range r {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Blocking is a set of cells a unit may neither enter nor pass through.
type Blocking map[game.Position]struct{}

func NewBlocking(positions ...game.Position) Blocking {
	b := make(Blocking, len(positions))
	for _, p := range positions {
		b[p] = struct{}{}
	}
	return b
}

func (b Blocking) Contains(p game.Position) bool {
	_, ok := b[p]
	return ok
}

// Reachable runs a uniform-cost search from start over the 4-connected grid. Entering a cell
// costs its terrain cost for class; blocked cells cost meta.IMPASSABLE_COST. A cell is
// reachable when the cheapest path to it costs at most budget. start is always reachable, even
// when it lies in blocking.
func Reachable(grid *game.Grid, start game.Position, budget int, class game.MoveClass, blocking Blocking) Reach {
	budget = max(budget, 0)
	spent := map[game.Position]int{start: 0}

	frontier := &frontier{{pos: start, cost: 0}}
	for frontier.Len() > 0 {
		cur := heap.Pop(frontier).(step)
		if cur.cost > spent[cur.pos] { // stale entry, a cheaper path was settled already
			continue
		}
		for _, next := range cur.pos.Neighbors() {
			if !grid.Contains(next) {
				continue
			}
			cost := class.Cost(grid.TerrainAt(next))
			if blocking.Contains(next) {
				cost = meta.IMPASSABLE_COST
			}
			total := cur.cost + cost
			if total > budget {
				continue
			}
			if prev, seen := spent[next]; seen && prev <= total {
				continue
			}
			spent[next] = total
			heap.Push(frontier, step{pos: next, cost: total})
		}
	}

	reach := make(Reach, len(spent))
	for p, cost := range spent {
		reach[p] = budget - cost
	}
	return reach
}

type step struct {
	pos  game.Position
	cost int
}

// frontier is a min-heap of steps by cost consumed
type frontier []step

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}
	return f[i].pos.Less(f[j].pos)
}
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any)   { *f = append(*f, x.(step)) }
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}
