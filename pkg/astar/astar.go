// Package astar implements the bounded, cached A* pathfinder used by the
// post-placement "no dead ends" check: a 4-connected shortest path over a
// grid classified Clear/Wall/Target/NoInfo, with a Manhattan-distance
// heuristic (admissible on this grid) and deterministic h-ordered
// tie-breaking. Grounded on the teacher's
// pkg/validator/astar.go container/heap priority queue, adapted from a
// mask-state search to a genuine grid search.
package astar

import (
	"container/heap"
	"math"

	"github.com/weftloop/conduit-solver/pkg/geom"
)

// ClassValue is one cell's pathfinding classification.
type ClassValue int

const (
	// NoInfo means unknown; FindPath resolves it on demand via Resolver
	// and caches the result back into the Classification matrix.
	NoInfo ClassValue = iota
	// Clear cells are traversable.
	Clear
	// Wall cells are not traversable (the square holds a normal cell).
	Wall
	// Target cells are traversable and terminate the search when reached.
	Target
)

// Classification is the caller-owned 8x4 matrix of cell classifications.
// FindPath mutates it in place, caching resolved NoInfo cells.
type Classification [geom.Width][geom.Height]ClassValue

// Resolver classifies a cell the caller has not already classified. It is
// consulted lazily, only for cells FindPath actually visits.
type Resolver func(pos geom.Position) ClassValue

// arenaSize is the fixed node-pool capacity from spec.md §5: 10*W*H. A*
// with an admissible heuristic and g-score-gated re-expansion cannot push
// more than a small constant multiple of the grid's cells, so this bound
// is invariant-checked by construction, not tuned.
const arenaSize = 10 * geom.Width * geom.Height

type pqItem struct {
	pos   geom.Position
	g, h  int
	index int
}

type priorityQueue []*pqItem

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	fi, fj := pq[i].g+pq[i].h, pq[j].g+pq[j].h
	if fi != fj {
		return fi < fj
	}
	return pq[i].h < pq[j].h // deterministic tie-break: smallest h wins
}
func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}
func (pq *priorityQueue) Push(x any) {
	item := x.(*pqItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}
func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}

type arena struct {
	nodes [arenaSize]pqItem
	n     int
}

func (a *arena) alloc() *pqItem {
	if a.n >= arenaSize {
		return nil
	}
	p := &a.nodes[a.n]
	a.n++
	return p
}

func manhattan(a, b geom.Position) int {
	d := a.I - b.I
	if d < 0 {
		d = -d
	}
	e := a.J - b.J
	if e < 0 {
		e = -e
	}
	return d + e
}

func classify(pos geom.Position, cls *Classification, resolve Resolver) ClassValue {
	v := cls[pos.I][pos.J]
	if v == NoInfo {
		v = resolve(pos)
		cls[pos.I][pos.J] = v
	}
	return v
}

// FindPath searches from start for any cell classified Target, over cells
// classified Clear (NoInfo cells are resolved on demand via resolve and
// cached back into cls). Returns the terminating target cell, or false if
// the open set drains without reaching one.
func FindPath(start geom.Position, cls *Classification, resolve Resolver) (geom.Position, bool) {
	var targets []geom.Position
	for i := 0; i < geom.Width; i++ {
		for j := 0; j < geom.Height; j++ {
			if cls[i][j] == Target {
				targets = append(targets, geom.Position{I: i, J: j})
			}
		}
	}
	if len(targets) == 0 {
		return geom.Position{}, false
	}
	heuristic := func(p geom.Position) int {
		best := math.MaxInt32
		for _, t := range targets {
			if d := manhattan(p, t); d < best {
				best = d
			}
		}
		return best
	}

	var bestG [geom.Width][geom.Height]int
	for i := range bestG {
		for j := range bestG[i] {
			bestG[i][j] = math.MaxInt32
		}
	}

	ar := &arena{}
	pq := &priorityQueue{}
	heap.Init(pq)

	startItem := ar.alloc()
	if startItem == nil {
		return geom.Position{}, false
	}
	*startItem = pqItem{pos: start, g: 0, h: heuristic(start)}
	bestG[start.I][start.J] = 0
	heap.Push(pq, startItem)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem)
		pos := item.pos
		if item.g > bestG[pos.I][pos.J] {
			continue // stale: a cheaper path to pos was already found
		}

		if classify(pos, cls, resolve) == Target {
			return pos, true
		}

		for _, d := range geom.AllDirections {
			npos := pos.Add(d.Delta())
			if !npos.InBounds() {
				continue
			}
			if classify(npos, cls, resolve) == Wall {
				continue
			}
			ng := item.g + 1
			if ng >= bestG[npos.I][npos.J] {
				continue
			}
			bestG[npos.I][npos.J] = ng
			nextItem := ar.alloc()
			if nextItem == nil {
				continue // arena exhausted: treat as unreachable via this node
			}
			*nextItem = pqItem{pos: npos, g: ng, h: heuristic(npos)}
			heap.Push(pq, nextItem)
		}
	}

	return geom.Position{}, false
}
