package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/exhibit/core"
	"github.com/katalvlaran/exhibit/item"
)

// ShortestPath returns the minimum-weight path from startID to endID,
// both endpoints included.
//
// Returns an empty (nil) path and a nil error when either ID is unknown or
// endID is unreachable. When startID == endID and the vertex exists, the path
// is that single item.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. No edge may have a negative weight (ErrNegativeWeight).
//
// Complexity: see package documentation.
func ShortestPath(g *core.Graph, startID, endID string) ([]item.Item, error) {
	path, _, err := ShortestPathCost(g, startID, endID)

	return path, err
}

// ShortestPathCost is ShortestPath that also reports the path's total weight.
// The cost is 0 when the path is empty.
func ShortestPathCost(g *core.Graph, startID, endID string) ([]item.Item, float64, error) {
	// 1) Validate graph
	if g == nil {
		return nil, 0, ErrNilGraph
	}

	// 2) Pre-scan for negative weights; fail fast
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, 0, fmt.Errorf("%w: edge %s—%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 3) Resolve endpoints; unknown IDs are "nothing found"
	if !g.HasVertex(startID) || !g.HasVertex(endID) {
		return nil, 0, nil
	}

	r := &runner{
		g:         g,
		target:    endID,
		finalized: make(map[string]bool, g.VertexCount()),
	}

	return r.run(startID)
}

// runner holds the mutable state of one search.
type runner struct {
	g         *core.Graph
	target    string
	finalized map[string]bool
	pq        frontier
}

// run seeds the frontier with (start, 0, []) and pops until the target is
// reached or the frontier is exhausted.
func (r *runner) run(startID string) ([]item.Item, float64, error) {
	heap.Init(&r.pq)
	heap.Push(&r.pq, &state{id: startID, cost: 0})

	for r.pq.Len() > 0 {
		s := heap.Pop(&r.pq).(*state)

		it, _ := r.g.Item(s.id)
		if s.id == r.target {
			return append(s.path, it), s.cost, nil
		}
		if r.finalized[s.id] {
			continue // stale entry, reached earlier at lower or equal cost
		}
		r.finalized[s.id] = true

		route := append(s.path, it)
		if err := r.expand(s.id, s.cost, route); err != nil {
			return nil, 0, err
		}
	}

	return nil, 0, nil
}

// expand pushes one state per not-yet-finalized neighbor of u. Every pushed
// state receives its own copy of route.
func (r *runner) expand(u string, cost float64, route []item.Item) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}
	for _, n := range neighbors {
		if r.finalized[n.Item.ID] {
			continue
		}
		carried := make([]item.Item, len(route), len(route)+1)
		copy(carried, route)
		heap.Push(&r.pq, &state{id: n.Item.ID, cost: cost + n.Weight, path: carried})
	}

	return nil
}
