// File: methods_edges.go
// Role: Edge insertion & weight queries: AddEdge/Weight/HasEdge/Edges/EdgeCount/TotalWeight.
//
// Determinism:
//   - Edges() returns canonical (From<=To) edges sorted by (From, To).
//
// Concurrency:
//   - AddEdge writes both directions under one mu write lock.
package core

import (
	"sort"

	"github.com/katalvlaran/exhibit/item"
)

// AddEdge inserts the undirected edge (a,b) with weight w.
//
// Steps:
//  1. Validate both endpoints are valid items.
//  2. Register a and b as vertices if missing (first value stays canonical).
//  3. Write adjacency[a][b] = w and adjacency[b][a] = w.
//
// Behavior highlights:
//   - Last write wins: an existing (a,b) edge has its weight overwritten.
//   - A self-loop (a == b) is stored once; it is not rejected here.
//
// Errors:
//   - ErrEmptyVertexID: if either endpoint has an empty ID.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b item.Item, w float64) error {
	if a.IsInvalid() || b.IsInvalid() {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(a)
	g.addVertexLocked(b)
	g.adjacency[a.ID][b.ID] = w
	g.adjacency[b.ID][a.ID] = w

	return nil
}

// Weight returns the weight of edge (a,b).
// The boolean is false when either vertex or the edge is missing.
// Complexity: O(1).
func (g *Graph) Weight(a, b string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.adjacency[a][b]

	return w, ok
}

// HasEdge reports whether (a,b) is an edge.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.Weight(a, b)

	return ok
}

// Edges returns every undirected edge exactly once, endpoints in canonical
// order, sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var out []Edge
	for a, nbrs := range g.adjacency {
		for b, w := range nbrs {
			if b < a {
				continue // reported from the smaller endpoint
			}
			out = append(out, Edge{From: a, To: b, Weight: w})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	directed, loops := 0, 0
	for a, nbrs := range g.adjacency {
		directed += len(nbrs)
		if _, ok := nbrs[a]; ok {
			loops++
		}
	}

	return (directed-loops)/2 + loops
}

// TotalWeight sums the weights of all undirected edges.
// Complexity: O(E).
func (g *Graph) TotalWeight() float64 {
	var sum float64
	for _, e := range g.Edges() {
		sum += e.Weight
	}

	return sum
}

// PathWeight sums the edge weights along path.
// The boolean is false when two consecutive items are not adjacent.
// An empty or single-item path weighs 0.
// Complexity: O(len(path)).
func (g *Graph) PathWeight(path []item.Item) (float64, bool) {
	var sum float64
	for i := 1; i < len(path); i++ {
		w, ok := g.Weight(path[i-1].ID, path[i].ID)
		if !ok {
			return 0, false
		}
		sum += w
	}

	return sum, true
}
