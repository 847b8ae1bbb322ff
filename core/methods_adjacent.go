// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, Adjacency).
//
// Determinism:
//   - Neighbors() and NeighborIDs() are sorted by accession key ascending.
//   - Adjacency() returns an independent deep copy.
package core

import "sort"

// Neighbors returns the vertices adjacent to id with their edge weights.
//
// Behavior highlights:
//   - Deterministic ordering by neighbor ID ascending.
//   - Returned items are copies; mutating them does not touch the graph.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if id is not a vertex.
//
// Complexity: O(d log d), where d is the degree of id.
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]Neighbor, 0, len(nbrs))
	for nid, w := range nbrs {
		out = append(out, Neighbor{Item: g.items[nid], Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Item.Less(out[j].Item) })

	return out, nil
}

// NeighborIDs returns the IDs adjacent to id, sorted ascending.
// Errors are those of Neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	nbrs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(nbrs))
	for i, n := range nbrs {
		out[i] = n.Item.ID
	}

	return out, nil
}

// Adjacency returns a deep copy of the full adjacency: every vertex maps to
// its neighbor weights, both directions of each edge included. Isolated
// vertices map to an empty, non-nil map.
// Complexity: O(V + E).
func (g *Graph) Adjacency() map[string]map[string]float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[string]map[string]float64, len(g.adjacency))
	for a, nbrs := range g.adjacency {
		cp := make(map[string]float64, len(nbrs))
		for b, w := range nbrs {
			cp[b] = w
		}
		out[a] = cp
	}

	return out
}
