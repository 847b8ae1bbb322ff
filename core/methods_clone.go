// File: methods_clone.go
// Role: Cloning and subgraph extraction.
//
// Concurrency:
//   - Read lock on the source for snapshotting; the source is never mutated.
package core

// Clone returns a deep, independent copy of g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return InducedSubgraph(g, nil)
}

// InducedSubgraph returns a new Graph holding only the vertices whose ID is
// in keep and every edge whose endpoints are both kept. A nil keep set keeps
// everything. The input graph is not mutated.
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	out := NewGraph()
	g.mu.RLock()
	defer g.mu.RUnlock()
	kept := func(id string) bool { return keep == nil || keep[id] }
	for id, it := range g.items {
		if kept(id) {
			out.addVertexLocked(it)
		}
	}
	for a, nbrs := range g.adjacency {
		if !kept(a) {
			continue
		}
		for b, w := range nbrs {
			if kept(b) {
				out.adjacency[a][b] = w
			}
		}
	}

	return out
}
