// File: methods_vertices.go
// Role: Vertex registration & id-based lookup.
//
// Determinism:
//   - Vertices() and VertexIDs() are sorted by accession key ascending.
//
// Concurrency:
//   - Writers take mu; readers take mu.RLock.
package core

import (
	"sort"

	"github.com/katalvlaran/exhibit/item"
)

// AddVertex registers it as a vertex if its ID is not yet present.
//
// Behavior highlights:
//   - Idempotent: the first registered value stays canonical for its ID.
//   - Allocates an empty adjacency bucket so isolated vertices still enumerate.
//
// Errors:
//   - ErrEmptyVertexID: if it.IsInvalid().
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(it item.Item) error {
	if it.IsInvalid() {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(it)

	return nil
}

// addVertexLocked registers it; caller holds mu for writing.
func (g *Graph) addVertexLocked(it item.Item) {
	if _, ok := g.items[it.ID]; ok {
		return
	}
	g.items[it.ID] = it
	g.adjacency[it.ID] = make(map[string]float64)
}

// HasVertex reports whether id is a vertex.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.items[id]

	return ok
}

// Item resolves id to a copy of its canonical item.
// The boolean is false when id is unknown; absence is not an error.
// Complexity: O(1).
func (g *Graph) Item(id string) (item.Item, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	it, ok := g.items[id]

	return it, ok
}

// Vertices returns copies of all vertices sorted by ID.
// Complexity: O(V log V).
func (g *Graph) Vertices() []item.Item {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]item.Item, 0, len(g.items))
	for _, it := range g.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// VertexIDs returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) VertexIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, 0, len(g.items))
	for id := range g.items {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns |V|.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.items)
}
