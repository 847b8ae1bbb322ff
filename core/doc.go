// Package core provides the weighted, undirected graph over catalogue items
// that every exhibit algorithm works on.
//
// The Graph G = (V,E) is modelled as nested maps keyed by accession key:
//
//	adjacency[a.ID][b.ID] = weight
//
// plus an id index items[id] = item.Item holding the canonical value of each
// vertex. Inserting edge (a,b,w) always writes both a→b and b→a, so the
// structure is symmetric by construction.
//
// Invariants:
//
//   - Symmetry: for every a→b with weight w, b→a exists with the same weight.
//   - Last write wins: re-inserting (a,b) overwrites the previous weight.
//   - Self-loops are accepted when a caller inserts one; the grouper never does.
//   - Items are stored by value. Vertices(), Item() and every algorithm result
//     hand out copies, so no structure aliases another.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(it item.Item) error            // O(1), idempotent
//	HasVertex(id string) bool                // O(1)
//	Item(id string) (item.Item, bool)        // O(1)
//
//	// Edge lifecycle
//	AddEdge(a, b item.Item, w float64) error // O(1), mirrored
//	Weight(a, b string) (float64, bool)      // O(1)
//	HasEdge(a, b string) bool                // O(1)
//
//	// Query
//	Neighbors(id string) ([]Neighbor, error) // O(d·log d), sorted by ID
//	NeighborIDs(id string) ([]string, error) // O(d·log d)
//	Adjacency() map[string]map[string]float64 // O(V+E) deep copy
//	Vertices() []item.Item                   // O(V·log V), sorted by ID
//	Edges() []Edge                           // O(E·log E), each undirected edge once
//	VertexCount(), EdgeCount(), TotalWeight()
//
//	// Cloning
//	Clone() *Graph                           // O(V+E)
//	InducedSubgraph(g, keep) *Graph          // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID  – item with empty accession key (the sentinel item)
//	ErrVertexNotFound – missing vertex
//
// Concurrency: a single sync.RWMutex guards both maps; every method is safe
// for concurrent use, though the exhibit pipeline itself is single-threaded.
package core
