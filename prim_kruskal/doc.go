// Package prim_kruskal reduces an item graph to a minimum spanning tree for
// exhibit layout: Prim's algorithm grows the tree from a chosen start item,
// Kruskal's algorithm builds the spanning forest of the whole graph.
//
// What & Why
//
//   - Given an undirected weighted graph G = (V, E), a minimum spanning tree
//     is a subset T ⊆ E connecting the vertices with the least total weight.
//   - For an exhibit the tree is the floor plan: every work hangs next to the
//     works it is most similar to, with no redundant connections.
//
// Algorithms Provided
//
//   - Prim(g, startID) (*core.Graph, error)
//
//   - Strategy: keep the set of included vertices (initially {start}) and a
//     min-heap of cross edges from the included set to the rest. Pop the
//     lightest cross edge whose far end is still outside, add it, push the
//     far end's edges. Stop when no cross edge remains.
//
//   - The result is the MST of the component reachable from start. A graph
//     disconnected from start is not an error: vertices outside the component
//     are simply absent from the tree.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - Kruskal(g) (*core.Graph, float64, error)
//
//   - Strategy: sort all edges by weight and merge components with a
//     disjoint-set (path compression + union by rank). Produces a spanning
//     forest over every vertex; used as the independent reference for Prim.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
// Determinism
//
//	Ties between equal weights are broken by (From, To) accession keys, so the
//	exact tree among equal-weight alternatives is reproducible. The total
//	weight does not depend on tie-breaking.
//
// Error Conditions
//
//	ErrNilGraph     – graph pointer is nil.
//	ErrUnknownMethod – Compute was asked for an algorithm it does not know.
//
// Unknown start IDs are absence, not failure: Prim returns an empty graph.
// Results are fresh graphs holding copies of the items; they never share
// storage with the input.
package prim_kruskal
