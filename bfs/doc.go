// Package bfs provides breadth-first search over a core.Graph, returning hop
// distances and visit order of the items reachable from a start.
//
// Edge weights are ignored: BFS answers "which works are connected at all",
// which is what the exhibit planner needs to tell a spanning tree's component
// apart from anchors stranded elsewhere, and how many hops each anchor sits
// from the root.
//
// Determinism
//
//	core.Graph.NeighborIDs is sorted by accession key and BFS enqueues in that
//	order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E·log d) with sorted neighbor lists
//   - Memory: O(V)
//
// Errors
//
//	ErrGraphNil, ErrStartVertexNotFound, ErrNeighbors.
package bfs
