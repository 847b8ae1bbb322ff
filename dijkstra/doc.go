// Package dijkstra finds the cheapest path between two items of a
// core.Graph using Dijkstra's algorithm with a path-carrying frontier.
//
// Overview:
//
//   - The frontier is a min-heap of reaching states (vertex, accumulated cost,
//     ordered vertices visited so far), ordered by ascending cost. Ties are
//     broken arbitrarily.
//   - The first time the target is popped its cost is optimal, because all
//     edge weights are non-negative.
//   - A vertex popped again after it was finalized is a stale entry and is
//     discarded (lazy decrease-key).
//   - Each frontier entry owns its own copy of the path. There is no
//     predecessor map to reconstruct and no shared parent pointers to go stale.
//
// Absence is a result, not an error: an unknown start or end ID, or a target
// that is not reachable, yields an empty path.
//
// Complexity:
//
//   - Time:  O((V + E) log E) heap work, plus O(V) path copying per push.
//   - Space: O(E · V) worst case for the carried paths; fine at exhibit scale
//     (tens to low hundreds of vertices).
//
// Errors (sentinel):
//
//   - ErrNilGraph:       the graph pointer is nil.
//   - ErrNegativeWeight: an edge with negative weight was found in the pre-scan;
//     optimality does not hold for such graphs.
package dijkstra
