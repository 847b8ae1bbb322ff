// Package dfs walks a core.Graph depth-first: Walk turns a spanning tree into
// a visiting route and FindCycle checks that a graph really is a forest.
//
// Neighbors are explored in ascending ID order, so every result is
// deterministic.
//
// Complexity:
//
//   - Time:   O(V + E·log d) (neighbor lists are sorted copies).
//   - Memory: O(V) for the recursion stack and colour map.
//
// Errors:
//
//   - ErrGraphNil  if g is nil.
package dfs
