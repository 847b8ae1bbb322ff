// Package grouper turns a flat list of catalogue items into a weighted
// similarity graph.
//
// For every ordered pair of distinct positions (i, j) in the input the
// grouper asks a similarity.Metric for score(items[i], items[j]) and inserts
// the undirected edge (items[i], items[j], score) when score <= maxCost.
// Every unordered pair is therefore scored twice; metrics are symmetric, so
// the second insertion rewrites the same weight (core.Graph is last write
// wins) and the result is identical to a single pass over i < j.
//
// Invariants:
//
//   - No self-loop is ever inserted: i == j is skipped, and so is a repeated
//     accession key at two positions.
//   - Every input item becomes a vertex, including items that receive no
//     edge. Shortest-path queries on an isolated item then report "no path"
//     rather than "unknown vertex".
//   - Running Group twice on the same input yields identical adjacency.
//
// GroupObjects populates a caller-supplied graph, so several passes (for
// instance with different metrics) can accumulate into one destination.
// Group always starts from a fresh graph.
//
// Complexity: O(n²) metric calls, O(n + E) memory.
//
// Errors:
//
//	ErrNilGraph      – destination graph is nil
//	ErrNilMetric     – metric is nil
//	ErrNegativeScore – the metric produced a negative score; shortest-path
//	                   search over such a graph would not be optimal
package grouper
