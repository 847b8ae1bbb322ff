// Package exhibit plans an exhibit layout from a catalogue and a handful of
// anchor works.
//
// Plan runs the full pipeline:
//
//  1. Group every catalogue item with the chosen metric into graph G.
//  2. For each ordered pair of distinct anchors (a, b) find the shortest path
//     a→b in G and collect its items, first occurrence wins.
//  3. Add every anchor present in G that no path picked up, so a lone or
//     disconnected anchor still appears in the layout.
//  4. Group the collected items again into subgraph S.
//  5. Reduce S to a spanning tree rooted at the first known anchor (Prim by
//     default, Kruskal on request).
//  6. Walk the tree depth-first from the root to get a visiting route.
//
// Anchors that do not occur in the catalogue are reported in Layout.Unknown;
// anchors in the catalogue but not connected to the root in the final tree
// are reported in Layout.Unreachable. Neither is an error.
//
// Plan logs each stage at debug level and a summary at info level through an
// optional zap logger.
package exhibit
