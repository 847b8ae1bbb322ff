// Package museum is the root of the exhibit planner: a small graph toolkit
// that links catalogued works of art by similarity and proposes an exhibit
// layout around a few chosen anchor works.
//
// What is in the box?
//
//	• Catalogue records: item.Item, loaded from collection CSVs by catalog
//	• Free-text dates: "15th century", "514 B.C.", "A.D. 25" → signed years
//	• Similarity metrics: date distance, same artist, same location
//	• Weighted undirected graph: core.Graph, thread-safe, deterministic
//	• Shortest paths: Dijkstra with path-carrying frontier
//	• Spanning trees: Prim (rooted) and Kruskal (forest)
//	• Reachability: BFS hop distances
//	• Output: GraphViz DOT documents and one-line descriptions
//
// Under the hood, everything is organized as subpackages, leaves first:
//
//	item/         — the catalogue record
//	dateparse/    — natural-language date → year
//	similarity/   — Metric interface + Date, Creator, Origin
//	core/         — Graph, Edge, Neighbor & thread-safe primitives
//	grouper/      — items + metric + threshold → Graph
//	dijkstra/     — single-pair shortest path
//	prim_kruskal/ — minimum spanning tree / forest
//	bfs/          — breadth-first traversal & reachability
//	dfs/          — route walk & cycle check
//	catalog/      — CSV loader
//	session/      — interactive anchor & metric selection
//	config/       — YAML configuration + validation
//	render/       — GraphViz DOT output
//	exhibit/      — the end-to-end planning pipeline
//	cmd/exhibit/  — command-line tool
//
// Quick ASCII example (date metric, max cost 50):
//
//	    A(100)──5──B(105)        C(300)
//
// A and B are linked, C stands alone: a path A→C does not exist, and the
// exhibit grown from A holds A and B only.
//
//	go install github.com/katalvlaran/exhibit/cmd/exhibit@latest
package museum
