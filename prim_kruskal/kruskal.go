// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It produces the minimum spanning forest of an item graph.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/exhibit/core"
)

// Kruskal computes the minimum spanning forest of g and its total weight.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Steps:
//  1. Validate g != nil.
//  2. Copy every vertex into the forest (isolated vertices included).
//  3. Collect all edges via g.Edges(), skip self-loops.
//  4. Stable-sort edges by ascending weight (g.Edges() order breaks ties).
//  5. For each edge (u,v), if find(u) != find(v), union and include it.
//
// For a connected graph the forest is a spanning tree with |V|−1 edges.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(g *core.Graph) (*core.Graph, float64, error) {
	// 1. Validate
	if g == nil {
		return nil, 0, ErrNilGraph
	}

	// 2. Vertices
	forest := core.NewGraph()
	vertices := g.Vertices()
	for _, it := range vertices {
		if err := forest.AddVertex(it); err != nil {
			return nil, 0, err
		}
	}

	// 3. Edges without self-loops
	all := g.Edges()
	edges := make([]core.Edge, 0, len(all))
	for _, e := range all {
		if e.From != e.To {
			edges = append(edges, e)
		}
	}

	// 4. Sort by weight
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	// 5. Disjoint-set
	parent := make(map[string]string, len(vertices))
	rank := make(map[string]int, len(vertices))
	for _, it := range vertices {
		parent[it.ID] = it.ID
	}
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]] // path compression
			u = parent[u]
		}

		return u
	}
	union := func(u, v string) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}

		return true
	}

	var total float64
	for _, e := range edges {
		if !union(e.From, e.To) {
			continue
		}
		u, _ := g.Item(e.From)
		v, _ := g.Item(e.To)
		if err := forest.AddEdge(u, v, e.Weight); err != nil {
			return nil, 0, err
		}
		total += e.Weight
	}

	return forest, total, nil
}
