// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows the tree from a start item using a min-heap of cross edges.
package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/exhibit/core"
)

// Prim returns the minimum spanning tree of the component of g reachable
// from startID, as a new Graph.
//
// Steps:
//  1. Validate g != nil.
//  2. Resolve startID; unknown → empty Graph, nil error.
//  3. included = {start}; the tree starts with the start vertex alone.
//  4. Push every edge from start to a vertex outside included.
//  5. While the heap is not empty:
//     a. Pop the lightest candidate (u→v).
//     b. If v is already included, skip (it would close a cycle).
//     c. Otherwise add (u,v,w) to the tree, include v, push v's edges to
//     vertices still outside.
//  6. Return the tree: |V_tree| = size of the reachable component,
//     |E_tree| = |V_tree| − 1.
//
// Self-loops never qualify as cross edges. The loop terminates when no
// qualifying cross edge remains, so a graph disconnected from start yields
// the MST of the reachable component.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *core.Graph, startID string) (*core.Graph, error) {
	// 1. Validate
	if g == nil {
		return nil, ErrNilGraph
	}
	tree := core.NewGraph()

	// 2. Resolve start
	start, ok := g.Item(startID)
	if !ok {
		return tree, nil
	}

	// 3. Seed tree and included set
	if err := tree.AddVertex(start); err != nil {
		return nil, err
	}
	included := map[string]bool{startID: true}
	pq := &edgePQ{}
	heap.Init(pq)

	push := func(u string) error {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return err
		}
		for _, n := range nbrs {
			if !included[n.Item.ID] {
				heap.Push(pq, candidate{from: u, to: n.Item.ID, weight: n.Weight})
			}
		}

		return nil
	}

	// 4. Edges leaving start
	if err := push(startID); err != nil {
		return nil, err
	}

	// 5. Grow
	for pq.Len() > 0 {
		c := heap.Pop(pq).(candidate)
		if included[c.to] {
			continue
		}
		u, _ := g.Item(c.from)
		v, _ := g.Item(c.to)
		if err := tree.AddEdge(u, v, c.weight); err != nil {
			return nil, err
		}
		included[c.to] = true
		if err := push(c.to); err != nil {
			return nil, err
		}
	}

	return tree, nil
}
