package dfs

import (
	"fmt"

	"github.com/katalvlaran/exhibit/core"
)

// Vertex colours during cycle search.
const (
	white = iota // not visited yet
	gray         // on the recursion stack
	black        // fully explored
)

// FindCycle returns one simple cycle of the undirected graph g as a closed
// vertex sequence (first == last), or nil when g is a forest.
//
// Self-loops count as cycles of length one: [v v]. The mirrored half of an
// undirected edge is not a cycle; the edge back to the DFS parent is skipped.
// Components are explored in ascending ID order, so the cycle reported is
// deterministic.
//
// Complexity: O(V + E·log d) time, O(V) memory.
func FindCycle(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	state := make(map[string]int, g.VertexCount())
	parent := make(map[string]string, g.VertexCount())

	var visit func(id, from string) ([]string, error)
	visit = func(id, from string) ([]string, error) {
		state[id] = gray
		nbs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("dfs: FindCycle: %w", err)
		}
		for _, nid := range nbs {
			switch {
			case nid == id:
				return []string{id, id}, nil
			case nid == from:
				continue
			case state[nid] == gray:
				// back edge id→nid closes nid → … → id → nid
				cycle := []string{id}
				for v := id; v != nid; {
					v = parent[v]
					cycle = append(cycle, v)
				}
				for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
					cycle[i], cycle[j] = cycle[j], cycle[i]
				}

				return append(cycle, nid), nil
			case state[nid] == white:
				parent[nid] = id
				if c, err := visit(nid, id); c != nil || err != nil {
					return c, err
				}
			}
		}
		state[id] = black

		return nil, nil
	}

	for _, v := range g.VertexIDs() {
		if state[v] != white {
			continue
		}
		if c, err := visit(v, ""); c != nil || err != nil {
			return c, err
		}
	}

	return nil, nil
}
