package bfs

import (
	"fmt"

	"github.com/katalvlaran/exhibit/core"
)

// BFS explores g breadth-first from startID.
//
// Steps:
//  1. Validate g and startID.
//  2. Enqueue the start at depth 0.
//  3. Dequeue, record, and enqueue every unvisited neighbor at depth+1,
//     in ascending ID order.
//
// Self-loops are harmless: the vertex is already visited.
func BFS(g *core.Graph, startID string) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	res := &BFSResult{
		Order: make([]string, 0, n),
		Depth: map[string]int{startID: 0},
	}
	queue := []string{startID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, id)

		neighbors, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrNeighbors, id, err)
		}
		for _, nbr := range neighbors {
			if _, seen := res.Depth[nbr]; seen {
				continue
			}
			res.Depth[nbr] = res.Depth[id] + 1
			queue = append(queue, nbr)
		}
	}

	return res, nil
}
