package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/exhibit/core"
	"github.com/katalvlaran/exhibit/item"
)

// ErrGraphNil is returned when a nil *core.Graph is passed in.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Walk returns the items of rootID's component in depth-first pre-order.
// Applied to a spanning tree it yields a visiting route: each work is
// followed by the most related works hanging off it before moving on.
//
// An unknown rootID yields nil and no error.
func Walk(g *core.Graph, rootID string) ([]item.Item, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(rootID) {
		return nil, nil
	}

	visited := make(map[string]bool, g.VertexCount())
	route := make([]item.Item, 0, g.VertexCount())

	var visit func(id string) error
	visit = func(id string) error {
		visited[id] = true
		it, _ := g.Item(id)
		route = append(route, it)

		nbs, err := g.NeighborIDs(id)
		if err != nil {
			return fmt.Errorf("dfs: Walk: %w", err)
		}
		for _, nid := range nbs {
			if visited[nid] {
				continue
			}
			if err = visit(nid); err != nil {
				return err
			}
		}

		return nil
	}
	if err := visit(rootID); err != nil {
		return nil, err
	}

	return route, nil
}
