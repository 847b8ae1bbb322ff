package grouper

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/exhibit/core"
	"github.com/katalvlaran/exhibit/item"
	"github.com/katalvlaran/exhibit/similarity"
)

var (
	// ErrNilGraph is returned by GroupObjects when dst is nil.
	ErrNilGraph = errors.New("grouper: destination graph is nil")

	// ErrNilMetric is returned when no similarity metric is supplied.
	ErrNilMetric = errors.New("grouper: metric is nil")

	// ErrNegativeScore reports a metric that broke the non-negative contract.
	ErrNegativeScore = errors.New("grouper: metric returned a negative score")
)

// Group builds a fresh similarity graph over items.
func Group(maxCost float64, items []item.Item, m similarity.Metric) (*core.Graph, error) {
	g := core.NewGraph()
	if _, err := GroupObjects(g, maxCost, items, m); err != nil {
		return nil, err
	}

	return g, nil
}

// GroupObjects scores every ordered pair of distinct items with m and inserts
// an edge into dst for each pair whose score does not exceed maxCost.
// It returns the number of edge insertions performed (each qualifying
// unordered pair counts twice).
//
// Steps:
//  1. Validate dst, m and every item's accession key.
//  2. For i, j over all positions with i != j (and distinct IDs), score
//     s = m.Score(items[i], items[j]) and keep the pair when s <= maxCost.
//  3. Register every item as a vertex of dst, then insert the kept pairs.
//
// All scoring happens before dst is touched: on any error dst is left exactly
// as it was. A NaN score never satisfies the comparison and is skipped.
func GroupObjects(dst *core.Graph, maxCost float64, items []item.Item, m similarity.Metric) (int, error) {
	if dst == nil {
		return 0, ErrNilGraph
	}
	if m == nil {
		return 0, ErrNilMetric
	}
	for _, it := range items {
		if it.IsInvalid() {
			return 0, fmt.Errorf("grouper: register %q: %w", it.Name, core.ErrEmptyVertexID)
		}
	}

	type pair struct {
		left, right item.Item
		score       float64
	}
	var pending []pair
	for i, left := range items {
		for j, right := range items {
			if i == j || left.Equal(right) {
				continue
			}
			score := m.Score(left, right)
			if score < 0 {
				return 0, fmt.Errorf("%w: %s(%s, %s) = %g",
					ErrNegativeScore, m.Name(), left.ID, right.ID, score)
			}
			if !(score <= maxCost) {
				continue
			}
			pending = append(pending, pair{left: left, right: right, score: score})
		}
	}

	for _, it := range items {
		if err := dst.AddVertex(it); err != nil {
			return 0, fmt.Errorf("grouper: register %q: %w", it.Name, err)
		}
	}
	for n, p := range pending {
		if err := dst.AddEdge(p.left, p.right, p.score); err != nil {
			return n, err
		}
	}

	return len(pending), nil
}
