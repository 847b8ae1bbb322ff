// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/exhibit/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrUnknownMethod indicates an MSTOptions.Method that is neither prim nor kruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Prim).
//
// Fields:
//
//	Method string — one of MethodPrim or MethodKruskal.
//	Root   string — start vertex ID for Prim; ignored when Method == MethodKruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions for Prim with the given options applied.
func DefaultOptions(opts ...Option) MSTOptions {
	o := MSTOptions{Method: MethodPrim}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodPrim:    Prim(graph, opts.Root).
//	– MethodKruskal: Kruskal(graph).
//	– otherwise:     ErrUnknownMethod.
//
// Returns the tree (or forest) graph and its total weight.
func Compute(graph *core.Graph, opts MSTOptions) (*core.Graph, float64, error) {
	switch opts.Method {
	case MethodPrim:
		tree, err := Prim(graph, opts.Root)
		if err != nil {
			return nil, 0, err
		}

		return tree, tree.TotalWeight(), nil
	case MethodKruskal:
		return Kruskal(graph)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}

// candidate is a cross edge waiting in Prim's heap.
type candidate struct {
	from   string
	to     string
	weight float64
}

// edgePQ implements heap.Interface for a min-heap of candidates, ordered by
// weight then by (from, to) for reproducible tie-breaking.
type edgePQ []candidate

// Len returns the number of edges in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less orders by weight, then endpoints.
func (pq edgePQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}
	if pq[i].from != pq[j].from {
		return pq[i].from < pq[j].from
	}

	return pq[i].to < pq[j].to
}

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a candidate. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }

// Pop removes and returns the last candidate. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
