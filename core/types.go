// Package core defines the Graph, Edge and Neighbor types together with the
// sentinel errors and the NewGraph constructor.
package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/exhibit/item"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided item has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Edge is one undirected edge reported by Edges().
//
// From and To are accession keys in canonical order (From <= To), so every
// undirected edge appears exactly once.
type Edge struct {
	// From is the lexicographically smaller endpoint ID.
	From string

	// To is the lexicographically larger endpoint ID.
	To string

	// Weight is the similarity score that created the edge.
	Weight float64
}

// Key returns the canonical unordered-pair key "From\x00To".
func (e Edge) Key() string { return PairKey(e.From, e.To) }

// PairKey returns a key identical for (a,b) and (b,a).
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}

	return a + "\x00" + b
}

// Neighbor is one adjacent vertex and the weight of the connecting edge.
type Neighbor struct {
	// Item is a copy of the adjacent vertex.
	Item item.Item

	// Weight is the edge weight.
	Weight float64
}

// Graph is the weighted undirected item graph.
//
// mu guards items and adjacency together; mirror writes happen under one
// lock acquisition so readers never observe a half-inserted edge.
type Graph struct {
	mu sync.RWMutex

	// items[id] is the canonical item for each vertex.
	items map[string]item.Item

	// adjacency[a][b] = weight, symmetric.
	adjacency map[string]map[string]float64
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		items:     make(map[string]item.Item),
		adjacency: make(map[string]map[string]float64),
	}
}
