package bfs

import "errors"

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to BFS.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start ID is not a vertex.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrNeighbors wraps a failure to list a vertex's neighbors.
	ErrNeighbors = errors.New("bfs: neighbor lookup failed")
)

// BFSResult holds the outcome of a breadth-first traversal.
type BFSResult struct {
	// Order lists vertex IDs in visit order, start first.
	Order []string

	// Depth maps each reached vertex to its hop count from the start.
	Depth map[string]int
}

// Reached reports whether id was visited.
func (r *BFSResult) Reached(id string) bool {
	_, ok := r.Depth[id]

	return ok
}
