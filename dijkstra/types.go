package dijkstra

import (
	"errors"

	"github.com/katalvlaran/exhibit/item"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// state is one reaching state of the frontier.
//
// path holds the vertices finalized before id on this route; id itself is
// appended when the state is finalized or recognised as the target.
type state struct {
	id   string
	cost float64
	path []item.Item
}

// frontier is a min-heap of *state ordered by cost ascending.
type frontier []*state

// Len returns the number of states in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders states by accumulated cost.
func (f frontier) Less(i, j int) bool { return f[i].cost < f[j].cost }

// Swap swaps two states.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends x, which must be a *state. Called by heap.Push.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*state)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	s := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return s
}
