package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/exhibit/core"
	"github.com/katalvlaran/exhibit/item"
)

func TestAddEdge_Symmetric(t *testing.T) {
	g := core.NewGraph()
	a, b := mk("A", 100), mk("B", 105)
	require.NoError(t, g.AddEdge(a, b, 5))

	wab, ok := g.Weight("A", "B")
	require.True(t, ok)
	wba, ok := g.Weight("B", "A")
	require.True(t, ok)
	assert.Equal(t, 5.0, wab)
	assert.Equal(t, wab, wba)
	assert.True(t, g.HasEdge("B", "A"))
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_LastWriteWins(t *testing.T) {
	g := core.NewGraph()
	a, b := mk("A", 0), mk("B", 0)
	require.NoError(t, g.AddEdge(a, b, 5))
	require.NoError(t, g.AddEdge(b, a, 2))

	w, _ := g.Weight("A", "B")
	assert.Equal(t, 2.0, w, "re-insert must overwrite, not accumulate")
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddEdge(item.Item{}, mk("B", 0), 1), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge(mk("A", 0), item.Item{}, 1), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddVertex(item.Item{}), core.ErrEmptyVertexID)
	assert.Zero(t, g.VertexCount())
}

func TestAddEdge_SelfLoopAccepted(t *testing.T) {
	g := core.NewGraph()
	a := mk("A", 0)
	require.NoError(t, g.AddEdge(a, a, 0))
	require.NoError(t, g.AddEdge(a, mk("B", 0), 3))

	assert.True(t, g.HasEdge("A", "A"))
	assert.Equal(t, 2, g.EdgeCount())
	assert.Len(t, g.Edges(), 2)
	ids, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, ids)
}

func TestAddVertex_FirstValueCanonical(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(item.New("A", "first", "", "", 1)))
	require.NoError(t, g.AddEdge(item.New("A", "second", "", "", 2), mk("B", 0), 1))

	it, ok := g.Item("A")
	require.True(t, ok)
	assert.Equal(t, "first", it.Name)

	_, ok = g.Item("missing")
	assert.False(t, ok)
	assert.False(t, g.HasVertex(""))
}

func TestNeighbors_SortedCopies(t *testing.T) {
	g := core.NewGraph()
	a := mk("A", 0)
	require.NoError(t, g.AddEdge(a, mk("C", 0), 3))
	require.NoError(t, g.AddEdge(a, mk("B", 0), 1))

	nbrs, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, nbrs, 2)
	assert.Equal(t, "B", nbrs[0].Item.ID)
	assert.Equal(t, 1.0, nbrs[0].Weight)
	assert.Equal(t, "C", nbrs[1].Item.ID)

	nbrs[0].Item.Name = "mutated"
	it, _ := g.Item("B")
	assert.Equal(t, "Work B", it.Name)

	ids, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, ids)

	_, err = g.Neighbors("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.Neighbors("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.NeighborIDs("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestEdges_CanonicalOnce(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(mk("C", 0), mk("A", 0), 2))
	require.NoError(t, g.AddEdge(mk("B", 0), mk("A", 0), 1))
	require.NoError(t, g.AddEdge(mk("B", 0), mk("C", 0), 4))

	assert.Equal(t, []core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "A", To: "C", Weight: 2},
		{From: "B", To: "C", Weight: 4},
	}, g.Edges())
	assert.Equal(t, 7.0, g.TotalWeight())
	assert.Equal(t, core.PairKey("A", "B"), core.PairKey("B", "A"))
	assert.Equal(t, core.PairKey("A", "C"), g.Edges()[1].Key())
}

func TestVertices_SortedIncludingIsolated(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(mk("Z", 0)))
	require.NoError(t, g.AddEdge(mk("B", 0), mk("A", 0), 1))

	assert.Equal(t, []string{"A", "B", "Z"}, g.VertexIDs())
	assert.Equal(t, []string{"A", "B", "Z"}, item.IDs(g.Vertices()))

	adj := g.Adjacency()
	require.Contains(t, adj, "Z")
	assert.Empty(t, adj["Z"])
	assert.Equal(t, 1.0, adj["A"]["B"])
	assert.Equal(t, 1.0, adj["B"]["A"])
}

func TestPathWeight(t *testing.T) {
	g := core.NewGraph()
	a, b, c := mk("A", 0), mk("B", 0), mk("C", 0)
	require.NoError(t, g.AddEdge(a, b, 1.5))
	require.NoError(t, g.AddEdge(b, c, 2))

	w, ok := g.PathWeight([]item.Item{a, b, c})
	assert.True(t, ok)
	assert.Equal(t, 3.5, w)

	_, ok = g.PathWeight([]item.Item{a, c})
	assert.False(t, ok)

	w, ok = g.PathWeight(nil)
	assert.True(t, ok)
	assert.Zero(t, w)
}

func TestCloneAndInducedSubgraph_Independent(t *testing.T) {
	g := core.NewGraph()
	a, b, c := mk("A", 0), mk("B", 0), mk("C", 0)
	require.NoError(t, g.AddEdge(a, b, 1))
	require.NoError(t, g.AddEdge(b, c, 2))
	require.NoError(t, g.AddEdge(a, c, 3))

	clone := g.Clone()
	assert.Equal(t, g.Adjacency(), clone.Adjacency())
	require.NoError(t, clone.AddEdge(a, b, 9))
	w, _ := g.Weight("A", "B")
	assert.Equal(t, 1.0, w, "clone must not share storage")

	sub := core.InducedSubgraph(g, map[string]bool{"A": true, "C": true})
	assert.Equal(t, []string{"A", "C"}, sub.VertexIDs())
	assert.Equal(t, []core.Edge{{From: "A", To: "C", Weight: 3}}, sub.Edges())
	assert.Equal(t, 3, clone.VertexCount())
}
