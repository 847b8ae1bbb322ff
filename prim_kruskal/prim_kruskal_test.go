package prim_kruskal_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/exhibit/bfs"
	"github.com/katalvlaran/exhibit/core"
	"github.com/katalvlaran/exhibit/item"
	"github.com/katalvlaran/exhibit/prim_kruskal"
)

func mk(id string) item.Item { return item.New(id, "Work "+id, "", "", 0) }

// buildTriangle constructs A—B (1), B—C (2), A—C (3); MST = {A—B, B—C}, weight 3.
func buildTriangle(t testing.TB) *core.Graph {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(mk("A"), mk("B"), 1))
	require.NoError(t, g.AddEdge(mk("B"), mk("C"), 2))
	require.NoError(t, g.AddEdge(mk("A"), mk("C"), 3))

	return g
}

// buildMediumGraph creates a connected graph with n vertices and edgesCount
// edges with distinct random weights: a chain V0—V1—…—V(n-1) for
// connectivity, then random extra edges. Seeded for reproducibility.
func buildMediumGraph(t testing.TB, n, edgesCount int) *core.Graph {
	g := core.NewGraph()
	r := rand.New(rand.NewSource(42))
	used := map[float64]bool{}
	weight := func() float64 {
		for {
			w := float64(r.Intn(1_000_000)) / 100
			if !used[w] {
				used[w] = true
				return w
			}
		}
	}
	v := func(i int) item.Item { return mk(fmt.Sprintf("V%03d", i)) }
	for i := 1; i < n; i++ {
		require.NoError(t, g.AddEdge(v(i-1), v(i), weight()))
	}
	for g.EdgeCount() < edgesCount {
		a, b := r.Intn(n), r.Intn(n)
		if a == b || g.HasEdge(v(a).ID, v(b).ID) {
			continue
		}
		require.NoError(t, g.AddEdge(v(a), v(b), weight()))
	}

	return g
}

// assertTree checks |E| = |V|−1 and that every vertex is reachable from root.
func assertTree(t *testing.T, tree *core.Graph, root string) {
	t.Helper()
	assert.Equal(t, tree.VertexCount()-1, tree.EdgeCount())
	res, err := bfs.BFS(tree, root)
	require.NoError(t, err)
	assert.Len(t, res.Order, tree.VertexCount())
}

func TestPrim_Triangle(t *testing.T) {
	tree, err := prim_kruskal.Prim(buildTriangle(t), "A")
	require.NoError(t, err)

	assert.Equal(t, 3.0, tree.TotalWeight())
	assert.Equal(t, []core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
	}, tree.Edges())
	assertTree(t, tree, "A")
}

func TestPrim_MatchesKruskal(t *testing.T) {
	g := buildMediumGraph(t, 60, 300)

	_, want, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)

	for _, root := range []string{"V000", "V017", "V059"} {
		tree, err := prim_kruskal.Prim(g, root)
		require.NoError(t, err)
		assert.InDelta(t, want, tree.TotalWeight(), 1e-9, "root %s", root)
		assert.Equal(t, g.VertexCount(), tree.VertexCount())
		assertTree(t, tree, root)
	}
}

func TestPrim_DistinctWeightsUniqueTree(t *testing.T) {
	g := buildMediumGraph(t, 12, 30)

	forest, _, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	tree, err := prim_kruskal.Prim(g, "V005")
	require.NoError(t, err)
	assert.Equal(t, forest.Edges(), tree.Edges(), "distinct weights admit exactly one MST")
}

func TestPrim_DisconnectedYieldsReachableComponent(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.AddEdge(mk("X"), mk("Y"), 1))
	require.NoError(t, g.AddVertex(mk("Z")))

	tree, err := prim_kruskal.Prim(g, "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, tree.VertexIDs())
	assert.Equal(t, 3.0, tree.TotalWeight())

	tree, err = prim_kruskal.Prim(g, "Z")
	require.NoError(t, err)
	assert.Equal(t, []string{"Z"}, tree.VertexIDs())
	assert.Zero(t, tree.EdgeCount())
}

func TestPrim_UnknownStartAndNil(t *testing.T) {
	tree, err := prim_kruskal.Prim(buildTriangle(t), "nope")
	require.NoError(t, err)
	assert.Zero(t, tree.VertexCount())

	_, err = prim_kruskal.Prim(nil, "A")
	assert.ErrorIs(t, err, prim_kruskal.ErrNilGraph)
	_, _, err = prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrNilGraph)
}

func TestPrim_IgnoresSelfLoopsAndIsIndependent(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.AddEdge(mk("A"), mk("A"), 0))

	tree, err := prim_kruskal.Prim(g, "A")
	require.NoError(t, err)
	assert.False(t, tree.HasEdge("A", "A"))
	assertTree(t, tree, "A")

	require.NoError(t, tree.AddEdge(mk("A"), mk("C"), 100))
	w, _ := g.Weight("A", "C")
	assert.Equal(t, 3.0, w, "tree must not share storage with the input")
}

func TestKruskal_Forest(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.AddEdge(mk("X"), mk("Y"), 4))

	forest, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, 7.0, total)
	assert.Equal(t, 5, forest.VertexCount())
	assert.Equal(t, 3, forest.EdgeCount())
}

func TestCompute_Dispatch(t *testing.T) {
	g := buildTriangle(t)

	tree, total, err := prim_kruskal.Compute(g, prim_kruskal.DefaultOptions(prim_kruskal.WithRoot("C")))
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)
	assert.Equal(t, 3, tree.VertexCount())

	_, total, err = prim_kruskal.Compute(g, prim_kruskal.DefaultOptions(prim_kruskal.WithMethod(prim_kruskal.MethodKruskal)))
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)

	_, _, err = prim_kruskal.Compute(g, prim_kruskal.DefaultOptions(prim_kruskal.WithMethod("boruvka")))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}
