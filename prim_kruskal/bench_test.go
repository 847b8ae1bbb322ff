package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/exhibit/prim_kruskal"
)

// BenchmarkKruskal measures performance on a random graph with 500 vertices and 2000 edges.
func BenchmarkKruskal(b *testing.B) {
	g := buildMediumGraph(b, 500, 2000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Kruskal(g)
	}
}

// BenchmarkPrim measures performance on the same graph, rooted at "V000".
func BenchmarkPrim(b *testing.B) {
	g := buildMediumGraph(b, 500, 2000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Prim(g, "V000")
	}
}
