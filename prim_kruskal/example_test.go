package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/exhibit/core"
	"github.com/katalvlaran/exhibit/item"
	"github.com/katalvlaran/exhibit/prim_kruskal"
)

// ExamplePrim grows a tree from "A" on a pentagon A–B(1) B–C(2) C–D(3) D–E(5) A–E(12).
// The MST drops the heavy A–E edge; total weight 11.
func ExamplePrim() {
	g := core.NewGraph()
	v := func(id string) item.Item { return item.New(id, id, "", "", 0) }
	_ = g.AddEdge(v("A"), v("B"), 1)
	_ = g.AddEdge(v("A"), v("E"), 12)
	_ = g.AddEdge(v("B"), v("C"), 2)
	_ = g.AddEdge(v("C"), v("D"), 3)
	_ = g.AddEdge(v("D"), v("E"), 5)

	tree, err := prim_kruskal.Prim(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("Total: %g, Edges:", tree.TotalWeight())
	for _, e := range tree.Edges() {
		fmt.Printf(" %s-%s", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 11, Edges: A-B B-C C-D D-E
}
