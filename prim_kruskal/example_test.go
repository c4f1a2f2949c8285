// SPDX-License-Identifier: MIT

package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/poinet/core"
	"github.com/katalvlaran/poinet/prim_kruskal"
)

// ExampleKruskal demonstrates Kruskal's algorithm on a weighted triangle.
// The MST is {A–B, B–C} with total weight 3.
func ExampleKruskal() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 3)

	edges, total, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %g, Edges:", total)
	for _, e := range edges {
		fmt.Printf(" %s-%s", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 3, Edges: A-B B-C
}

// ExamplePrim demonstrates Prim's algorithm on a pentagon.
func ExamplePrim() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("A", "E", 12)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("C", "D", 3)
	_, _ = g.AddEdge("D", "E", 5)

	edges, total, err := prim_kruskal.Prim(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %g, Edges:", total)
	for _, e := range edges {
		fmt.Printf(" %s-%s", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 11, Edges: A-B B-C C-D D-E
}
