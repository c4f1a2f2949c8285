// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/poinet/bfs"
	"github.com/katalvlaran/poinet/core"
)

// ExampleUnreachable reports terminals cut off from the first one.
func ExampleUnreachable() {
	g := core.NewGraph()
	_, _ = g.AddEdge("school", "library", 0)
	_ = g.AddVertex("island")

	missing, _ := bfs.Unreachable(context.Background(), g, "school", []string{"library", "island"})
	fmt.Println(missing)
	// Output: [island]
}
