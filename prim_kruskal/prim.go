// SPDX-License-Identifier: MIT
// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It assumes an undirected, weighted *core.Graph and grows the MST from a specified root vertex using a min-heap.
package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/poinet/core"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by growing outwards from a specified root vertex using a min-heap.
//
// Error Conditions:
//   - ErrInvalidGraph       : if graph is nil, directed, or unweighted.
//   - ErrEmptyRoot          : if the provided root string is empty.
//   - core.ErrVertexNotFound: if the root vertex does not exist in the graph.
//   - ErrDisconnected       : if |V| == 0 or the graph is not fully connected.
//
// The heap uses the same total edge order as Kruskal, so on graphs where that
// order is strict both algorithms return the same edge set.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(graph *core.Graph, root string) ([]core.Edge, float64, error) {
	if err := validate(graph); err != nil {
		return nil, 0, err
	}

	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return nil, 0, core.ErrVertexNotFound
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	n := len(vertices)
	visited := make(map[string]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var totalWeight float64

	pq := &edgePQ{}
	heap.Init(pq)

	// grow marks v as visited and pushes every edge leading out of the tree.
	grow := func(v string) error {
		visited[v] = true
		neighbors, err := graph.Neighbors(v)
		if err != nil {
			return err
		}
		for _, e := range neighbors {
			if to := e.Other(v); !visited[to] {
				heap.Push(pq, frontierEdge{edge: e, to: to})
			}
		}

		return nil
	}

	if err := grow(root); err != nil {
		return nil, 0, err
	}
	for pq.Len() > 0 && len(mst) < n-1 {
		fe := heap.Pop(pq).(frontierEdge)
		if visited[fe.to] {
			continue
		}
		mst = append(mst, *fe.edge)
		totalWeight += fe.edge.Weight
		if err := grow(fe.to); err != nil {
			return nil, 0, err
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// frontierEdge is a heap entry: a candidate edge and the vertex it would add.
type frontierEdge struct {
	edge *core.Edge
	to   string
}

// edgePQ implements heap.Interface for a min-heap of frontier edges ordered by edgeLess.
type edgePQ []frontierEdge

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool { return edgeLess(pq[i].edge, pq[j].edge) }

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(frontierEdge)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	fe := old[n-1]
	*pq = old[:n-1]

	return fe
}
