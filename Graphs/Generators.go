package Graphs

import (
	"math"
	"math/rand/v2"
)

// Complete graph on n vertices with a directed edge between every ordered
// pair. Weights are uniform in [0, 1).
func Complete(n int, r *rand.Rand) *Graph[int, float64] {
	g := New[int, float64]()
	for i := range n {
		g.InsertVertex(i)
	}
	for s := range n {
		for t := range n {
			if s != t {
				g.InsertEdge(VertexID(s), VertexID(t), r.Float64())
			}
		}
	}
	return g
}

// Mesh is a square grid of undirected edges. n is rounded down to a square.
func Mesh(n int, r *rand.Rand) *Graph[int, float64] {
	side := int(math.Sqrt(float64(n)))
	n = side * side
	g := New[int, float64]()
	for i := range n {
		g.InsertVertex(i)
	}
	for i := range n {
		if x := i + 1; x%side != 0 {
			g.InsertEdgeUndirected(VertexID(i), VertexID(x), r.Float64())
		}
		if y := i + side; y < n {
			g.InsertEdgeUndirected(VertexID(i), VertexID(y), r.Float64())
		}
	}
	return g
}

// Random is a connected graph: a path through all n vertices plus
// n*sqrt(n)/2 random undirected edges. Picks that hit an existing pair only
// reweigh it.
func Random(n int, r *rand.Rand) *Graph[int, float64] {
	g := New[int, float64]()
	for i := range n {
		g.InsertVertex(i)
	}
	for i := 0; i < n-1; i++ {
		g.InsertEdgeUndirected(VertexID(i), VertexID(i+1), r.Float64())
	}
	if n < 2 {
		return g
	}
	extra := int(float64(n) * math.Sqrt(float64(n)) / 2)
	for range extra {
		s := r.IntN(n)
		t := r.IntN(n - 1)
		if t >= s {
			t++
		}
		g.InsertEdgeUndirected(VertexID(s), VertexID(t), r.Float64())
	}
	return g
}
