package main

import (
	"log/slog"
	"math/rand/v2"

	"github.com/g-m-twostay/go-containers/Graphs"
	"github.com/urfave/cli/v2"
)

func timeGraphs(cctx *cli.Context) error {
	r := newRand(cctx)
	for _, c := range []struct {
		name string
		n    int
		init func(int, *rand.Rand) *Graphs.Graph[int, float64]
	}{
		{"complete", cctx.Int("complete"), Graphs.Complete},
		{"mesh", cctx.Int("mesh"), Graphs.Mesh},
		{"random", cctx.Int("random"), Graphs.Random},
	} {
		measure(cctx, "graph/"+c.name, c.n, nil, func() {
			timeGraph(c.init(c.n, r), r)
		})
	}
	return nil
}

// timeGraph searches g, probes random vertices and edges, erases a quarter
// of the edges and searches again.
func timeGraph(g *Graphs.Graph[int, float64], r *rand.Rand) {
	nv := g.NumVertices()
	if nv == 0 {
		return
	}
	trees := Graphs.BreadthFirstSearch(g).Size()

	var sum float64
	for range g.NumEdges() / 2 {
		if r.IntN(2) == 0 {
			if v, ok := g.FindVertex(Graphs.VertexID(r.IntN(nv))); ok {
				sum += float64(v.Property)
			}
		} else if e, ok := g.FindEdge(Graphs.EdgeID{Source: Graphs.VertexID(r.IntN(nv)), Target: Graphs.VertexID(r.IntN(nv))}); ok {
			sum += e.Property
		}
	}

	for erased, quarter := 0, g.NumEdges()/4; erased < quarter; {
		id := Graphs.EdgeID{Source: Graphs.VertexID(r.IntN(nv)), Target: Graphs.VertexID(r.IntN(nv))}
		if g.EraseEdge(id) == nil {
			erased++
		}
	}
	after := Graphs.BreadthFirstSearch(g).Size()
	slog.Debug("graph", "vertices", nv, "edges", g.NumEdges(), "reached", trees, "reached_after_erase", after, "probe_sum", sum)
}
