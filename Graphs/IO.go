package Graphs

import (
	"bufio"
	"fmt"
	"io"
)

// ReadFrom parses a graph in the text format
//
//	nv ne
//	v_0 v_1 ... v_(nv-1)
//	src dst weight    (ne lines)
//
// Tokens are separated by any white space. Vertex tokens are turned into
// properties by parseVertex; src and dst index the vertex list.
func ReadFrom[VP any, EP Weight](r io.Reader, parseVertex func(string) (VP, error)) (*Graph[VP, EP], error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	next := func(what string, dst any) error {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return err
			}
			return fmt.Errorf("Graphs: unexpected end of input reading %s", what)
		}
		if dst == nil {
			return nil
		}
		if _, err := fmt.Sscan(sc.Text(), dst); err != nil {
			return fmt.Errorf("Graphs: reading %s: %w", what, err)
		}
		return nil
	}

	var nv, ne int
	if err := next("vertex count", &nv); err != nil {
		return nil, err
	}
	if err := next("edge count", &ne); err != nil {
		return nil, err
	}
	if nv < 0 || ne < 0 {
		return nil, fmt.Errorf("Graphs: negative counts %d %d", nv, ne)
	}
	g := New[VP, EP]()
	for i := range nv {
		if err := next(fmt.Sprint("vertex ", i), nil); err != nil {
			return nil, err
		}
		p, err := parseVertex(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("Graphs: vertex %d: %w", i, err)
		}
		g.InsertVertex(p)
	}
	for i := range ne {
		var s, t VertexID
		var w EP
		if err := next(fmt.Sprint("edge ", i), &s); err != nil {
			return nil, err
		}
		if err := next(fmt.Sprint("edge ", i), &t); err != nil {
			return nil, err
		}
		if err := next(fmt.Sprint("edge ", i), &w); err != nil {
			return nil, err
		}
		if _, err := g.InsertEdge(s, t, w); err != nil {
			return nil, fmt.Errorf("Graphs: edge %d: %w", i, err)
		}
	}
	return g, nil
}

// WriteTo writes u in the format read by ReadFrom. Vertices are renumbered
// densely in ID order, so reading the output back yields IDs 0..nv-1.
func (u *Graph[VP, EP]) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	write := func(format string, a ...any) {
		c, _ := fmt.Fprintf(bw, format, a...)
		n += int64(c)
	}
	write("%d %d\n", u.NumVertices(), u.NumEdges())
	index := make(map[VertexID]int, u.NumVertices())
	for v := range u.Vertices() {
		if len(index) > 0 {
			write(" ")
		}
		index[v.id] = len(index)
		write("%v", v.Property)
	}
	write("\n")
	for e := range u.Edges() {
		write("%d %d %v\n", index[e.id.Source], index[e.id.Target], e.Property)
	}
	return n, bw.Flush()
}
