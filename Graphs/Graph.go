// Package Graphs is a directed graph stored as adjacency lists, with the
// classic traversal, shortest path and spanning tree algorithms.
package Graphs

import (
	"iter"

	"github.com/g-m-twostay/go-containers/Maps/TreeMap"
	"golang.org/x/exp/constraints"
)

// Weight is the type of edge properties the algorithms can add and compare.
type Weight interface {
	constraints.Integer | constraints.Float
}

// VertexID is the descriptor of a vertex. IDs are handed out in increasing
// order and never reused until Clear.
type VertexID int

// EdgeID is the descriptor of an edge. There is at most one edge per ordered
// pair of vertices.
type EdgeID struct {
	Source, Target VertexID
}

type Vertex[VP any, EP Weight] struct {
	id       VertexID
	Property VP
	out, in  *TreeMap.TreeMap[VertexID, *Edge[EP]] // keyed by the other end
}

func (u *Vertex[VP, EP]) ID() VertexID {
	return u.id
}

func (u *Vertex[VP, EP]) OutDegree() int {
	return u.out.Size()
}

func (u *Vertex[VP, EP]) InDegree() int {
	return u.in.Size()
}

type Edge[EP Weight] struct {
	id       EdgeID
	Property EP
}

func (u *Edge[EP]) ID() EdgeID {
	return u.id
}

func (u *Edge[EP]) Source() VertexID {
	return u.id.Source
}

func (u *Edge[EP]) Target() VertexID {
	return u.id.Target
}

// Graph is directed; undirected edges are stored as a pair of directed ones.
// Not safe for concurrent use.
type Graph[VP any, EP Weight] struct {
	verts  *TreeMap.TreeMap[VertexID, *Vertex[VP, EP]]
	nextID VertexID
	ne     int
}

func New[VP any, EP Weight]() *Graph[VP, EP] {
	return &Graph[VP, EP]{verts: TreeMap.New[VertexID, *Vertex[VP, EP]]()}
}

func (u *Graph[VP, EP]) NumVertices() int {
	return u.verts.Size()
}

func (u *Graph[VP, EP]) NumEdges() int {
	return u.ne
}

// bound is one past the largest VertexID ever handed out.
func (u *Graph[VP, EP]) bound() int {
	return int(u.nextID)
}

func (u *Graph[VP, EP]) InsertVertex(p VP) VertexID {
	id := u.nextID
	u.nextID++
	u.verts.Put(id, &Vertex[VP, EP]{
		id:       id,
		Property: p,
		out:      TreeMap.New[VertexID, *Edge[EP]](),
		in:       TreeMap.New[VertexID, *Edge[EP]](),
	})
	return id
}

func (u *Graph[VP, EP]) vertex(id VertexID) (*Vertex[VP, EP], error) {
	if v, ok := u.verts.Get(id); ok {
		return v, nil
	}
	return nil, &VertexNotFoundError{id}
}

// InsertEdge from s to t with weight w. An existing edge between the two only
// has its weight replaced.
func (u *Graph[VP, EP]) InsertEdge(s, t VertexID, w EP) (EdgeID, error) {
	vs, err := u.vertex(s)
	if err != nil {
		return EdgeID{}, err
	}
	vt, err := u.vertex(t)
	if err != nil {
		return EdgeID{}, err
	}
	id := EdgeID{s, t}
	if e, ok := vs.out.Get(t); ok {
		e.Property = w
		return id, nil
	}
	e := &Edge[EP]{id, w}
	vs.out.Put(t, e)
	vt.in.Put(s, e)
	u.ne++
	return id, nil
}

// InsertEdgeUndirected inserts the edges s->t and t->s.
func (u *Graph[VP, EP]) InsertEdgeUndirected(s, t VertexID, w EP) error {
	if _, err := u.InsertEdge(s, t, w); err != nil {
		return err
	}
	_, err := u.InsertEdge(t, s, w)
	return err
}

func (u *Graph[VP, EP]) EraseEdge(id EdgeID) error {
	vs, err := u.vertex(id.Source)
	if err != nil {
		return &EdgeNotFoundError{id}
	}
	if vs.out.Erase(id.Target) == 0 {
		return &EdgeNotFoundError{id}
	}
	vt, _ := u.verts.Get(id.Target)
	vt.in.Erase(id.Source)
	u.ne--
	return nil
}

// EraseVertex removes the vertex and every edge incident to it.
func (u *Graph[VP, EP]) EraseVertex(id VertexID) error {
	v, err := u.vertex(id)
	if err != nil {
		return err
	}
	for t := range v.out.Keys() {
		vt, _ := u.verts.Get(t)
		vt.in.Erase(id)
		u.ne--
	}
	// a self loop is already gone from v.in
	for s := range v.in.Keys() {
		vs, _ := u.verts.Get(s)
		vs.out.Erase(id)
		u.ne--
	}
	u.verts.Erase(id)
	return nil
}

func (u *Graph[VP, EP]) FindVertex(id VertexID) (*Vertex[VP, EP], bool) {
	return u.verts.Get(id)
}

func (u *Graph[VP, EP]) FindEdge(id EdgeID) (*Edge[EP], bool) {
	if v, ok := u.verts.Get(id.Source); ok {
		return v.out.Get(id.Target)
	}
	return nil, false
}

// Vertices in increasing ID order.
func (u *Graph[VP, EP]) Vertices() iter.Seq[*Vertex[VP, EP]] {
	return func(yield func(*Vertex[VP, EP]) bool) {
		for _, v := range u.verts.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Edges ordered by source, then target.
func (u *Graph[VP, EP]) Edges() iter.Seq[*Edge[EP]] {
	return func(yield func(*Edge[EP]) bool) {
		for _, v := range u.verts.All() {
			for _, e := range v.out.All() {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// OutEdges of v ordered by target. Empty if v does not exist.
func (u *Graph[VP, EP]) OutEdges(id VertexID) iter.Seq[*Edge[EP]] {
	return func(yield func(*Edge[EP]) bool) {
		if v, ok := u.verts.Get(id); ok {
			for _, e := range v.out.All() {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// InEdges of v ordered by source. Empty if v does not exist.
func (u *Graph[VP, EP]) InEdges(id VertexID) iter.Seq[*Edge[EP]] {
	return func(yield func(*Edge[EP]) bool) {
		if v, ok := u.verts.Get(id); ok {
			for _, e := range v.in.All() {
				if !yield(e) {
					return
				}
			}
		}
	}
}

func (u *Graph[VP, EP]) Clear() {
	u.verts.Clear()
	u.nextID, u.ne = 0, 0
}
