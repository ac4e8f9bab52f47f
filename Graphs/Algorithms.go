package Graphs

import (
	"cmp"

	"github.com/emirpasic/gods/queues/priorityqueue"
	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/g-m-twostay/go-containers/Maps/TreeMap"
	"github.com/g-m-twostay/go-containers/Queues"
	"github.com/g-m-twostay/go-containers/Sorts"
)

// ParentMap maps each reached vertex to its parent in a search or spanning
// forest. Roots are their own parents.
type ParentMap = *TreeMap.TreeMap[VertexID, VertexID]

func newParentMap() ParentMap {
	return TreeMap.New[VertexID, VertexID]()
}

// BreadthFirstSearch covers every vertex, starting a new tree at each
// unvisited vertex in ID order.
func BreadthFirstSearch[VP any, EP Weight](g *Graph[VP, EP]) ParentMap {
	p := newParentMap()
	visited := Go_Containers.NewBitArray(g.bound())
	var q Queues.ListQueue[VertexID]
	for root := range g.Vertices() {
		if visited.Get(int(root.id)) {
			continue
		}
		visited.Up(int(root.id))
		p.Put(root.id, root.id)
		q.Push(root.id)
		for !q.Empty() {
			v, _ := q.Pop()
			for e := range g.OutEdges(v) {
				if t := e.Target(); !visited.Get(int(t)) {
					visited.Up(int(t))
					p.Put(t, v)
					q.Push(t)
				}
			}
		}
	}
	return p
}

// DepthFirstSearch covers every vertex like BreadthFirstSearch. Out edges are
// explored in target order.
func DepthFirstSearch[VP any, EP Weight](g *Graph[VP, EP]) ParentMap {
	p := newParentMap()
	visited := Go_Containers.NewBitArray(g.bound())
	var st Queues.VectorStack[EdgeID] // Target reached from Source
	var buf []VertexID
	for root := range g.Vertices() {
		if visited.Get(int(root.id)) {
			continue
		}
		st.Push(EdgeID{root.id, root.id})
		for !st.Empty() {
			e, _ := st.Pop()
			if visited.Get(int(e.Target)) {
				continue
			}
			visited.Up(int(e.Target))
			p.Put(e.Target, e.Source)
			buf = buf[:0]
			for out := range g.OutEdges(e.Target) {
				if !visited.Get(int(out.Target())) {
					buf = append(buf, out.Target())
				}
			}
			for i := len(buf) - 1; i >= 0; i-- {
				st.Push(EdgeID{e.Target, buf[i]})
			}
		}
	}
	return p
}

type queued[EP Weight] struct {
	v, from VertexID
	d       EP
}

func newFrontier[EP Weight]() *priorityqueue.Queue {
	return priorityqueue.NewWith(func(a, b interface{}) int {
		return cmp.Compare(a.(queued[EP]).d, b.(queued[EP]).d)
	})
}

// Dijkstra computes shortest paths from src. Vertices not reachable from src
// are absent from both maps. Any negative weight fails with
// ErrNegativeWeight.
func Dijkstra[VP any, EP Weight](g *Graph[VP, EP], src VertexID) (ParentMap, *TreeMap.TreeMap[VertexID, EP], error) {
	if _, ok := g.FindVertex(src); !ok {
		return nil, nil, &VertexNotFoundError{src}
	}
	for e := range g.Edges() {
		if e.Property < 0 {
			return nil, nil, ErrNegativeWeight
		}
	}
	p, d := newParentMap(), TreeMap.New[VertexID, EP]()
	done := Go_Containers.NewBitArray(g.bound())
	pq := newFrontier[EP]()
	pq.Enqueue(queued[EP]{src, src, 0})
	for !pq.Empty() {
		x, _ := pq.Dequeue()
		it := x.(queued[EP])
		if done.Get(int(it.v)) {
			continue
		}
		done.Up(int(it.v))
		p.Put(it.v, it.from)
		d.Put(it.v, it.d)
		for e := range g.OutEdges(it.v) {
			// stale entries are skipped when dequeued
			if t := e.Target(); !done.Get(int(t)) {
				pq.Enqueue(queued[EP]{t, it.v, it.d + e.Property})
			}
		}
	}
	return p, d, nil
}

// BellmanFord computes shortest paths from src with negative weights allowed.
// A negative cycle reachable from src fails with ErrNegativeCycle.
func BellmanFord[VP any, EP Weight](g *Graph[VP, EP], src VertexID) (ParentMap, *TreeMap.TreeMap[VertexID, EP], error) {
	if _, ok := g.FindVertex(src); !ok {
		return nil, nil, &VertexNotFoundError{src}
	}
	p, d := newParentMap(), TreeMap.New[VertexID, EP]()
	p.Put(src, src)
	d.Put(src, 0)
	relax := func() (changed bool) {
		for e := range g.Edges() {
			ds, ok := d.Get(e.Source())
			if !ok {
				continue
			}
			if dt, ok := d.Get(e.Target()); !ok || ds+e.Property < dt {
				d.Put(e.Target(), ds+e.Property)
				p.Put(e.Target(), e.Source())
				changed = true
			}
		}
		return
	}
	for range g.NumVertices() - 1 {
		if !relax() {
			return p, d, nil
		}
	}
	if relax() {
		return nil, nil, ErrNegativeCycle
	}
	return p, d, nil
}

// Prim grows a minimum spanning forest, treating every edge as undirected.
// It returns the forest and its total weight.
func Prim[VP any, EP Weight](g *Graph[VP, EP]) (ParentMap, EP) {
	p := newParentMap()
	var total EP
	in := Go_Containers.NewBitArray(g.bound())
	pq := newFrontier[EP]()
	push := func(v VertexID) {
		for e := range g.OutEdges(v) {
			if !in.Get(int(e.Target())) {
				pq.Enqueue(queued[EP]{e.Target(), v, e.Property})
			}
		}
		for e := range g.InEdges(v) {
			if !in.Get(int(e.Source())) {
				pq.Enqueue(queued[EP]{e.Source(), v, e.Property})
			}
		}
	}
	for root := range g.Vertices() {
		if in.Get(int(root.id)) {
			continue
		}
		in.Up(int(root.id))
		p.Put(root.id, root.id)
		push(root.id)
		for !pq.Empty() {
			x, _ := pq.Dequeue()
			it := x.(queued[EP])
			if in.Get(int(it.v)) {
				continue
			}
			in.Up(int(it.v))
			p.Put(it.v, it.from)
			total += it.d
			push(it.v)
		}
	}
	return p, total
}

// Kruskal picks edges by increasing weight, skipping those that would close a
// cycle. Edges are treated as undirected. It returns the chosen edges and
// their total weight.
func Kruskal[VP any, EP Weight](g *Graph[VP, EP]) ([]EdgeID, EP) {
	edges := make([]*Edge[EP], 0, g.NumEdges())
	for e := range g.Edges() {
		edges = append(edges, e)
	}
	Sorts.MergeSort(edges, func(a, b *Edge[EP]) bool { return a.Property < b.Property })

	// union-find forest, a missing vertex is its own root
	parent := TreeMap.New[VertexID, VertexID]()
	var find func(v VertexID) VertexID
	find = func(v VertexID) VertexID {
		pv, ok := parent.Get(v)
		if !ok || pv == v {
			return v
		}
		r := find(pv)
		parent.Put(v, r)
		return r
	}
	var chosen []EdgeID
	var total EP
	for _, e := range edges {
		if rs, rt := find(e.Source()), find(e.Target()); rs != rt {
			parent.Put(rs, rt)
			chosen = append(chosen, e.id)
			total += e.Property
		}
	}
	return chosen, total
}
