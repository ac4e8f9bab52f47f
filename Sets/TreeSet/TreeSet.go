// Package TreeSet is an ordered set on top of TreeMap.
package TreeSet

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/g-m-twostay/go-containers/Maps/TreeMap"
	"github.com/g-m-twostay/go-containers/Sets"
)

var (
	_ Sets.Ordered[int]     = (*TreeSet[int])(nil)
	_ Sets.ExtendedSet[int] = (*TreeSet[int])(nil)
)

type TreeSet[E any] struct {
	m *TreeMap.TreeMap[E, struct{}]
}

func New[E cmp.Ordered]() *TreeSet[E] {
	return &TreeSet[E]{TreeMap.New[E, struct{}]()}
}

func NewFunc[E any](cmp func(a, b E) int) *TreeSet[E] {
	return &TreeSet[E]{TreeMap.NewFunc[E, struct{}](cmp)}
}

// Of builds a set holding es.
func Of[E cmp.Ordered](es ...E) *TreeSet[E] {
	s := New[E]()
	for _, e := range es {
		s.Put(e)
	}
	return s
}

func (u *TreeSet[E]) Clone() *TreeSet[E] {
	return &TreeSet[E]{u.m.Clone()}
}

// Put e in the set. Returns false if e was already present.
func (u *TreeSet[E]) Put(e E) bool {
	_, ok := u.m.Insert(e, struct{}{})
	return ok
}

func (u *TreeSet[E]) Has(e E) bool {
	return u.m.Contains(e)
}

// Remove e from the set. Returns true if e was present.
func (u *TreeSet[E]) Remove(e E) bool {
	return u.m.Erase(e) == 1
}

func (u *TreeSet[E]) Size() int {
	return u.m.Size()
}

func (u *TreeSet[E]) Empty() bool {
	return u.m.Empty()
}

func (u *TreeSet[E]) Clear() {
	u.m.Clear()
}

// Take removes and returns the smallest element. It panics on an empty set.
func (u *TreeSet[E]) Take() E {
	if u.m.Empty() {
		panic("TreeSet: Take from an empty set")
	}
	it := u.m.Begin()
	e := it.Key()
	u.m.EraseAt(it)
	return e
}

// Range calls f on each element in ascending order until f returns false.
func (u *TreeSet[E]) Range(f func(E) bool) {
	for e := range u.m.Keys() {
		if !f(e) {
			return
		}
	}
}

func (u *TreeSet[E]) All() iter.Seq[E] {
	return u.m.Keys()
}

func (u *TreeSet[E]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		for e := range u.m.Backward() {
			if !yield(e) {
				return
			}
		}
	}
}

func (u *TreeSet[E]) Min() (e E, ok bool) {
	e, _, ok = u.m.Min()
	return
}

func (u *TreeSet[E]) Max() (e E, ok bool) {
	e, _, ok = u.m.Max()
	return
}

// Ceiling is the smallest element not less than e.
func (u *TreeSet[E]) Ceiling(e E) (E, bool) {
	if it := u.m.LowerBound(e); it.Valid() {
		return it.Key(), true
	}
	return *new(E), false
}

// Higher is the smallest element greater than e.
func (u *TreeSet[E]) Higher(e E) (E, bool) {
	if it := u.m.UpperBound(e); it.Valid() {
		return it.Key(), true
	}
	return *new(E), false
}

// PutAll adds every element of o and returns how many were new.
func (u *TreeSet[E]) PutAll(o Sets.Set[E]) (n int) {
	o.Range(func(e E) bool {
		if u.Put(e) {
			n++
		}
		return true
	})
	return
}

// RemoveAll removes every element of o and returns how many were present.
func (u *TreeSet[E]) RemoveAll(o Sets.Set[E]) (n int) {
	o.Range(func(e E) bool {
		if u.Remove(e) {
			n++
		}
		return true
	})
	return
}

func (u *TreeSet[E]) Eq(o Sets.Set[E]) bool {
	if u.Size() != o.Size() {
		return false
	}
	eq := true
	o.Range(func(e E) bool {
		eq = u.Has(e)
		return eq
	})
	return eq
}

func (u *TreeSet[E]) Union(o Sets.Set[E]) {
	u.PutAll(o)
}

// Intersect keeps only the elements also in o.
func (u *TreeSet[E]) Intersect(o Sets.Set[E]) {
	for e := range u.m.Keys() {
		if !o.Has(e) {
			u.m.Erase(e)
		}
	}
}

func (u *TreeSet[E]) String() string {
	var sb strings.Builder
	sb.WriteString("TreeSet\n[")
	sep := ""
	for e := range u.m.Keys() {
		fmt.Fprint(&sb, sep, e)
		sep = " "
	}
	sb.WriteByte(']')
	return sb.String()
}
