package Sets

import "iter"

type Set[E any] interface {
	Put(E) bool
	Has(E) bool
	Remove(E) bool
	Size() int
	// Take removes and returns some element. Panics on an empty set.
	Take() E
	Range(func(E) bool)
}

// Ordered is a Set that ranges in ascending order.
type Ordered[E any] interface {
	Set[E]
	Min() (E, bool)
	Max() (E, bool)
	All() iter.Seq[E]
}

// ExtendedSet operations mutate the receiver.
type ExtendedSet[E any] interface {
	PutAll(Set[E]) int
	RemoveAll(Set[E]) int
	Eq(Set[E]) bool
	Union(Set[E])
	Intersect(Set[E])
}
