// Package Maps holds the interfaces shared by the map containers of this
// module. Implementations live in subpackages.
package Maps

import "iter"

// Map is an associative container with unique keys.
type Map[K, V any] interface {
	// Get the value of a key. The bool is false when the key is absent.
	Get(K) (V, bool)
	// Index returns a pointer to the value of a key, inserting the zero value
	// first when the key is absent.
	Index(K) *V
	// At returns a pointer to the value of a key, or an error when the key is
	// absent. At never inserts.
	At(K) (*V, error)
	// Put sets the value of a key.
	Put(K, V)
	// Erase a key, returning the number of entries removed.
	Erase(K) int
	// Count returns the number of entries with the key, 0 or 1.
	Count(K) int
	Size() int
	Empty() bool
	Clear()
	// All entries. The order is implementation defined.
	All() iter.Seq2[K, V]
}

// Ordered is a Map that iterates in ascending key order.
type Ordered[K, V any] interface {
	Map[K, V]
	Min() (K, V, bool)
	Max() (K, V, bool)
	Backward() iter.Seq2[K, V]
	Keys() iter.Seq[K]
	Values() iter.Seq[V]
}
