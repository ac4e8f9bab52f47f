package TreeMap

// Iterator is a position in a TreeMap. Iterators are comparable: two
// iterators are equal iff they denote the same position. The end position
// is the root sentinel, so End() stays the same however the tree changes.
//
// Advancing is cyclic: End().Next() is Begin() and End().Prev() is the last
// entry. An iterator stays valid until its own entry is erased or the map is
// cleared or reassigned.
type Iterator[K, V any] struct {
	n *node[K, V]
}

// Begin is the position of the smallest key, or End() on an empty map.
func (u *TreeMap[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{u.root.next()}
}

// End is the position after the largest key.
func (u *TreeMap[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{u.root}
}

// Valid reports whether it denotes an entry.
func (it Iterator[K, V]) Valid() bool {
	return it.n != nil && it.n.p != nil && it.n.l != nil
}

func (it Iterator[K, V]) entry() *node[K, V] {
	if !it.Valid() {
		panic("TreeMap: dereference of an end or invalidated iterator")
	}
	return it.n
}

func (it Iterator[K, V]) check() {
	if it.n == nil || it.n.detached() {
		panic("TreeMap: advance of an invalidated iterator")
	}
}

func (it Iterator[K, V]) Next() Iterator[K, V] {
	it.check()
	return Iterator[K, V]{it.n.next()}
}

func (it Iterator[K, V]) Prev() Iterator[K, V] {
	it.check()
	return Iterator[K, V]{it.n.prev()}
}

func (it Iterator[K, V]) Key() K {
	return it.entry().k
}

func (it Iterator[K, V]) Value() V {
	return it.entry().v
}

// Ptr to the value stored at it. Writes through it are visible in the map.
func (it Iterator[K, V]) Ptr() *V {
	return &it.entry().v
}

func (it Iterator[K, V]) SetValue(v V) {
	it.entry().v = v
}

func (it Iterator[K, V]) Entry() Entry[K, V] {
	n := it.entry()
	return Entry[K, V]{n.k, n.v}
}

// ReverseIterator walks a TreeMap from the largest key down. Next moves to
// the smaller key.
type ReverseIterator[K, V any] struct {
	Iterator[K, V]
}

// RBegin is the position of the largest key, or REnd() on an empty map.
func (u *TreeMap[K, V]) RBegin() ReverseIterator[K, V] {
	return ReverseIterator[K, V]{Iterator[K, V]{u.root.prev()}}
}

// REnd is the position before the smallest key. It is the same sentinel as
// End().
func (u *TreeMap[K, V]) REnd() ReverseIterator[K, V] {
	return ReverseIterator[K, V]{u.End()}
}

func (it ReverseIterator[K, V]) Next() ReverseIterator[K, V] {
	return ReverseIterator[K, V]{it.Iterator.Prev()}
}

func (it ReverseIterator[K, V]) Prev() ReverseIterator[K, V] {
	return ReverseIterator[K, V]{it.Iterator.Next()}
}

// Base returns the forward iterator at the same position.
func (it ReverseIterator[K, V]) Base() Iterator[K, V] {
	return it.Iterator
}

// ConstIterator is a read-only Iterator.
type ConstIterator[K, V any] struct {
	it Iterator[K, V]
}

func (u *TreeMap[K, V]) CBegin() ConstIterator[K, V] {
	return ConstIterator[K, V]{u.Begin()}
}

func (u *TreeMap[K, V]) CEnd() ConstIterator[K, V] {
	return ConstIterator[K, V]{u.End()}
}

func (c ConstIterator[K, V]) Valid() bool               { return c.it.Valid() }
func (c ConstIterator[K, V]) Next() ConstIterator[K, V] { return ConstIterator[K, V]{c.it.Next()} }
func (c ConstIterator[K, V]) Prev() ConstIterator[K, V] { return ConstIterator[K, V]{c.it.Prev()} }
func (c ConstIterator[K, V]) Key() K                    { return c.it.Key() }
func (c ConstIterator[K, V]) Value() V                  { return c.it.Value() }
func (c ConstIterator[K, V]) Entry() Entry[K, V]        { return c.it.Entry() }

// ConstReverseIterator is a read-only ReverseIterator.
type ConstReverseIterator[K, V any] struct {
	ConstIterator[K, V]
}

func (u *TreeMap[K, V]) CRBegin() ConstReverseIterator[K, V] {
	return ConstReverseIterator[K, V]{ConstIterator[K, V]{u.RBegin().Iterator}}
}

func (u *TreeMap[K, V]) CREnd() ConstReverseIterator[K, V] {
	return ConstReverseIterator[K, V]{u.CEnd()}
}

func (c ConstReverseIterator[K, V]) Next() ConstReverseIterator[K, V] {
	return ConstReverseIterator[K, V]{c.ConstIterator.Prev()}
}

func (c ConstReverseIterator[K, V]) Prev() ConstReverseIterator[K, V] {
	return ConstReverseIterator[K, V]{c.ConstIterator.Next()}
}
