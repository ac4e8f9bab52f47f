// Package TreeMap implements an ordered map on an unbalanced linked binary
// search tree. Every internal node has exactly two children; absent children
// are external sentinel leaves, and a permanent root sentinel owns the tree
// through its left child and doubles as the end position of iterators.
//
// No rebalancing is done: inserting keys in sorted order degrades every
// operation to linear time.
package TreeMap

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/emirpasic/gods/utils"
	"github.com/g-m-twostay/go-containers/Maps"
)

var _ Maps.Ordered[int, int] = (*TreeMap[int, int])(nil)

// TreeMap maps unique keys to values in key order. The zero value is not
// usable; create one with New, NewFunc or NewWith.
// Not safe for concurrent use.
type TreeMap[K, V any] struct {
	root *node[K, V] // sentinel, root.l is the true root
	sz   int
	cmp  func(a, b K) int
}

// Entry is a key with its value.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// New TreeMap ordered by the natural order of K.
func New[K cmp.Ordered, V any]() *TreeMap[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc creates a TreeMap ordered by cmp, which must define a strict total
// order: negative when a<b, zero when a==b, positive when a>b.
func NewFunc[K, V any](cmp func(a, b K) int) *TreeMap[K, V] {
	return &TreeMap[K, V]{root: newSentinel[K, V](), cmp: cmp}
}

// NewWith creates a TreeMap ordered by a gods comparator such as
// utils.IntComparator or utils.StringComparator.
func NewWith[K, V any](c utils.Comparator) *TreeMap[K, V] {
	return NewFunc[K, V](func(a, b K) int { return c(a, b) })
}

// Clone returns a deep copy of u sharing u's comparator.
func (u *TreeMap[K, V]) Clone() *TreeMap[K, V] {
	return &TreeMap[K, V]{root: u.root.clone(nil), sz: u.sz, cmp: u.cmp}
}

// Assign replaces the content of u with a deep copy of src. Iterators into u
// are invalidated. Assigning a map to itself does nothing.
func (u *TreeMap[K, V]) Assign(src *TreeMap[K, V]) {
	if u == src {
		return
	}
	u.root, u.sz, u.cmp = src.root.clone(nil), src.sz, src.cmp
}

// Clear removes every entry. Iterators into u are invalidated.
func (u *TreeMap[K, V]) Clear() {
	u.root, u.sz = newSentinel[K, V](), 0
}

func (u *TreeMap[K, V]) Size() int {
	return u.sz
}

func (u *TreeMap[K, V]) Empty() bool {
	return u.sz == 0
}

// locate returns the node holding k, or the external node where k would be
// inserted.
func (u *TreeMap[K, V]) locate(k K) *node[K, V] {
	n := u.root.l
	for n.internal() {
		c := u.cmp(k, n.k)
		if c == 0 {
			break
		} else if c < 0 {
			n = n.l
		} else {
			n = n.r
		}
	}
	return n
}

func (u *TreeMap[K, V]) insert(k K, v V) (*node[K, V], bool) {
	if n := u.locate(k); n.internal() {
		return n, false
	} else {
		n.expand(k, v)
		u.sz++
		return n, true
	}
}

// erase the internal node n and return the node of the next entry, or the
// sentinel if n held the maximum.
func (u *TreeMap[K, V]) erase(n *node[K, V]) (nx *node[K, V]) {
	u.sz--
	if n.l.external() {
		nx = n.next()
		n.l.removeAboveExternal().detach()
	} else if n.r.external() {
		nx = n.next()
		n.r.removeAboveExternal().detach()
	} else {
		// the successor has an external left child, splice it out and let it
		// take n's place so that only n's position is invalidated.
		s := n.r.leftmost()
		s.l.removeAboveExternal()
		s.l, s.r = n.l, n.r
		s.l.p, s.r.p = s, s
		n.replaceWith(s)
		n.detach()
		nx = s
	}
	return
}

// Find the position of k, or End() if k is absent.
func (u *TreeMap[K, V]) Find(k K) Iterator[K, V] {
	if n := u.locate(k); n.internal() {
		return Iterator[K, V]{n}
	}
	return u.End()
}

// Get the value of k.
func (u *TreeMap[K, V]) Get(k K) (v V, ok bool) {
	if n := u.locate(k); n.internal() {
		return n.v, true
	}
	return
}

// Index returns a pointer to the value of k, inserting the zero value first
// if k is absent. It never fails.
func (u *TreeMap[K, V]) Index(k K) *V {
	var zero V
	n, _ := u.insert(k, zero)
	return &n.v
}

// At returns a pointer to the value of k, or a *KeyNotFoundError if k is
// absent. At never inserts.
func (u *TreeMap[K, V]) At(k K) (*V, error) {
	if n := u.locate(k); n.internal() {
		return &n.v, nil
	}
	return nil, &KeyNotFoundError[K]{k}
}

// Insert k with value v. If k is already present, the existing entry is kept
// untouched and its position is returned with false.
func (u *TreeMap[K, V]) Insert(k K, v V) (Iterator[K, V], bool) {
	n, ok := u.insert(k, v)
	return Iterator[K, V]{n}, ok
}

// Put sets the value of k, inserting k when absent.
func (u *TreeMap[K, V]) Put(k K, v V) {
	*u.Index(k) = v
}

// Erase k and return the number of entries removed, which is 0 or 1.
func (u *TreeMap[K, V]) Erase(k K) int {
	if n := u.locate(k); n.internal() {
		u.erase(n)
		return 1
	}
	return 0
}

// EraseAt removes the entry at it and returns the position of the following
// entry. it must denote an entry of u; passing End() or an invalidated
// iterator panics. Only iterators to the erased entry are invalidated.
func (u *TreeMap[K, V]) EraseAt(it Iterator[K, V]) Iterator[K, V] {
	n := it.entry()
	top := n
	for top.p != nil {
		top = top.p
	}
	if top != u.root {
		panic("TreeMap: EraseAt with an iterator of another or a cleared map")
	}
	return Iterator[K, V]{u.erase(n)}
}

// Count returns 1 if k is present and 0 otherwise.
func (u *TreeMap[K, V]) Count(k K) int {
	if u.locate(k).internal() {
		return 1
	}
	return 0
}

func (u *TreeMap[K, V]) Contains(k K) bool {
	return u.locate(k).internal()
}

// Min returns the entry with the smallest key.
func (u *TreeMap[K, V]) Min() (k K, v V, ok bool) {
	if u.sz > 0 {
		n := u.root.l.leftmost()
		return n.k, n.v, true
	}
	return
}

// Max returns the entry with the largest key.
func (u *TreeMap[K, V]) Max() (k K, v V, ok bool) {
	if u.sz > 0 {
		n := u.root.l.rightmost()
		return n.k, n.v, true
	}
	return
}

// lowerBound is the first node with key >= k, or the sentinel.
func (u *TreeMap[K, V]) lowerBound(k K) *node[K, V] {
	res := u.root
	for n := u.root.l; n.internal(); {
		if u.cmp(n.k, k) >= 0 {
			res, n = n, n.l
		} else {
			n = n.r
		}
	}
	return res
}

// upperBound is the first node with key > k, or the sentinel.
func (u *TreeMap[K, V]) upperBound(k K) *node[K, V] {
	res := u.root
	for n := u.root.l; n.internal(); {
		if u.cmp(n.k, k) > 0 {
			res, n = n, n.l
		} else {
			n = n.r
		}
	}
	return res
}

// below is the last node with key < k, or the sentinel.
func (u *TreeMap[K, V]) below(k K) *node[K, V] {
	res := u.root
	for n := u.root.l; n.internal(); {
		if u.cmp(n.k, k) < 0 {
			res, n = n, n.r
		} else {
			n = n.l
		}
	}
	return res
}

// LowerBound returns the position of the first key not less than k.
func (u *TreeMap[K, V]) LowerBound(k K) Iterator[K, V] {
	return Iterator[K, V]{u.lowerBound(k)}
}

// UpperBound returns the position of the first key greater than k.
func (u *TreeMap[K, V]) UpperBound(k K) Iterator[K, V] {
	return Iterator[K, V]{u.upperBound(k)}
}

// All returns an iterator over the entries of u in ascending key order.
// Erasing the yielded key inside the loop is allowed; iteration resumes at
// the next larger key.
func (u *TreeMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := u.root.next(); !n.sentinel() && yield(n.k, n.v); {
			if n.detached() {
				n = u.upperBound(n.k)
			} else {
				n = n.next()
			}
		}
	}
}

// Backward is All in descending key order.
func (u *TreeMap[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := u.root.prev(); !n.sentinel() && yield(n.k, n.v); {
			if n.detached() {
				n = u.below(n.k)
			} else {
				n = n.prev()
			}
		}
	}
}

// Keys in ascending order.
func (u *TreeMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range u.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values in ascending key order.
func (u *TreeMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range u.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Entries collects every entry in ascending key order.
func (u *TreeMap[K, V]) Entries() []Entry[K, V] {
	es := make([]Entry[K, V], 0, u.sz)
	for k, v := range u.All() {
		es = append(es, Entry[K, V]{k, v})
	}
	return es
}

// Depth of the tree, counting internal nodes only. An empty map has depth 0.
func (u *TreeMap[K, V]) Depth() int {
	return u.root.l.depth()
}

func (u *TreeMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("TreeMap\nmap[")
	first := true
	for k, v := range u.All() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v:%v", k, v)
	}
	sb.WriteByte(']')
	return sb.String()
}

// Corrupt reports whether u violates any of its structural invariants.
func (u *TreeMap[K, V]) Corrupt() bool {
	return u.verify() != nil
}

func (u *TreeMap[K, V]) verify() error {
	if !u.root.sentinel() || u.root.r == nil || u.root.r.internal() || u.root.l.p != u.root || u.root.r.p != u.root {
		return fmt.Errorf("broken root sentinel")
	}
	count := 0
	var walk func(n *node[K, V], lo, hi *K) error
	walk = func(n *node[K, V], lo, hi *K) error {
		if n.external() {
			if n.r != nil {
				return fmt.Errorf("external node with a right child")
			}
			return nil
		}
		if n.r == nil {
			return fmt.Errorf("internal node %v has one child", n.k)
		}
		if n.l.p != n || n.r.p != n {
			return fmt.Errorf("parent link of a child of %v is broken", n.k)
		}
		if lo != nil && u.cmp(*lo, n.k) >= 0 || hi != nil && u.cmp(n.k, *hi) >= 0 {
			return fmt.Errorf("key %v is out of order", n.k)
		}
		count++
		if err := walk(n.l, lo, &n.k); err != nil {
			return err
		}
		return walk(n.r, &n.k, hi)
	}
	if err := walk(u.root.l, nil, nil); err != nil {
		return err
	}
	if count != u.sz {
		return fmt.Errorf("size is %d but the tree holds %d entries", u.sz, count)
	}
	return nil
}
