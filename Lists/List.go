package Lists

import "iter"

// Element of a List.
type Element[T any] struct {
	next, prev *Element[T]
	list       *List[T]
	Value      T
}

// Next element, or nil at the back.
func (u *Element[T]) Next() *Element[T] {
	if n := u.next; u.list != nil && n != &u.list.root {
		return n
	}
	return nil
}

// Prev element, or nil at the front.
func (u *Element[T]) Prev() *Element[T] {
	if p := u.prev; u.list != nil && p != &u.list.root {
		return p
	}
	return nil
}

// List is a doubly linked list. The root element is a sentinel closing the
// ring: root.next is the front, root.prev the back. The zero value is an
// empty list ready to use.
type List[T any] struct {
	root Element[T]
	sz   int
}

func New[T any]() *List[T] {
	return new(List[T]).init()
}

// Of makes a List holding vals in order.
func Of[T any](vals ...T) *List[T] {
	l := New[T]()
	for _, v := range vals {
		l.PushBack(v)
	}
	return l
}

func (u *List[T]) init() *List[T] {
	u.root.next, u.root.prev = &u.root, &u.root
	u.sz = 0
	return u
}

func (u *List[T]) lazyInit() {
	if u.root.next == nil {
		u.init()
	}
}

func (u *List[T]) Len() int {
	return u.sz
}

func (u *List[T]) Empty() bool {
	return u.sz == 0
}

// Front element, or nil if the list is empty.
func (u *List[T]) FrontElement() *Element[T] {
	if u.sz == 0 {
		return nil
	}
	return u.root.next
}

// Back element, or nil if the list is empty.
func (u *List[T]) BackElement() *Element[T] {
	if u.sz == 0 {
		return nil
	}
	return u.root.prev
}

// Front value. Panics on an empty list.
func (u *List[T]) Front() T {
	if u.sz == 0 {
		panic("Lists: Front of an empty List")
	}
	return u.root.next.Value
}

// Back value. Panics on an empty list.
func (u *List[T]) Back() T {
	if u.sz == 0 {
		panic("Lists: Back of an empty List")
	}
	return u.root.prev.Value
}

// insertAfter puts a new element holding v after at.
func (u *List[T]) insertAfter(v T, at *Element[T]) *Element[T] {
	e := &Element[T]{next: at.next, prev: at, list: u, Value: v}
	at.next.prev = e
	at.next = e
	u.sz++
	return e
}

func (u *List[T]) remove(e *Element[T]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next, e.prev, e.list = nil, nil, nil
	u.sz--
}

func (u *List[T]) PushFront(v T) *Element[T] {
	u.lazyInit()
	return u.insertAfter(v, &u.root)
}

func (u *List[T]) PushBack(v T) *Element[T] {
	u.lazyInit()
	return u.insertAfter(v, u.root.prev)
}

func (u *List[T]) PopFront() (T, error) {
	if u.sz == 0 {
		return *new(T), &EmptyError{"PopFront"}
	}
	e := u.root.next
	u.remove(e)
	return e.Value, nil
}

func (u *List[T]) PopBack() (T, error) {
	if u.sz == 0 {
		return *new(T), &EmptyError{"PopBack"}
	}
	e := u.root.prev
	u.remove(e)
	return e.Value, nil
}

// Insert v before mark, or at the back when mark is nil. mark must belong to
// u.
func (u *List[T]) Insert(mark *Element[T], v T) *Element[T] {
	u.lazyInit()
	if mark == nil {
		return u.insertAfter(v, u.root.prev)
	}
	if mark.list != u {
		panic("Lists: Insert with an element of another List")
	}
	return u.insertAfter(v, mark.prev)
}

// Erase e from u and return the element that followed it, or nil.
func (u *List[T]) Erase(e *Element[T]) *Element[T] {
	if e.list != u {
		panic("Lists: Erase with an element of another List")
	}
	n := e.Next()
	u.remove(e)
	return n
}

// Resize to n elements, appending copies of v or dropping from the back.
func (u *List[T]) Resize(n int, v T) {
	for u.sz < n {
		u.PushBack(v)
	}
	for u.sz > n {
		u.remove(u.root.prev)
	}
}

// Clear unlinks every element.
func (u *List[T]) Clear() {
	for u.sz > 0 {
		u.remove(u.root.prev)
	}
	u.init()
}

func (u *List[T]) Clone() *List[T] {
	c := New[T]()
	for v := range u.All() {
		c.PushBack(v)
	}
	return c
}

// All values from front to back.
func (u *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := u.FrontElement(); e != nil; e = e.Next() {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Backward is All from back to front.
func (u *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := u.BackElement(); e != nil; e = e.Prev() {
			if !yield(e.Value) {
				return
			}
		}
	}
}
