package Lists

import "iter"

const minVectorCap = 10

// Vector is a growable array with explicit capacity management. Capacity is
// doubled when a push finds the backing array full.
type Vector[T any] struct {
	content []T
	sz      int
}

// NewVector holds n copies of v, with room for max(10, 2n) elements.
func NewVector[T any](n int, v T) *Vector[T] {
	u := &Vector[T]{content: make([]T, max(minVectorCap, 2*n)), sz: n}
	for i := range n {
		u.content[i] = v
	}
	return u
}

// VectorOf holds vals in order.
func VectorOf[T any](vals ...T) *Vector[T] {
	u := &Vector[T]{content: make([]T, max(minVectorCap, 2*len(vals))), sz: len(vals)}
	copy(u.content, vals)
	return u
}

func (u *Vector[T]) Len() int {
	return u.sz
}

func (u *Vector[T]) Cap() int {
	return len(u.content)
}

func (u *Vector[T]) Empty() bool {
	return u.sz == 0
}

// Reserve grows the capacity to c. It never shrinks.
func (u *Vector[T]) Reserve(c int) {
	if c <= len(u.content) {
		return
	}
	nc := make([]T, c)
	copy(nc, u.content[:u.sz])
	u.content = nc
}

// Resize to n elements, filling new slots with v.
func (u *Vector[T]) Resize(n int, v T) {
	if n > len(u.content) {
		u.Reserve(2 * n)
	}
	for i := u.sz; i < n; i++ {
		u.content[i] = v
	}
	clear(u.content[min(n, u.sz):u.sz])
	u.sz = n
}

func (u *Vector[T]) PushBack(v T) {
	if u.sz == len(u.content) {
		u.Reserve(max(minVectorCap, 2*len(u.content)))
	}
	u.content[u.sz] = v
	u.sz++
}

// PushBackIncremental grows the capacity by a constant instead of doubling.
// Only kept for the growth comparison in the timing driver.
func (u *Vector[T]) PushBackIncremental(v T) {
	if u.sz == len(u.content) {
		u.Reserve(len(u.content) + minVectorCap)
	}
	u.content[u.sz] = v
	u.sz++
}

func (u *Vector[T]) PopBack() (T, error) {
	if u.sz == 0 {
		return *new(T), &EmptyError{"PopBack"}
	}
	u.sz--
	v := u.content[u.sz]
	u.content[u.sz] = *new(T)
	return v, nil
}

// Insert v at index i, shifting the tail right. i may equal Len().
func (u *Vector[T]) Insert(i int, v T) error {
	if i < 0 || i > u.sz {
		return &OutOfRangeError{i, u.sz + 1}
	}
	if u.sz == len(u.content) {
		u.Reserve(max(minVectorCap, 2*len(u.content)))
	}
	copy(u.content[i+1:u.sz+1], u.content[i:u.sz])
	u.content[i] = v
	u.sz++
	return nil
}

// Erase the element at i, shifting the tail left.
func (u *Vector[T]) Erase(i int) error {
	if i < 0 || i >= u.sz {
		return &OutOfRangeError{i, u.sz}
	}
	copy(u.content[i:], u.content[i+1:u.sz])
	u.sz--
	u.content[u.sz] = *new(T)
	return nil
}

// At is the checked access.
func (u *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= u.sz {
		return nil, &OutOfRangeError{i, u.sz}
	}
	return &u.content[i], nil
}

// Get is the unchecked access. Reading past Len() up to Cap() returns stale
// zero values; past Cap() it panics.
func (u *Vector[T]) Get(i int) T {
	return u.content[i]
}

func (u *Vector[T]) Set(i int, v T) {
	u.content[i] = v
}

func (u *Vector[T]) Front() T {
	return u.content[:u.sz][0]
}

func (u *Vector[T]) Back() T {
	return u.content[:u.sz][u.sz-1]
}

func (u *Vector[T]) Clear() {
	clear(u.content[:u.sz])
	u.sz = 0
}

func (u *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{content: make([]T, len(u.content)), sz: u.sz}
	copy(c.content, u.content[:u.sz])
	return c
}

// Slice views the elements. It is invalidated by any growth.
func (u *Vector[T]) Slice() []T {
	return u.content[:u.sz]
}

func (u *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < u.sz; i++ {
			if !yield(i, u.content[i]) {
				return
			}
		}
	}
}
