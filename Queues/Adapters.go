package Queues

import "github.com/g-m-twostay/go-containers/Lists"

var (
	_ Queue[int] = (*ListQueue[int])(nil)
	_ Stack[int] = (*ListStack[int])(nil)
	_ Stack[int] = (*VectorStack[int])(nil)
)

// ListQueue is a FIFO queue over a Lists.List: push at the back, pop at the
// front.
type ListQueue[T any] struct {
	c Lists.List[T]
}

func (u *ListQueue[T]) Push(item T) {
	u.c.PushBack(item)
}

func (u *ListQueue[T]) Pop() (T, error) {
	if u.c.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	return u.c.PopFront()
}

func (u *ListQueue[T]) Peek() T {
	if u.c.Empty() {
		return *new(T)
	}
	return u.c.Front()
}

// Back is the last pushed item.
func (u *ListQueue[T]) Back() T {
	if u.c.Empty() {
		return *new(T)
	}
	return u.c.Back()
}

func (u *ListQueue[T]) Empty() bool {
	return u.c.Empty()
}

func (u *ListQueue[T]) Size() int {
	return u.c.Len()
}

// ListStack is a LIFO stack over a Lists.List.
type ListStack[T any] struct {
	c Lists.List[T]
}

func (u *ListStack[T]) Push(item T) {
	u.c.PushBack(item)
}

func (u *ListStack[T]) Pop() (T, error) {
	if u.c.Empty() {
		return *new(T), &EmptyStackError{}
	}
	return u.c.PopBack()
}

func (u *ListStack[T]) Top() T {
	if u.c.Empty() {
		return *new(T)
	}
	return u.c.Back()
}

func (u *ListStack[T]) Empty() bool {
	return u.c.Empty()
}

func (u *ListStack[T]) Size() int {
	return u.c.Len()
}

// VectorStack is a LIFO stack over a Lists.Vector.
type VectorStack[T any] struct {
	c Lists.Vector[T]
}

func (u *VectorStack[T]) Push(item T) {
	u.c.PushBack(item)
}

func (u *VectorStack[T]) Pop() (T, error) {
	if u.c.Empty() {
		return *new(T), &EmptyStackError{}
	}
	return u.c.PopBack()
}

func (u *VectorStack[T]) Top() T {
	if u.c.Empty() {
		return *new(T)
	}
	return u.c.Back()
}

func (u *VectorStack[T]) Empty() bool {
	return u.c.Empty()
}

func (u *VectorStack[T]) Size() int {
	return u.c.Len()
}
