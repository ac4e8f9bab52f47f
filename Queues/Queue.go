// Package Queues holds FIFO queues and LIFO stacks. ArrayQueue owns its ring
// buffer; the others adapt a container from Lists.
package Queues

type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	// Peek returns the front item, or the zero value if the queue is empty.
	Peek() T
	Empty() bool
	Size() int
}

type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	resize(newLen int)
}

type Stack[T any] interface {
	Push(item T)
	Pop() (T, error)
	// Top returns the last pushed item, or the zero value if the stack is
	// empty.
	Top() T
	Empty() bool
	Size() int
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}

type EmptyStackError struct {
}

func (e *EmptyStackError) Error() string {
	return "Stack is Empty: cannot Pop."
}
