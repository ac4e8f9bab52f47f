// Package Lists holds the sequence containers: a doubly linked List and a
// growable Vector. Both back the adapters in Queues.
package Lists

import "fmt"

// EmptyError is returned when removing from an empty container.
type EmptyError struct {
	Op string
}

func (e *EmptyError) Error() string {
	return "Lists: " + e.Op + " on an empty container"
}

// OutOfRangeError is returned by checked index access.
type OutOfRangeError struct {
	Index, Len int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("Lists: index %d out of range [0, %d)", e.Index, e.Len)
}
