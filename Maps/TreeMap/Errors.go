package TreeMap

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound is matched by every *KeyNotFoundError through errors.Is.
var ErrKeyNotFound = errors.New("TreeMap: key not found")

// KeyNotFoundError is returned by checked access to an absent key.
type KeyNotFoundError[K any] struct {
	Key K
}

func (e *KeyNotFoundError[K]) Error() string {
	return fmt.Sprintf("TreeMap: key %v not found", e.Key)
}

func (e *KeyNotFoundError[K]) Is(target error) bool {
	return target == ErrKeyNotFound
}
