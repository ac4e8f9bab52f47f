package Graphs

import (
	"errors"
	"fmt"
)

var (
	ErrNegativeCycle  = errors.New("Graphs: negative cycle reachable from the source")
	ErrNegativeWeight = errors.New("Graphs: negative edge weight")
)

type VertexNotFoundError struct {
	ID VertexID
}

func (e *VertexNotFoundError) Error() string {
	return fmt.Sprintf("Graphs: vertex %d not found", e.ID)
}

type EdgeNotFoundError struct {
	ID EdgeID
}

func (e *EdgeNotFoundError) Error() string {
	return fmt.Sprintf("Graphs: edge %d->%d not found", e.ID.Source, e.ID.Target)
}
