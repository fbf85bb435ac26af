// File: view.go
// Role: Non-mutating graph views that only change the iteration order.
//
// A view shares arena, index and closure with its source. Vertex and edge
// identity therefore cannot drift between views.
package core

import "fmt"

const methodWithOrder = "WithOrder"

// WithOrder returns a view of g whose iteration order is order.
//
// order must be a permutation of the vertex set: same length, every ID known,
// no repeats. The receiver is not modified.
//
// Errors:
//   - ErrInvalidOrder for a wrong length or a repeated ID.
//   - ErrInvalidOrder and ErrUnknownVertex (both match errors.Is) for an unknown ID.
//
// Complexity: O(V) time and space.
func (g *Graph) WithOrder(order []VertexID) (*Graph, error) {
	if len(order) != len(g.arena) {
		return nil, fmt.Errorf("%s: len=%d, want %d: %w", methodWithOrder, len(order), len(g.arena), ErrInvalidOrder)
	}

	slots := make([]int, len(order))
	seen := make([]bool, len(g.arena))
	for i, id := range order {
		s, ok := g.index[id]
		if !ok {
			return nil, fmt.Errorf("%s: vertex %d: %w: %w", methodWithOrder, id, ErrInvalidOrder, ErrUnknownVertex)
		}
		if seen[s] {
			return nil, fmt.Errorf("%s: vertex %d repeated: %w", methodWithOrder, id, ErrInvalidOrder)
		}
		seen[s] = true
		slots[i] = s
	}

	view := *g
	view.order = slots

	return &view, nil
}
