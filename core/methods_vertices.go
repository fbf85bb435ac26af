// File: methods_vertices.go
// Role: Vertex queries and slot-level accessors.
//
// Determinism:
//   - Vertices() returns IDs ascending; Order() returns the view's iteration order.
package core

import (
	"fmt"
	"sort"
)

// Vertices returns all vertex IDs in ascending order.
//
// The vertex set does not depend on iteration order; sorting only makes the
// result stable for callers and tests.
//
// Complexity: O(V log V) time, O(V) space.
func (g *Graph) Vertices() []VertexID {
	ids := make([]VertexID, len(g.arena))
	for s, v := range g.arena {
		ids[s] = v.id
	}
	sort.Ints(ids)

	return ids
}

// Order returns vertex IDs in the graph's current iteration order.
//
// Complexity: O(V) time and space.
func (g *Graph) Order() []VertexID {
	ids := make([]VertexID, len(g.order))
	for i, s := range g.order {
		ids[i] = g.arena[s].id
	}

	return ids
}

// HasVertex reports whether id is a vertex of g.
func (g *Graph) HasVertex(id VertexID) bool {
	_, ok := g.index[id]
	return ok
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.arena) }

// Degree returns the closure degree of id.
//
// Errors:
//   - ErrUnknownVertex if id is not a vertex.
func (g *Graph) Degree(id VertexID) (int, error) {
	s, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("Degree: vertex %d: %w", id, ErrUnknownVertex)
	}

	return len(g.adj[s]), nil
}

// MaxDegree returns Δ(G), the largest closure degree (0 for an empty graph).
func (g *Graph) MaxDegree() int {
	delta := 0
	for _, nbrs := range g.adj {
		if len(nbrs) > delta {
			delta = len(nbrs)
		}
	}

	return delta
}

// Slots returns arena slots in iteration order. Slots are dense in
// [0, VertexCount()) and identical across views of the same graph.
//
// Complexity: O(V) time and space (fresh copy).
func (g *Graph) Slots() []int {
	out := make([]int, len(g.order))
	copy(out, g.order)

	return out
}

// SlotOf returns the arena slot of id.
func (g *Graph) SlotOf(id VertexID) (int, bool) {
	s, ok := g.index[id]
	return s, ok
}

// SlotID returns the vertex ID stored in slot s. It panics if s is out of range.
func (g *Graph) SlotID(s int) VertexID { return g.arena[s].id }

// ClosureAt returns the closure neighbors of slot s as slots.
//
// The slice is shared with the graph and must not be modified. It exists so
// hot loops (greedy passes over every permutation) avoid map lookups.
func (g *Graph) ClosureAt(s int) []int { return g.adj[s] }
