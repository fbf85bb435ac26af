// File: methods_adjacent.go
// Role: Neighbor queries over the recorded lists and the undirected closure.
package core

import "fmt"

// Neighbors returns the neighbor list recorded for id, in first-seen order
// with duplicates removed. It is the raw input, not the closure: a neighbor
// that only lists id in its own entry is not included.
//
// Errors:
//   - ErrUnknownVertex if id is not a vertex.
//
// Complexity: O(deg) time and space (fresh copy).
func (g *Graph) Neighbors(id VertexID) ([]VertexID, error) {
	s, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("Neighbors: vertex %d: %w", id, ErrUnknownVertex)
	}

	rec := g.arena[s].recorded
	out := make([]VertexID, len(rec))
	copy(out, rec)

	return out, nil
}

// AdjacentIDs returns the closure neighbors of id in ascending order: every
// u with u recorded for id or id recorded for u, excluding id itself.
//
// Errors:
//   - ErrUnknownVertex if id is not a vertex.
func (g *Graph) AdjacentIDs(id VertexID) ([]VertexID, error) {
	s, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("AdjacentIDs: vertex %d: %w", id, ErrUnknownVertex)
	}

	out := make([]VertexID, len(g.adj[s]))
	for i, t := range g.adj[s] {
		out[i] = g.arena[t].id
	}

	return out, nil
}

// HasEdge reports whether {u,v} is an edge of the closure.
// Unknown vertices and u == v yield false.
//
// Complexity: O(log Δ).
func (g *Graph) HasEdge(u, v VertexID) bool {
	su, ok := g.index[u]
	if !ok {
		return false
	}
	sv, ok := g.index[v]
	if !ok || su == sv {
		return false
	}

	nbrs := g.adj[su]
	lo, hi := 0, len(nbrs)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if g.arena[nbrs[mid]].id < v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo < len(nbrs) && nbrs[lo] == sv
}
