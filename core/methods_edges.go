// File: methods_edges.go
// Role: Edge enumeration and adjacency export.
package core

import "sort"

// EdgeCount returns the number of undirected edges in the closure.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Edges returns every closure edge once, with U < V, sorted by (U, V).
//
// Complexity: O(E log E) time, O(E) space.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adj {
		uid := g.arena[u].id
		for _, v := range nbrs {
			if vid := g.arena[v].id; uid < vid {
				out = append(out, Edge{U: uid, V: vid})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// AdjacencyList returns a copy of the recorded adjacency mapping, including
// entries for registered dangling vertices (with empty lists).
func (g *Graph) AdjacencyList() map[VertexID][]VertexID {
	out := make(map[VertexID][]VertexID, len(g.arena))
	for _, v := range g.arena {
		rec := make([]VertexID, len(v.recorded))
		copy(rec, v.recorded)
		out[v.id] = rec
	}

	return out
}

// Symmetric reports whether every closure edge was recorded from both ends.
func (g *Graph) Symmetric() bool { return g.symmetric }

// Looped reports whether self-loops were permitted at construction.
func (g *Graph) Looped() bool { return g.loops }
