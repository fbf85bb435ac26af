// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// helpers.go — the Assembly that constructors record into, plus small
// emission helpers shared by several families.

package builder

import "github.com/katalvlaran/chroma/core"

// Assembly accumulates vertices and recorded neighbors in declaration order.
// It is the mutable staging area behind the immutable core.Graph.
type Assembly struct {
	entries []core.Entry
	index   map[core.VertexID]int
}

// NewAssembly returns an empty Assembly.
func NewAssembly() *Assembly {
	return &Assembly{index: make(map[core.VertexID]int)}
}

// AddVertex declares v. It is idempotent: re-adding keeps the first position.
func (a *Assembly) AddVertex(v core.VertexID) {
	if _, ok := a.index[v]; ok {
		return
	}
	a.index[v] = len(a.entries)
	a.entries = append(a.entries, core.Entry{ID: v})
}

// AddArc records v in u's neighbor list only, declaring both endpoints.
func (a *Assembly) AddArc(u, v core.VertexID) {
	a.AddVertex(u)
	a.AddVertex(v)
	e := &a.entries[a.index[u]]
	e.Neighbors = append(e.Neighbors, v)
}

// AddEdge records u-v in both neighbor lists.
func (a *Assembly) AddEdge(u, v core.VertexID) {
	a.AddArc(u, v)
	if u != v {
		a.AddArc(v, u)
	}
}

// Len is the number of declared vertices.
func (a *Assembly) Len() int { return len(a.entries) }

// Entries returns a deep copy of the declared vertices in order.
func (a *Assembly) Entries() []core.Entry {
	out := make([]core.Entry, len(a.entries))
	for i, e := range a.entries {
		out[i] = core.Entry{ID: e.ID, Neighbors: append([]core.VertexID(nil), e.Neighbors...)}
	}

	return out
}

// addRange declares cfg.id(from)..cfg.id(to-1).
func addRange(a *Assembly, cfg builderConfig, from, to int) {
	for i := from; i < to; i++ {
		a.AddVertex(cfg.id(i))
	}
}

// addCompleteEdges connects every unordered pair of ids.
func addCompleteEdges(a *Assembly, ids []core.VertexID) {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a.AddEdge(ids[i], ids[j])
		}
	}
}

// makeIDs returns cfg.id(from)..cfg.id(from+n-1).
func makeIDs(cfg builderConfig, from, n int) []core.VertexID {
	ids := make([]core.VertexID, n)
	for i := range ids {
		ids[i] = cfg.id(from + i)
	}

	return ids
}
