// File: adjacency_list.go
// Role: Graph construction from adjacency mappings and the undirected closure.
//
// Determinism:
//   - NewGraph orders vertices by ascending ID (Go map order is not stable).
//   - FromEntries keeps declaration order.
//   - Closure neighbor lists are sorted by vertex ID.
package core

import (
	"fmt"
	"sort"
	"strings"
)

const (
	methodNewGraph    = "NewGraph"
	methodFromEntries = "FromEntries"
)

// NewGraph builds a Graph from an adjacency mapping.
//
// The natural iteration order is ascending vertex ID. Use FromEntries when a
// specific declaration order matters.
//
// Errors:
//   - ErrDanglingReference: a neighbor is not a key (RejectDangling policy).
//   - ErrSelfLoop: a vertex lists itself and WithLoops was not given.
//
// Complexity:
//   - Time O(V log V + E log Δ), Space O(V + E).
func NewGraph(adj map[VertexID][]VertexID, opts ...GraphOption) (*Graph, error) {
	ids := make([]VertexID, 0, len(adj))
	for id := range adj {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	entries := make([]Entry, len(ids))
	for i, id := range ids {
		entries[i] = Entry{ID: id, Neighbors: adj[id]}
	}

	return build(methodNewGraph, entries, newGraphConfig(opts...))
}

// FromEntries builds a Graph whose natural iteration order is the order of
// entries.
//
// Errors:
//   - ErrDuplicateVertex: two entries share an ID.
//   - ErrDanglingReference, ErrSelfLoop: as for NewGraph.
//
// Complexity:
//   - Time O(V + E log Δ), Space O(V + E).
func FromEntries(entries []Entry, opts ...GraphOption) (*Graph, error) {
	return build(methodFromEntries, entries, newGraphConfig(opts...))
}

// build runs the three construction stages: declare, record, close.
func build(method string, entries []Entry, cfg graphConfig) (*Graph, error) {
	g := &Graph{
		arena: make([]vertex, 0, len(entries)),
		index: make(map[VertexID]int, len(entries)),
		loops: cfg.allowLoops,
	}

	// Stage 1: declare every key so forward references resolve.
	for _, e := range entries {
		if _, dup := g.index[e.ID]; dup {
			return nil, fmt.Errorf("%s: vertex %d: %w", method, e.ID, ErrDuplicateVertex)
		}
		g.index[e.ID] = len(g.arena)
		g.arena = append(g.arena, vertex{id: e.ID})
	}

	// Stage 2: record neighbor lists, resolving undeclared IDs per policy.
	// Registered IDs are appended to the arena; declared slots keep indices 0..len(entries)-1.
	for i, e := range entries {
		seen := make(map[VertexID]struct{}, len(e.Neighbors))
		rec := make([]VertexID, 0, len(e.Neighbors))
		for _, nb := range e.Neighbors {
			if nb == e.ID && !cfg.allowLoops {
				return nil, fmt.Errorf("%s: vertex %d: %w", method, e.ID, ErrSelfLoop)
			}
			if _, ok := g.index[nb]; !ok {
				if cfg.dangling == RejectDangling {
					return nil, fmt.Errorf("%s: vertex %d lists %d: %w", method, e.ID, nb, ErrDanglingReference)
				}
				g.index[nb] = len(g.arena)
				g.arena = append(g.arena, vertex{id: nb})
			}
			if _, dup := seen[nb]; dup {
				continue
			}
			seen[nb] = struct{}{}
			rec = append(rec, nb)
		}
		g.arena[i].recorded = rec
	}

	// Stage 3: undirected closure and natural order.
	g.close()
	g.order = make([]int, len(g.arena))
	for s := range g.order {
		g.order[s] = s
	}

	return g, nil
}

// close derives adj, edgeCount and symmetric from the recorded lists.
func (g *Graph) close() {
	n := len(g.arena)
	sets := make([]map[int]struct{}, n)
	for s := range sets {
		sets[s] = make(map[int]struct{})
	}

	for u := range g.arena {
		for _, id := range g.arena[u].recorded {
			v := g.index[id]
			if v == u {
				continue // loops never enter the closure
			}
			sets[u][v] = struct{}{}
			sets[v][u] = struct{}{}
		}
	}

	g.adj = make([][]int, n)
	g.symmetric = true
	total := 0
	for u, set := range sets {
		nbrs := make([]int, 0, len(set))
		for v := range set {
			nbrs = append(nbrs, v)
		}
		sort.Slice(nbrs, func(a, b int) bool { return g.arena[nbrs[a]].id < g.arena[nbrs[b]].id })
		g.adj[u] = nbrs
		total += len(nbrs)

		// The closure of u contains recorded(u)\{u}; equal sizes mean nothing was mirrored in.
		if len(nbrs) != recordedWithoutLoop(g.arena[u]) {
			g.symmetric = false
		}
	}
	g.edgeCount = total / 2
}

func recordedWithoutLoop(v vertex) int {
	n := len(v.recorded)
	for _, id := range v.recorded {
		if id == v.id {
			n--
		}
	}

	return n
}

// String renders the recorded adjacency in iteration order, e.g. "{1: [2 3], 2: [1], 3: []}".
func (g *Graph) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, s := range g.order {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d: %v", g.arena[s].id, g.arena[s].recorded)
	}
	sb.WriteByte('}')

	return sb.String()
}
