// Package core declares VertexID, Entry, Edge, Graph, GraphOption and the
// sentinel errors used across the module.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates a nil *Graph was passed where a graph is required.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrUnknownVertex indicates a query referenced a vertex that is not in the graph.
	ErrUnknownVertex = errors.New("core: unknown vertex")

	// ErrDanglingReference indicates a neighbor list references an ID never declared as a key.
	ErrDanglingReference = errors.New("core: dangling neighbor reference")

	// ErrDuplicateVertex indicates the same vertex ID was declared more than once.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrSelfLoop indicates a vertex lists itself while loops are disabled.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrInvalidOrder indicates an ordering that is not a permutation of the vertex set.
	ErrInvalidOrder = errors.New("core: order is not a permutation of the vertex set")
)

// VertexID identifies a vertex. It is an alias so plain map[int][]int
// adjacency mappings can be passed without conversion.
type VertexID = int

// Entry is one declared vertex together with its recorded neighbor list.
// FromEntries keeps the order of entries as the natural iteration order.
type Entry struct {
	// ID is the vertex identifier; unique within one graph.
	ID VertexID

	// Neighbors lists the IDs recorded as adjacent to ID. One direction is enough.
	Neighbors []VertexID
}

// Edge is an undirected edge of the closure with U < V.
type Edge struct {
	U VertexID
	V VertexID
}

// String renders the edge as "U-V".
func (e Edge) String() string { return fmt.Sprintf("%d-%d", e.U, e.V) }

// DanglingPolicy decides what happens to neighbor IDs that are not keys.
type DanglingPolicy int

const (
	// RejectDangling fails construction with ErrDanglingReference.
	RejectDangling DanglingPolicy = iota

	// RegisterDangling adds the referenced ID as an extra vertex.
	RegisterDangling
)

// String returns a readable policy name.
func (p DanglingPolicy) String() string {
	switch p {
	case RejectDangling:
		return "reject"
	case RegisterDangling:
		return "register"
	default:
		return fmt.Sprintf("DanglingPolicy(%d)", int(p))
	}
}

// GraphOption configures graph construction.
type GraphOption func(cfg *graphConfig)

// graphConfig holds construction knobs; resolved once per constructor call.
type graphConfig struct {
	dangling   DanglingPolicy
	allowLoops bool
}

// WithDanglingPolicy selects how undeclared neighbor IDs are handled.
// Panics on an unknown policy value.
func WithDanglingPolicy(p DanglingPolicy) GraphOption {
	if p != RejectDangling && p != RegisterDangling {
		panic(fmt.Sprintf("core: WithDanglingPolicy(%d)", int(p)))
	}
	return func(cfg *graphConfig) { cfg.dangling = p }
}

// WithLoops permits self-loops in recorded neighbor lists.
// Loops are kept in Neighbors(v) but never appear in the closure.
func WithLoops() GraphOption {
	return func(cfg *graphConfig) { cfg.allowLoops = true }
}

func newGraphConfig(opts ...GraphOption) graphConfig {
	cfg := graphConfig{dangling: RejectDangling}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// vertex is one arena slot.
type vertex struct {
	id       VertexID
	recorded []VertexID // as supplied, deduplicated, first-seen order
}

// Graph is an immutable adjacency arena with an ordered slot index.
//
// arena, index, adj and the counters are shared between a graph and every
// view derived from it by WithOrder; only order differs between views.
type Graph struct {
	arena []vertex
	index map[VertexID]int // vertex ID → arena slot

	// adj[s] holds the closure neighbors of slot s as slots, sorted by vertex ID.
	adj [][]int

	// order lists arena slots in iteration order.
	order []int

	edgeCount int
	symmetric bool
	loops     bool
}
