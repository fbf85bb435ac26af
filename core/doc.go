// Package core provides the immutable, read-only Graph the coloring
// algorithms operate on.
//
// A Graph is built once from a caller-supplied adjacency mapping
// (vertex ID → neighbor IDs) and never mutated afterwards:
//
//   - Vertex IDs are ints and unique.
//   - Neighbor lists are stored exactly as recorded (duplicates collapsed,
//     first-seen order kept); Neighbors(v) returns that list.
//   - Coloring semantics use the undirected closure: {u,v} is an edge iff
//     v is recorded for u OR u is recorded for v. Asymmetric input is
//     therefore accepted and never changes the edge set.
//   - Storage is an arena (one slot per vertex) plus an ordered index of
//     slots. WithOrder returns a view that shares the arena and the closure
//     and only swaps the iteration order, so vertex and edge identity are
//     preserved by construction.
//
// Construction:
//
//	NewGraph(map[VertexID][]VertexID, opts...)  // natural order: ascending ID
//	FromEntries([]Entry, opts...)                // natural order: declaration order
//
// GraphOption:
//
//	– WithDanglingPolicy(RejectDangling)    (default)
//	    A neighbor ID that is not a key fails with ErrDanglingReference.
//	– WithDanglingPolicy(RegisterDangling)
//	    Such IDs become isolated-by-key vertices appended after the declared
//	    ones, in first-reference order.
//	– WithLoops()
//	    Accept self-loops in the recorded lists. They never enter the closure.
//	    Without it, a self-loop fails with ErrSelfLoop.
//
// Queries:
//
//	Neighbors(v)      ([]VertexID, error)  // recorded list; ErrUnknownVertex
//	AdjacentIDs(v)    ([]VertexID, error)  // closure, ascending
//	Vertices()        []VertexID           // ascending
//	Order()           []VertexID           // current iteration order
//	WithOrder(order)  (*Graph, error)      // ErrInvalidOrder
//	Degree, MaxDegree, HasVertex, HasEdge, Edges, EdgeCount, AdjacencyList
//
// Concurrency:
//
//	A Graph has no mutable state after construction, so every method is safe
//	for concurrent use without locks.
//
// Errors:
//
//	ErrNilGraph          – nil *Graph handed to a consumer
//	ErrUnknownVertex     – query references an ID that is not a vertex
//	ErrDanglingReference – neighbor list references an undeclared ID
//	ErrDuplicateVertex   – the same ID declared twice in FromEntries
//	ErrSelfLoop          – v lists itself and loops are disabled
//	ErrInvalidOrder      – WithOrder argument is not a permutation of V
package core
