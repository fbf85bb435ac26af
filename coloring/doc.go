// Package coloring computes proper vertex colorings of core.Graph values.
//
// Two algorithms are provided:
//
//   - Greedy / GreedyOrder: multi-pass first fit. A new color c is
//     introduced per pass and handed to every still-uncolored vertex, in
//     iteration order, that has no already-colored neighbor holding c.
//     Proper, complete, at most Δ(G)+1 colors, order-dependent.
//     Complexity: O(k·(V+E)) for k colors.
//
//   - Chromatic / ChromaticContext: exhaustive search. Runs the greedy pass
//     under every ordering of V (lazy lexicographic enumeration, never
//     materialized) and keeps the ordering with the fewest colors; ties go
//     to the first ordering enumerated. Some ordering always makes first fit
//     optimal, so the result is χ(G) with an optimal coloring.
//     Complexity: O(V!·k·(V+E)) worst case.
//
// The search stops as soon as an ordering reaches the clique number ω(G),
// a lower bound on χ(G). No later ordering can use fewer colors and ties
// keep the earlier one, so the answer equals a full scan.
//
// Practical ceiling:
//
//	|V|! grows past 3.6M at |V|=10 and 479M at |V|=12. Chromatic refuses
//	graphs above DefaultMaxVertices (10) with ErrTooManyVertices unless the
//	caller raises or disables the limit via WithMaxVertices.
//
// Options:
//
//	WithMaxVertices(n)  – ceiling on |V|; 0 disables it
//	WithWorkers(k)      – evaluate orderings on k goroutines (errgroup)
//	WithLogger(l)       – debug progress via a *golog.Logger
//
// Results are deterministic: the same graph yields the same coloring, color
// count and winning order, with any worker count.
//
// Errors:
//
//	ErrEmptyGraph         – Chromatic on a graph with no vertices
//	ErrTooManyVertices    – |V| above the configured ceiling
//	ErrIncompleteColoring – Validate: keys differ from the vertex set
//	ErrImproperColoring   – Validate: an edge has equal endpoint colors
//	core.ErrNilGraph      – nil graph argument
package coloring
