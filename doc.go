// Package chroma computes graph colorings: a fast first-fit greedy coloring
// and the exact chromatic number by exhaustive search over vertex orderings.
//
// 🚀 What is inside?
//
//	• core/        — immutable graph over integer ids; one-way records close into undirected edges
//	• coloring/    — Greedy, GreedyOrder, Chromatic (sequential or parallel), Validate
//	• builder/     — fixtures: complete, cycle, path, star, wheel, bipartite, grid,
//	                 Petersen, Platonic solids and seeded random generators
//	• converters/  — HCL graph documents in and out
//
// ✨ Guarantees
//
//   - Deterministic – the same graph and iteration order give the same coloring
//   - Exact – Chromatic returns χ(G) and the first ordering that reaches it
//   - Bounded – the exhaustive search refuses more than 10 vertices unless told otherwise
//
// Quick ASCII example:
//
//	    1───2
//	    │ ╲ │
//	    4───3
//
//	a square with one diagonal: χ = 3, and greedy in order 1,2,3,4 finds it.
//
//	go get github.com/katalvlaran/chroma
package chroma
