// Package builder assembles deterministic graph fixtures for the chroma
// solvers: classic families (complete, cycle, path, star, wheel, bipartite,
// grid, Petersen, Platonic solids) and seeded random generators.
//
// Constructors record adjacency into an Assembly; BuildGraph hands the
// result to core.FromEntries, so declaration order becomes the natural
// iteration order of the graph and every constructor documents it.
//
// Vertex IDs are consecutive integers starting at 1 (WithFirstID changes
// the base). Compose several constructors in one BuildGraph call; ids that
// coincide merge, so use Shift to place families side by side.
//
// Randomness only comes from WithSeed or WithRand. Without it, stochastic
// constructors fail with ErrNeedRandSource.
package builder
