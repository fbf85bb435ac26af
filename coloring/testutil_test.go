package coloring_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/chroma/builder"
	"github.com/katalvlaran/chroma/coloring"
	"github.com/katalvlaran/chroma/core"
	"github.com/stretchr/testify/require"
)

// petersenAdj is the 10-vertex, 3-regular Petersen graph.
var petersenAdj = map[core.VertexID][]core.VertexID{
	1: {2, 4, 3}, 2: {1, 5, 9}, 3: {1, 7, 8}, 4: {1, 6, 10}, 5: {2, 6, 8},
	6: {4, 5, 7}, 7: {3, 6, 9}, 8: {3, 5, 10}, 9: {2, 7, 10}, 10: {4, 8, 9},
}

// crownEntries is K_{3,3} minus a perfect matching (u_i = i, v_i = i+3),
// declared in the interleaved order u1 v1 u2 v2 u3 v3 that makes first fit use 3 colors.
var crownEntries = []core.Entry{
	{ID: 1, Neighbors: []core.VertexID{5, 6}},
	{ID: 4, Neighbors: []core.VertexID{2, 3}},
	{ID: 2, Neighbors: []core.VertexID{4, 6}},
	{ID: 5, Neighbors: []core.VertexID{1, 3}},
	{ID: 3, Neighbors: []core.VertexID{4, 5}},
	{ID: 6, Neighbors: []core.VertexID{1, 2}},
}

func mustBuild(t testing.TB, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, cons...)
	require.NoError(t, err)

	return g
}

func mustGraph(t testing.TB, adj map[core.VertexID][]core.VertexID) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(adj)
	require.NoError(t, err)

	return g
}

// randomGraph records each pair {i,j} with probability p, from one endpoint only,
// so the closure logic is always exercised.
func randomGraph(t testing.TB, rng *rand.Rand, n int, p float64) *core.Graph {
	t.Helper()
	adj := make(map[core.VertexID][]core.VertexID, n)
	for i := 1; i <= n; i++ {
		adj[i] = nil
	}
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			if rng.Float64() < p {
				if rng.Intn(2) == 0 {
					adj[i] = append(adj[i], j)
				} else {
					adj[j] = append(adj[j], i)
				}
			}
		}
	}

	return mustGraph(t, adj)
}

// kColorable decides by backtracking whether g admits a proper k-coloring.
// It shares no code with the package and serves as an oracle.
func kColorable(g *core.Graph, k int) bool {
	vs := g.Vertices()
	col := make(map[core.VertexID]int, len(vs))
	var try func(i int) bool
	try = func(i int) bool {
		if i == len(vs) {
			return true
		}
		adj, _ := g.AdjacentIDs(vs[i])
		for c := 1; c <= k; c++ {
			ok := true
			for _, u := range adj {
				if col[u] == c {
					ok = false
					break
				}
			}
			if ok {
				col[vs[i]] = c
				if try(i + 1) {
					return true
				}
				delete(col, vs[i])
			}
		}
		return false
	}

	return try(0)
}

// oracleChromatic is the smallest k with kColorable(g, k).
func oracleChromatic(g *core.Graph) int {
	for k := 1; ; k++ {
		if kColorable(g, k) {
			return k
		}
	}
}

// requireProper asserts properness and completeness.
func requireProper(t testing.TB, g *core.Graph, c coloring.Coloring) {
	t.Helper()
	require.NoError(t, coloring.Validate(g, c))
	for _, e := range g.Edges() {
		require.NotEqual(t, c[e.U], c[e.V], "edge %s", e)
	}
}
