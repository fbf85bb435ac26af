package coloring_test

import (
	"bytes"
	"context"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kataras/golog"
	"github.com/katalvlaran/chroma/builder"
	"github.com/katalvlaran/chroma/coloring"
	"github.com/katalvlaran/chroma/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChromatic_KnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		want int
	}{
		{name: "K1", ctor: builder.Complete(1), want: 1},
		{name: "K2", ctor: builder.Complete(2), want: 2},
		{name: "K4", ctor: builder.Complete(4), want: 4},
		{name: "K7", ctor: builder.Complete(7), want: 7},
		{name: "C3", ctor: builder.Cycle(3), want: 3},
		{name: "C4", ctor: builder.Cycle(4), want: 2},
		{name: "C5", ctor: builder.Cycle(5), want: 3},
		{name: "C6", ctor: builder.Cycle(6), want: 2},
		{name: "C7", ctor: builder.Cycle(7), want: 3},
		{name: "C8", ctor: builder.Cycle(8), want: 2},
		{name: "P5", ctor: builder.Path(5), want: 2},
		{name: "W5 (odd rim)", ctor: builder.Wheel(6), want: 4},
		{name: "W6 (even rim)", ctor: builder.Wheel(7), want: 3},
		{name: "K3,3", ctor: builder.CompleteBipartite(3, 3), want: 2},
		{name: "Octahedron", ctor: builder.PlatonicSolid(builder.Octahedron), want: 3},
		{name: "Cube", ctor: builder.PlatonicSolid(builder.Cube), want: 2},
		{name: "Tetrahedron", ctor: builder.PlatonicSolid(builder.Tetrahedron), want: 4},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := mustBuild(t, tc.ctor)

			res, err := coloring.Chromatic(g)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Colors)
			assert.Equal(t, tc.want, coloring.ColorsUsed(res.Coloring))
			requireProper(t, g, res.Coloring)
		})
	}
}

func TestChromatic_EdgelessAndSingle(t *testing.T) {
	single, err := coloring.Chromatic(mustGraph(t, map[core.VertexID][]core.VertexID{42: nil}))
	require.NoError(t, err)
	assert.Equal(t, 1, single.Colors)
	assert.Equal(t, coloring.Coloring{42: 1}, single.Coloring)
	assert.Equal(t, []core.VertexID{42}, single.Order)

	edgeless, err := coloring.Chromatic(mustGraph(t, map[core.VertexID][]core.VertexID{1: nil, 2: nil, 3: nil, 4: nil}))
	require.NoError(t, err)
	assert.Equal(t, 1, edgeless.Colors)
	assert.Equal(t, uint64(1), edgeless.Evaluated)
}

func TestChromatic_Petersen(t *testing.T) {
	if testing.Short() {
		t.Skip("10! orderings")
	}
	g := mustGraph(t, petersenAdj)

	res, err := coloring.Chromatic(g)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Colors)
	requireProper(t, g, res.Coloring)

	built := mustBuild(t, builder.Petersen())
	again, err := coloring.Chromatic(built, coloring.WithWorkers(4))
	require.NoError(t, err)
	assert.Equal(t, 3, again.Colors)
}

func TestChromatic_FirstOrderingWinsTies(t *testing.T) {
	// The natural order of a path is already optimal, so it is kept.
	g := mustGraph(t, map[core.VertexID][]core.VertexID{1: {2}, 2: {3}, 3: nil})

	res, err := coloring.Chromatic(g)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{1, 2, 3}, res.Order)
	assert.Equal(t, coloring.Coloring{1: 1, 2: 2, 3: 1}, res.Coloring)
	assert.Equal(t, uint64(1), res.Evaluated)
}

// referenceChromatic scans every ordering with GreedyOrder and keeps the first minimum.
func referenceChromatic(t *testing.T, g *core.Graph) (int, []core.VertexID) {
	t.Helper()
	base := g.Order()
	best, bestOrder := -1, []core.VertexID(nil)

	p := coloring.NewPermutations(len(base))
	order := make([]core.VertexID, len(base))
	for p.Next() {
		for i, pos := range p.Current() {
			order[i] = base[pos]
		}
		c, err := coloring.GreedyOrder(g, order)
		require.NoError(t, err)
		if k := coloring.ColorsUsed(c); best < 0 || k < best {
			best = k
			bestOrder = append([]core.VertexID(nil), order...)
		}
	}

	return best, bestOrder
}

func TestChromatic_MatchesReferenceScan(t *testing.T) {
	crown, err := core.FromEntries(crownEntries)
	require.NoError(t, err)

	graphs := map[string]*core.Graph{"crown": crown}
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 12; i++ {
		graphs["random-"+string(rune('a'+i))] = randomGraph(t, rng, 3+rng.Intn(5), 0.2+0.6*rng.Float64())
	}

	for name, g := range graphs {
		g := g
		t.Run(name, func(t *testing.T) {
			wantColors, wantOrder := referenceChromatic(t, g)
			require.Equal(t, oracleChromatic(g), wantColors)

			for _, workers := range []int{1, 3} {
				res, err := coloring.Chromatic(g, coloring.WithWorkers(workers))
				require.NoError(t, err)
				assert.Equal(t, wantColors, res.Colors, "workers=%d", workers)
				if diff := cmp.Diff(wantOrder, res.Order); diff != "" {
					t.Errorf("workers=%d order mismatch (-want +got):\n%s", workers, diff)
				}
				requireProper(t, g, res.Coloring)
			}
		})
	}
}

func TestChromatic_MinimalityOverAllOrders(t *testing.T) {
	g, err := core.FromEntries(crownEntries)
	require.NoError(t, err)

	res, err := coloring.Chromatic(g)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Colors)

	base := g.Order()
	p := coloring.NewPermutations(len(base))
	order := make([]core.VertexID, len(base))
	for p.Next() {
		for i, pos := range p.Current() {
			order[i] = base[pos]
		}
		c, err := coloring.GreedyOrder(g, order)
		require.NoError(t, err)
		require.LessOrEqual(t, res.Colors, coloring.ColorsUsed(c))
	}
}

func TestChromatic_Deterministic(t *testing.T) {
	g := mustBuild(t, builder.Cycle(7))

	first, err := coloring.Chromatic(g)
	require.NoError(t, err)
	for _, workers := range []int{1, 2, 7, 16} {
		res, err := coloring.Chromatic(g, coloring.WithWorkers(workers))
		require.NoError(t, err)
		if diff := cmp.Diff(first.Coloring, res.Coloring); diff != "" {
			t.Fatalf("workers=%d coloring mismatch (-want +got):\n%s", workers, diff)
		}
		assert.Equal(t, first.Colors, res.Colors)
		assert.Equal(t, first.Order, res.Order)
	}
}

func TestChromatic_Errors(t *testing.T) {
	_, err := coloring.Chromatic(nil)
	require.ErrorIs(t, err, core.ErrNilGraph)

	_, err = coloring.Chromatic(mustGraph(t, nil))
	require.ErrorIs(t, err, coloring.ErrEmptyGraph)

	big := mustBuild(t, builder.Path(coloring.DefaultMaxVertices+1))
	_, err = coloring.Chromatic(big)
	require.ErrorIs(t, err, coloring.ErrTooManyVertices)

	_, err = coloring.Chromatic(mustBuild(t, builder.Path(5)), coloring.WithMaxVertices(4))
	require.ErrorIs(t, err, coloring.ErrTooManyVertices)
}

func TestChromatic_CeilingDisabled(t *testing.T) {
	// A path is solved by its first ordering, so a large |V| is fine once the ceiling is off.
	g := mustBuild(t, builder.Path(40))

	res, err := coloring.Chromatic(g, coloring.WithMaxVertices(0))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Colors)
	assert.Equal(t, uint64(1), res.Evaluated)
}

func TestChromaticContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := mustBuild(t, builder.Cycle(5))
	_, err := coloring.ChromaticContext(ctx, g)
	require.ErrorIs(t, err, context.Canceled)

	_, err = coloring.ChromaticContext(ctx, g, coloring.WithWorkers(2))
	require.ErrorIs(t, err, context.Canceled)
}

func TestChromatic_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := golog.New()
	logger.SetOutput(&buf)
	logger.SetLevel("debug")

	_, err := coloring.Chromatic(mustBuild(t, builder.Cycle(5)), coloring.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "chromatic: |V|=5")
	assert.Contains(t, buf.String(), "χ=3")
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { coloring.WithMaxVertices(-1) })
	assert.Panics(t, func() { coloring.WithWorkers(0) })
	assert.Panics(t, func() { coloring.WithLogger(nil) })
}
