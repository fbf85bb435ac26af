package coloring_test

import (
	"testing"

	"github.com/katalvlaran/chroma/coloring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(p *coloring.Permutations) [][]int {
	var out [][]int
	for p.Next() {
		out = append(out, append([]int(nil), p.Current()...))
	}

	return out
}

func TestPermutations_LexicographicOrder(t *testing.T) {
	got := collect(coloring.NewPermutations(3))
	want := [][]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}
	assert.Equal(t, want, got)
}

func TestPermutations_Count(t *testing.T) {
	for n, want := range []int{1, 1, 2, 6, 24, 120, 720} {
		assert.Len(t, collect(coloring.NewPermutations(n)), want, "n=%d", n)
	}
}

func TestPermutations_ZeroYieldsOneEmpty(t *testing.T) {
	p := coloring.NewPermutations(0)
	require.True(t, p.Next())
	assert.Empty(t, p.Current())
	assert.False(t, p.Next())
	assert.False(t, p.Next(), "exhausted iterator stays exhausted")
}

func TestPermutations_Reset(t *testing.T) {
	p := coloring.NewPermutations(4)
	first := collect(p)
	require.Len(t, first, 24)
	assert.False(t, p.Next())

	p.Reset()
	assert.Equal(t, first, collect(p))
}

func TestPermutations_DistinctAndComplete(t *testing.T) {
	seen := make(map[[5]int]bool)
	p := coloring.NewPermutations(5)
	for p.Next() {
		var key [5]int
		copy(key[:], p.Current())
		require.False(t, seen[key], "duplicate %v", key)
		seen[key] = true
	}
	assert.Len(t, seen, 120)
}
