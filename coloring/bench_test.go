package coloring_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/chroma/builder"
	"github.com/katalvlaran/chroma/coloring"
)

func BenchmarkGreedy_Random200(b *testing.B) {
	g := randomGraph(b, rand.New(rand.NewSource(1)), 200, 0.05)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = coloring.Greedy(g)
	}
}

func BenchmarkChromatic_C9(b *testing.B) {
	g := mustBuild(b, builder.Cycle(9))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = coloring.Chromatic(g)
	}
}

func BenchmarkChromatic_Random8(b *testing.B) {
	g := randomGraph(b, rand.New(rand.NewSource(3)), 8, 0.5)
	for _, workers := range []int{1, 4} {
		b.Run(map[int]string{1: "seq", 4: "par4"}[workers], func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = coloring.Chromatic(g, coloring.WithWorkers(workers))
			}
		})
	}
}
