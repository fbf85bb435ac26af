package coloring

import (
	"fmt"

	"github.com/katalvlaran/chroma/core"
)

const (
	methodGreedy      = "Greedy"
	methodGreedyOrder = "GreedyOrder"
)

// Greedy colors g by multi-pass first fit in g's iteration order.
//
// Each pass introduces the next color c and assigns it to every uncolored
// vertex, in order, none of whose already-colored neighbors holds c. The
// same c may therefore land on many mutually non-adjacent vertices in one
// pass. An empty graph yields an empty coloring.
//
// Guarantees: proper, keys == vertex set, ColorsUsed ≤ Δ(G)+1.
//
// Errors:
//   - core.ErrNilGraph if g is nil.
func Greedy(g *core.Graph) (Coloring, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodGreedy, core.ErrNilGraph)
	}

	colors := make([]int, g.VertexCount())
	firstFit(g, g.Slots(), colors)

	return toColoring(g, colors), nil
}

// GreedyOrder runs Greedy on the view g.WithOrder(order).
//
// Errors:
//   - core.ErrNilGraph if g is nil.
//   - core.ErrInvalidOrder (and core.ErrUnknownVertex) for a bad order.
func GreedyOrder(g *core.Graph, order []core.VertexID) (Coloring, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodGreedyOrder, core.ErrNilGraph)
	}
	view, err := g.WithOrder(order)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGreedyOrder, err)
	}

	return Greedy(view)
}

// firstFit colors the slots of g visited in order and returns the number
// of colors used. colors is indexed by slot and is overwritten.
func firstFit(g *core.Graph, order []int, colors []int) int {
	for i := range colors {
		colors[i] = 0
	}

	c := 0
	remaining := len(order)
	for remaining > 0 {
		c++
		// The first uncolored vertex of every pass always takes c, so this terminates.
		for _, s := range order {
			if colors[s] != 0 || holds(g.ClosureAt(s), colors, c) {
				continue
			}
			colors[s] = c
			remaining--
		}
	}

	return c
}

// holds reports whether any slot in nbrs already has color c.
func holds(nbrs []int, colors []int, c int) bool {
	for _, t := range nbrs {
		if colors[t] == c {
			return true
		}
	}

	return false
}

func toColoring(g *core.Graph, colors []int) Coloring {
	out := make(Coloring, len(colors))
	for s, c := range colors {
		out[g.SlotID(s)] = c
	}

	return out
}
