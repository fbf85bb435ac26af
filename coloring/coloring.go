package coloring

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/chroma/core"
)

// ColorsUsed returns the number of colors in c, i.e. its largest value.
// Colors are consecutive from 1, so the maximum equals the count.
func ColorsUsed(c Coloring) int {
	k := 0
	for _, col := range c {
		if col > k {
			k = col
		}
	}

	return k
}

// Classes groups vertices by color: Classes(c)[i] holds the vertices of
// color i+1, ascending. Colors with no vertex yield empty classes.
func Classes(c Coloring) [][]core.VertexID {
	out := make([][]core.VertexID, ColorsUsed(c))
	for v, col := range c {
		if col > 0 {
			out[col-1] = append(out[col-1], v)
		}
	}
	for _, class := range out {
		sort.Ints(class)
	}

	return out
}

// Validate checks that c is a complete proper coloring of g.
//
// Errors:
//   - core.ErrNilGraph if g is nil.
//   - ErrIncompleteColoring if a vertex is missing, a key is not a vertex,
//     or a color is not positive.
//   - ErrImproperColoring for the first closure edge (in Edges() order)
//     whose endpoints share a color.
func Validate(g *core.Graph, c Coloring) error {
	if g == nil {
		return fmt.Errorf("Validate: %w", core.ErrNilGraph)
	}
	if len(c) != g.VertexCount() {
		return fmt.Errorf("Validate: %d colored, %d vertices: %w", len(c), g.VertexCount(), ErrIncompleteColoring)
	}
	for _, v := range g.Vertices() {
		col, ok := c[v]
		if !ok {
			return fmt.Errorf("Validate: vertex %d uncolored: %w", v, ErrIncompleteColoring)
		}
		if col < 1 {
			return fmt.Errorf("Validate: vertex %d has color %d: %w", v, col, ErrIncompleteColoring)
		}
	}
	for _, e := range g.Edges() {
		if c[e.U] == c[e.V] {
			return fmt.Errorf("Validate: edge %s both color %d: %w", e, c[e.U], ErrImproperColoring)
		}
	}

	return nil
}
