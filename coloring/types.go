package coloring

import (
	"errors"

	"github.com/katalvlaran/chroma/core"
)

// Sentinel errors for coloring operations.
var (
	// ErrEmptyGraph indicates the chromatic number was requested for a graph without vertices.
	ErrEmptyGraph = errors.New("coloring: graph has no vertices")

	// ErrTooManyVertices indicates |V| exceeds the configured exhaustive-search ceiling.
	ErrTooManyVertices = errors.New("coloring: too many vertices for exhaustive search")

	// ErrIncompleteColoring indicates a coloring whose keys differ from the vertex set.
	ErrIncompleteColoring = errors.New("coloring: coloring does not cover the vertex set")

	// ErrImproperColoring indicates two adjacent vertices share a color.
	ErrImproperColoring = errors.New("coloring: adjacent vertices share a color")
)

// Coloring maps every vertex to a positive color. Colors are introduced as
// consecutive integers starting at 1.
type Coloring map[core.VertexID]int

// Result is the outcome of an exhaustive chromatic search.
type Result struct {
	// Coloring is the greedy coloring produced under Order.
	Coloring Coloring

	// Colors is the chromatic number χ(G), equal to ColorsUsed(Coloring).
	Colors int

	// Order is the first enumerated vertex ordering that reaches Colors.
	Order []core.VertexID

	// Evaluated counts orderings run through the greedy pass. With several
	// workers it depends on scheduling; the other fields do not.
	Evaluated uint64
}
