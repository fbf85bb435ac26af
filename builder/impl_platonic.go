// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// impl_platonic.go — implementation of PlatonicSolid(name).
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron};
//     anything else → ErrOptionViolation.
//   • Declares indices 0..V-1 ascending, then emits the edge list of
//     variants_platonic.go in its stored order.
//
// Complexity: O(V+E), with V ≤ 20 and E ≤ 30.

package builder

import "fmt"

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicSolid returns a Constructor that builds the graph of the chosen solid.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(a *Assembly, cfg builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %s: %w", methodPlatonicSolid, name, ErrOptionViolation)
		}
		edges, ok := platonicEdgeSets[name]
		if !ok {
			return fmt.Errorf("%s: missing edge set for %s: %w", methodPlatonicSolid, name, ErrConstructFailed)
		}

		addRange(a, cfg, 0, n)
		for _, ch := range edges {
			a.AddEdge(cfg.id(ch.U), cfg.id(ch.V))
		}

		return nil
	}
}
