// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// impl_star.go — implementation of Star(n).
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices): one center plus n-1 leaves.
//   • The center is index 0 and is declared first; leaves follow ascending.

package builder

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds the star K_{1,n-1}.
func Star(n int) Constructor {
	return func(a *Assembly, cfg builderConfig) error {
		if err := validateMin(methodStar, "n", n, minStarNodes); err != nil {
			return err
		}
		center := cfg.id(0)
		a.AddVertex(center)
		for i := 1; i < n; i++ {
			a.AddEdge(center, cfg.id(i))
		}

		return nil
	}
}
