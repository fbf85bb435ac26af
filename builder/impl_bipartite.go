// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// impl_bipartite.go — implementation of CompleteBipartite(n1, n2).
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left side is indices 0..n1-1, declared first; right side follows.
//   • Edges are emitted left-major: for each left vertex, every right vertex.
//
// Complexity: O(n1+n2) vertices + O(n1·n2) edges.

package builder

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartition            = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(a *Assembly, cfg builderConfig) error {
		if err := validateMin(methodCompleteBipartite, "n1", n1, minPartition); err != nil {
			return err
		}
		if err := validateMin(methodCompleteBipartite, "n2", n2, minPartition); err != nil {
			return err
		}

		left := makeIDs(cfg, 0, n1)
		right := makeIDs(cfg, n1, n2)
		for _, id := range left {
			a.AddVertex(id)
		}
		for _, id := range right {
			a.AddVertex(id)
		}
		for _, u := range left {
			for _, v := range right {
				a.AddEdge(u, v)
			}
		}

		return nil
	}
}
