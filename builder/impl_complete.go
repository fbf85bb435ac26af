// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// impl_complete.go — implementation of Complete(n).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Declares ids in ascending index order, then every pair i<j.
//
// Complexity: O(n) vertices + O(n²) edges.

package builder

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(a *Assembly, cfg builderConfig) error {
		if err := validateMin(methodComplete, "n", n, minCompleteNodes); err != nil {
			return err
		}
		ids := makeIDs(cfg, 0, n)
		for _, id := range ids {
			a.AddVertex(id)
		}
		addCompleteEdges(a, ids)

		return nil
	}
}
