// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// impl_path.go — implementation of Path(n).
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Declares ids in ascending index order, edges i-(i+1).

package builder

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(a *Assembly, cfg builderConfig) error {
		if err := validateMin(methodPath, "n", n, minPathNodes); err != nil {
			return err
		}
		addRange(a, cfg, 0, n)
		for i := 0; i+1 < n; i++ {
			a.AddEdge(cfg.id(i), cfg.id(i+1))
		}

		return nil
	}
}
