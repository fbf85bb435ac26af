// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// impl_cycle.go — implementation of Cycle(n).
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Declares ids in ascending index order (0..n-1).
//   • Emits edges in stable order i-(i+1)%n for i=0..n-1.
//
// Complexity: O(n) time, O(1) extra space.

package builder

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(a *Assembly, cfg builderConfig) error {
		if err := validateMin(methodCycle, "n", n, minCycleNodes); err != nil {
			return err
		}
		addRange(a, cfg, 0, n)
		ring(a, cfg, 0, n)

		return nil
	}
}

// ring connects indices from..from+n-1 into a cycle.
func ring(a *Assembly, cfg builderConfig, from, n int) {
	for i := 0; i < n; i++ {
		a.AddEdge(cfg.id(from+i), cfg.id(from+(i+1)%n))
	}
}
