// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// impl_wheel.go — implementation of Wheel(n).
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + hub, i.e. a cycle of size n-1 plus a vertex joined to all of it.
//   • Therefore n ≥ 4.
//
// Contract:
//   • The hub is index 0 and is declared first; the rim is indices 1..n-1.
//   • Rim edges are emitted first (as Cycle does), then spokes in rim order.
//
// χ(Wₙ) is 3 for an even rim and 4 for an odd one.

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds the wheel Wₙ.
func Wheel(n int) Constructor {
	return func(a *Assembly, cfg builderConfig) error {
		if err := validateMin(methodWheel, "n", n, minWheelNodes); err != nil {
			return err
		}
		hub := cfg.id(0)
		a.AddVertex(hub)

		rim := cfg
		rim.firstID = cfg.id(1)
		if err := Cycle(n-1)(a, rim); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		for i := 1; i < n; i++ {
			a.AddEdge(hub, cfg.id(i))
		}

		return nil
	}
}
