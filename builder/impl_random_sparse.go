// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p).
//
// Model: Erdős–Rényi G(n,p). Each unordered pair {i,j}, i<j, is kept
// independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Declares indices ascending; trials run i asc, then j asc.
//
// Complexity: O(n²) Bernoulli trials.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(a *Assembly, cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, "n", n, minRandomSparseVertices); err != nil {
			return err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}
		// p ∈ {0,1} is deterministic and needs no RNG.
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		addRange(a, cfg, 0, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if keep(cfg, p) {
					a.AddEdge(cfg.id(i), cfg.id(j))
				}
			}
		}

		return nil
	}
}

// keep runs one Bernoulli(p) trial; p ∈ {0,1} never touches the RNG.
func keep(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}

	return cfg.rng.Float64() < p
}
