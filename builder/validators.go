// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// validators.go — parameter checks shared by constructors. Each returns a
// sentinel wrapped with the method name.

package builder

import "fmt"

const (
	probMin = 0.0
	probMax = 1.0
)

// validateMin ensures got ≥ min.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [0,1].
func validateProbability(method string, p float64) error {
	if p < probMin || p > probMax {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, probMin, probMax, ErrInvalidProbability)
	}

	return nil
}

// requireRand fails when cfg has no RNG.
func requireRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	return nil
}
