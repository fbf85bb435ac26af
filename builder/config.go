// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • firstID = 1    (families are numbered 1..n)
//   • rng     = nil  (deterministic unless seeded)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/chroma/core"
)

// builderConfig aggregates the knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// firstID is the id given to index 0; index i maps to firstID+i.
	firstID core.VertexID
	// rng drives stochastic constructors; nil means no randomness.
	rng *rand.Rand
}

const defaultFirstID core.VertexID = 1

// newBuilderConfig applies opts over the defaults, last one wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{firstID: defaultFirstID}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// id maps a constructor-local index to a vertex id.
func (c builderConfig) id(i int) core.VertexID {
	return c.firstID + i
}
