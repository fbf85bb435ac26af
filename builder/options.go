// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/chroma/core"
)

// BuilderOption customizes the resolved builderConfig before any
// constructor runs.
type BuilderOption func(*builderConfig)

// WithFirstID sets the id of index 0 (default 1). Any integer is accepted.
func WithFirstID(id core.VertexID) BuilderOption {
	return func(c *builderConfig) {
		c.firstID = id
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
